package tr

import (
	"context"

	"github.com/DRSN-tech/lca-catalog/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

type txKey struct{}

// WithTx кладёт объект транзакции в контекст.
func WithTx(ctx context.Context, tx any) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value(txKey{})
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}

// Manager выполняет функцию внутри pgx-транзакции.
// Транзакция доступна репозиториям через TxFromCtx.
type Manager struct {
	db transaction.Transactional
}

func NewManager(db transaction.Transactional) *Manager {
	return &Manager{db: db}
}

// Do открывает транзакцию, вызывает fn и фиксирует изменения.
// Любая ошибка fn или коммита откатывает транзакцию.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, m.db)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(WithTx(ctx, tx.Transaction())); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

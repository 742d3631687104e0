package pgdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/DRSN-tech/lca-catalog/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jimlawless/whereami"
)

// DB — подмножество *pgxpool.Pool, нужное репозиторию.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool DB
	conv converter.ProductConverter
}

func NewProductRepo(pool DB, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// CreateBatch вставляет продукты одним батчем внутри транзакции из контекста.
// Строки с уже существующим (account_id, code) пропускаются.
func (p *ProductRepo) CreateBatch(ctx context.Context, products []domain.Product) ([]domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (
			account_id, code, name, description, weight,
			country_of_origin, supplier_name, category, sub_category,
			ai_processing_status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending')
		ON CONFLICT (account_id, code) DO NOTHING
		RETURNING ` + converter.ProductColumns

	batch := &pgx.Batch{}
	for i := range products {
		m := p.conv.ToModel(&products[i])
		batch.Queue(query,
			m.AccountID, m.Code, m.Name, m.Description, m.Weight,
			m.CountryOfOrigin, m.SupplierName, m.Category, m.SubCategory,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	inserted := make([]*converter.ProductModel, 0, len(products))
	for range products {
		var model converter.ProductModel
		if err := br.QueryRow().Scan(model.ScanDest()...); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue // код уже есть в аккаунте
			}
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		inserted = append(inserted, &model)
	}

	if err := br.Close(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(inserted), nil
}

func (p *ProductRepo) AppendImage(ctx context.Context, accountID, code, url string) (bool, error) {
	query := `
		UPDATE products
		SET images = array_append(images, $3), updated_at = NOW()
		WHERE account_id = $1 AND code = $2
	`

	tag, err := p.pool.Exec(ctx, query, accountID, code, url)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected() > 0, nil
}

// ClaimPending атомарно переводит до limit записей аккаунта из pending в processing.
// Параллельные вызовы не получают одни и те же записи.
func (p *ProductRepo) ClaimPending(ctx context.Context, accountID string, limit int) ([]domain.Product, error) {
	query := `
		UPDATE products
		SET ai_processing_status = 'processing', updated_at = NOW()
		WHERE id IN (
			SELECT id FROM products
			WHERE account_id = $1 AND ai_processing_status = 'pending'
			ORDER BY id
			LIMIT $2
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + converter.ProductColumns

	rows, err := p.pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.ProductModel, 0, limit)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(model.ScanDest()...); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *ProductRepo) CompleteClassification(ctx context.Context, id int64, res *domain.ClassificationResult) error {
	materials, processes, err := converter.ClassificationJSON(res)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET category = $2,
			sub_category = $3,
			materials = $4,
			manufacturing_process = $5,
			co2_emission = $6,
			co2_emission_raw_materials = $7,
			co2_emission_processes = $8,
			ai_processing_status = 'completed',
			updated_at = NOW()
		WHERE id = $1 AND ai_processing_status = 'processing'
	`

	tag, err := p.pool.Exec(ctx, query, id,
		res.Classification.Category, res.Classification.SubCategory,
		materials, processes,
		res.Emissions.Total, res.Emissions.RawMaterials, res.Emissions.Processes,
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: id %d", e.ErrStatusConflict, id))
	}

	return nil
}

func (p *ProductRepo) MarkFailed(ctx context.Context, id int64) error {
	query := `
		UPDATE products
		SET ai_processing_status = 'failed', updated_at = NOW()
		WHERE id = $1 AND ai_processing_status = 'processing'
	`

	tag, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: id %d", e.ErrStatusConflict, id))
	}

	return nil
}

// FailStale завершает записи, зависшие в processing (например, после падения процесса).
func (p *ProductRepo) FailStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `
		UPDATE products
		SET ai_processing_status = 'failed', updated_at = NOW()
		WHERE ai_processing_status = 'processing'
		  AND updated_at < NOW() - make_interval(secs => $1)
	`

	tag, err := p.pool.Exec(ctx, query, olderThan.Seconds())
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected(), nil
}

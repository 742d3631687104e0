package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/domain"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/DRSN-tech/lca-catalog/pkg/retry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// terminalWriteTimeout ограничивает запись финального статуса, которая
// выполняется и после отмены baseCtx при остановке приложения.
const terminalWriteTimeout = 5 * time.Second

// ClassificationUseCase захватывает продукты в статусе pending и классифицирует их в пуле воркеров.
type ClassificationUseCase struct {
	productRepo ProductRepository
	classifier  Classifier
	emissions   EmissionsCalculator
	cache       ClassificationCache
	publisher   EventPublisher
	runner      TaskRunner
	retry       retry.Policy
	claimBatch  int
	baseCtx     context.Context
	logger      logger.Logger

	wg sync.WaitGroup
}

// NewClassificationUC создаёт оркестратор. baseCtx живёт столько же, сколько приложение:
// обработка продолжается после завершения HTTP-запроса, вызвавшего Trigger.
func NewClassificationUC(
	baseCtx context.Context,
	productRepo ProductRepository,
	classifier Classifier,
	emissions EmissionsCalculator,
	cache ClassificationCache,
	publisher EventPublisher,
	runner TaskRunner,
	retryPolicy retry.Policy,
	claimBatch int,
	logger logger.Logger,
) *ClassificationUseCase {
	if claimBatch <= 0 {
		claimBatch = 100
	}

	return &ClassificationUseCase{
		productRepo: productRepo,
		classifier:  classifier,
		emissions:   emissions,
		cache:       cache,
		publisher:   publisher,
		runner:      runner,
		retry:       retryPolicy,
		claimBatch:  claimBatch,
		baseCtx:     baseCtx,
		logger:      logger,
	}
}

// Trigger атомарно переводит все pending-продукты аккаунта в processing и
// отправляет их в пул. Возвращается сразу после захвата, не дожидаясь классификации.
func (c *ClassificationUseCase) Trigger(ctx context.Context, accountID string) (*TriggerRes, error) {
	const op = "ClassificationUseCase.Trigger"

	if err := validateAccountID(accountID); err != nil {
		return nil, e.Wrap(op, err)
	}

	log := c.logger.With("account_id", accountID)

	var (
		claimed  []domain.Product
		claimErr error
	)
	for {
		batch, err := c.productRepo.ClaimPending(ctx, accountID, c.claimBatch)
		if err != nil {
			claimErr = err
			break
		}

		claimed = append(claimed, batch...)
		if len(batch) < c.claimBatch {
			break
		}
	}

	// Уже захваченные записи отправляются в работу даже при ошибке следующего батча,
	// иначе они останутся в processing.
	c.dispatch(claimed)

	if claimErr != nil {
		log.Errorf(claimErr, "claim interrupted after %d products", len(claimed))
		return nil, e.Wrap(op, claimErr)
	}

	log.Infof("dispatched %d products for classification", len(claimed))

	return NewTriggerRes(len(claimed)), nil
}

// Wait блокируется, пока не завершатся все отправленные задачи или не истечёт ctx.
func (c *ClassificationUseCase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RecoverStale переводит в failed записи, зависшие в processing (например, после падения процесса).
func (c *ClassificationUseCase) RecoverStale(ctx context.Context, olderThan time.Duration) error {
	const op = "ClassificationUseCase.RecoverStale"

	n, err := c.productRepo.FailStale(ctx, olderThan)
	if err != nil {
		return e.Wrap(op, err)
	}

	if n > 0 {
		c.logger.Warnf("marked %d stale processing products as failed", n)
	}

	return nil
}

func (c *ClassificationUseCase) dispatch(products []domain.Product) {
	if len(products) == 0 {
		return
	}

	c.wg.Add(len(products))
	go func() {
		for idx := range products {
			p := &products[idx]

			err := c.runner.Submit(func() {
				defer c.wg.Done()
				c.processProduct(c.baseCtx, p)
			})
			if err != nil {
				c.logger.Errorf(err, "failed to submit product %d to worker pool", p.ID)
				c.fail(c.baseCtx, p, c.logger.With("product_id", p.ID, "code", p.Code))
				c.wg.Done()
			}
		}
	}()
}

// processProduct — конвейер одной записи. Ошибка или паника одной записи не влияет на остальные,
// запись в любом случае уходит из processing.
func (c *ClassificationUseCase) processProduct(ctx context.Context, p *domain.Product) {
	log := c.logger.With("product_id", p.ID, "code", p.Code, "account_id", p.AccountID)

	defer func() {
		if r := recover(); r != nil {
			log.Errorf(fmt.Errorf("panic: %v", r), "classification pipeline panicked")
			c.fail(ctx, p, log)
		}
	}()

	res, err := c.classify(ctx, p, log)
	if err != nil {
		log.Errorf(err, "classification failed")
		c.fail(ctx, p, log)
		return
	}

	if !res.Classification.Complete() {
		log.Warnf("classification returned no category or subcategory")
		c.fail(ctx, p, log)
		return
	}

	wctx, cancel := detached(ctx)
	defer cancel()

	if err := c.productRepo.CompleteClassification(wctx, p.ID, res); err != nil {
		if errors.Is(err, e.ErrStatusConflict) {
			log.Warnf("product left processing before completion, result dropped")
			return
		}

		log.Errorf(err, "failed to persist classification")
		c.fail(ctx, p, log)
		return
	}

	log.Debugf("classified as %s/%s, co2 %.4f", res.Classification.Category, res.Classification.SubCategory, res.Emissions.Total)
	c.publish(wctx, p, domain.AIStatusCompleted, res, log)
}

// classify выполняет три независимых вызова классификатора и считает выбросы.
func (c *ClassificationUseCase) classify(ctx context.Context, p *domain.Product, log logger.Logger) (*domain.ClassificationResult, error) {
	class, err := c.classifyProduct(ctx, p, log)
	if err != nil {
		return nil, err
	}

	materials, err := retry.Do(ctx, c.retry, func(ctx context.Context) ([]domain.Material, error) {
		return c.classifier.ClassifyBillOfMaterials(ctx, NewClassifyBOMReq(p))
	})
	if err != nil {
		return nil, err
	}

	processes, err := retry.Do(ctx, c.retry, func(ctx context.Context) ([]domain.ManufacturingProcess, error) {
		return c.classifier.ClassifyManufacturingProcess(ctx, NewClassifyProcessReq(p, materials))
	})
	if err != nil {
		return nil, err
	}

	raw := c.emissions.RawMaterials(materials, p.CountryOfOrigin)
	proc := c.emissions.Processes(processes)
	total := decimal.NewFromFloat(raw).Add(decimal.NewFromFloat(proc)).InexactFloat64()

	return &domain.ClassificationResult{
		Classification:       *class,
		Materials:            materials,
		ManufacturingProcess: processes,
		Emissions: domain.Emissions{
			RawMaterials: raw,
			Processes:    proc,
			Total:        total,
		},
	}, nil
}

// classifyProduct сначала смотрит в кэш. Ошибки кэша не прерывают классификацию.
func (c *ClassificationUseCase) classifyProduct(ctx context.Context, p *domain.Product, log logger.Logger) (*domain.ProductClassification, error) {
	key := classificationKey(p)

	cached, err := c.cache.GetProductClassification(ctx, key)
	if err != nil {
		log.Warnf("classification cache read failed: %v", err)
	}
	if cached.Complete() {
		return cached, nil
	}

	class, err := retry.Do(ctx, c.retry, func(ctx context.Context) (*domain.ProductClassification, error) {
		return c.classifier.ClassifyProduct(ctx, NewClassifyProductReq(p))
	})
	if err != nil {
		return nil, err
	}
	if class == nil {
		class = &domain.ProductClassification{}
	}

	if class.Complete() {
		if err := c.cache.SetProductClassification(ctx, key, class); err != nil {
			log.Warnf("classification cache write failed: %v", err)
		}
	}

	return class, nil
}

func (c *ClassificationUseCase) fail(ctx context.Context, p *domain.Product, log logger.Logger) {
	wctx, cancel := detached(ctx)
	defer cancel()

	if err := c.productRepo.MarkFailed(wctx, p.ID); err != nil {
		log.Errorf(err, "failed to mark product as failed")
		return
	}

	c.publish(wctx, p, domain.AIStatusFailed, nil, log)
}

// detached отвязывает запись финального статуса от отмены ctx, сохраняя его значения
// (транзакцию, если она есть).
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), terminalWriteTimeout)
}

// publish отправляет событие о финальном статусе. Ошибка публикации только логируется.
func (c *ClassificationUseCase) publish(ctx context.Context, p *domain.Product, status domain.AIStatus, res *domain.ClassificationResult, log logger.Logger) {
	ev := NewClassificationEvent(uuid.NewString(), p, status, res, time.Now().UTC())
	if err := c.publisher.PublishClassified(ctx, ev); err != nil {
		log.Errorf(err, "failed to publish classification event")
	}
}

// classificationKey — sha256 от полей, которые видит классификатор продукта.
func classificationKey(p *domain.Product) string {
	sum := sha256.Sum256([]byte(p.Code + "|" + p.Name + "|" + p.Description))
	return hex.EncodeToString(sum[:])
}

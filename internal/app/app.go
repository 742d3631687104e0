package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/lca-catalog/internal/cfg"
	v1Http "github.com/DRSN-tech/lca-catalog/internal/delivery/v1/http"
	"github.com/DRSN-tech/lca-catalog/internal/infrastructure/archive"
	"github.com/DRSN-tech/lca-catalog/internal/infrastructure/contenthost"
	"github.com/DRSN-tech/lca-catalog/internal/infrastructure/emissions"
	"github.com/DRSN-tech/lca-catalog/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/lca-catalog/internal/infrastructure/minio"
	ml_service "github.com/DRSN-tech/lca-catalog/internal/infrastructure/ml-service"
	"github.com/DRSN-tech/lca-catalog/internal/infrastructure/tabular"
	s3Repo "github.com/DRSN-tech/lca-catalog/internal/repository/minio"
	"github.com/DRSN-tech/lca-catalog/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/lca-catalog/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/lca-catalog/internal/repository/redis"
	redisConv "github.com/DRSN-tech/lca-catalog/internal/repository/redis/converter"
	"github.com/DRSN-tech/lca-catalog/internal/usecase"
	"github.com/DRSN-tech/lca-catalog/pkg/clients"
	"github.com/DRSN-tech/lca-catalog/pkg/closer"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/DRSN-tech/lca-catalog/pkg/postgres"
	"github.com/DRSN-tech/lca-catalog/pkg/retry"
	"github.com/DRSN-tech/lca-catalog/pkg/tr"
	"github.com/DRSN-tech/lca-catalog/pkg/workerpool"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout     = 30 * time.Second
	startupTimeout      = 10 * time.Second
	imageUploadRetries  = 1
	ensureTopicDeadline = 10 * time.Second
)

// App связывает зависимости сервиса и управляет его жизненным циклом.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server

	// отменяется при остановке, прерывая фоновую классификацию
	baseCtx    context.Context
	baseCancel context.CancelFunc
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	baseCtx, baseCancel := context.WithCancel(context.Background())
	a := &App{
		cfg:        cfg,
		logger:     logger,
		closer:     closer.NewCloser(5 * time.Second),
		baseCtx:    baseCtx,
		baseCancel: baseCancel,
	}

	if err := a.init(); err != nil {
		baseCancel()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if cerr := a.closer.Close(shutdownCtx); cerr != nil {
			logger.Warnf("partial init cleanup: %v", cerr)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

func (a *App) init() error {
	cfg, logger := a.cfg, a.logger

	db, err := initPGDB(logger, cfg)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("postgres", func(context.Context) error {
		db.Close()
		logger.Infof("Postgres pool closed")
		return nil
	})

	productRepo := pgdb.NewProductRepo(db.Pool, pgdbConv.NewProductConverter())
	txManager := tr.NewManager(db.Pool)

	redisClient := clients.NewRedisClient(cfg.Redis)
	a.closer.Add("redis", func(context.Context) error {
		return redisClient.Close()
	})
	redisCtx, redisCancel := context.WithTimeout(context.Background(), startupTimeout)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.NewClassificationConverter(), cfg.Redis, logger)

	host, err := a.initImageHost()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	producer := kafka.NewProducer(logger, cfg.Kafka)
	a.closer.Add("kafka producer", func(context.Context) error {
		return producer.Close()
	})
	if err := producer.EnsureTopic(ensureTopicDeadline); err != nil {
		// брокер может создавать топики сам, публикация не критична для пайплайна
		logger.Warnf("kafka topic %s not ensured: %v", cfg.Kafka.Topic, err)
	}

	conn, err := clients.NewGRPCConn(cfg.Ml.Addr)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.Add("grpc conn", func(context.Context) error {
		return conn.Close()
	})
	classifier := ml_service.NewMLService(conn, cfg.Ml.Timeout, logger)

	pool, err := workerpool.New(cfg.Classification.Workers, logger)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	classificationUC := usecase.NewClassificationUC(
		a.baseCtx,
		productRepo,
		classifier,
		emissions.NewCalculator(),
		cacheRepo,
		producer,
		pool,
		retry.Immediate(cfg.Classification.MaxRetries),
		cfg.Classification.ClaimBatch,
		logger,
	)
	// отмена baseCtx прерывает вызовы классификатора, записи переходят в failed на отвязанном контексте;
	// пул освобождается после того, как все запущенные классификации дошли до финального статуса
	a.closer.Add("classification pool", func(ctx context.Context) error {
		a.baseCancel()
		err := classificationUC.Wait(ctx)
		pool.Release()
		return err
	})

	recoverCtx, recoverCancel := context.WithTimeout(context.Background(), startupTimeout)
	defer recoverCancel()
	if err := classificationUC.RecoverStale(recoverCtx, cfg.Classification.StaleAfter); err != nil {
		logger.Warnf("stale classification recovery failed: %v", err)
	}

	if err := os.MkdirAll(cfg.Scratch.Root, 0o750); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	importUC := usecase.NewImportUC(productRepo, txManager, tabular.NewParser(), logger)
	imageUC := usecase.NewImageUC(
		productRepo,
		archive.NewExtractor(),
		host,
		classificationUC,
		cfg.Scratch.Root,
		retry.Immediate(imageUploadRetries),
		logger,
	)

	r := chi.NewRouter()
	v1Http.NewRouter(r, logger).Init(importUC, imageUC, classificationUC, cfg.Http.MaxUploadBytes)
	a.httpSrv = v1Http.NewServer(r, cfg.Http)
	a.closer.Add("http server", func(ctx context.Context) error {
		if err := a.httpSrv.Stop(ctx); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
		logger.Infof("HTTP server stopped")
		return nil
	})

	return nil
}

// initImageHost выбирает драйвер внешнего хоста изображений.
func (a *App) initImageHost() (usecase.ImageHost, error) {
	if a.cfg.ContentHost.Driver != config.ContentHostMinIO {
		return contenthost.NewHTTPHost(a.cfg.ContentHost), nil
	}

	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return minioInfra.NewMinioInfrastructure(s3Repo.NewImageRepo(minioClient, a.cfg.Minio), a.cfg.Minio), nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "shutdown finished with errors")
	}

	a.logger.Infof("Application shutdown complete")
	_ = a.logger.Sync()

	return appErr
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		db.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

package cfg

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

const (
	ContentHostHTTP  = "http"
	ContentHostMinIO = "minio"
)

type Config struct {
	Http           *HTTPConfig
	Db             *PGDBCfg
	Redis          *RedisCfg
	Minio          *MinIOCfg
	Kafka          *KafkaCfg
	Ml             *MLServiceCfg
	ContentHost    *ContentHostCfg
	Scratch        *ScratchCfg
	Classification *ClassificationCfg
}

type HTTPConfig struct {
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxUploadBytes int64 // лимит тела multipart-запроса
}

type PGDBCfg struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxConns      int32  // верхняя граница пула; параллельные классификации держат по соединению
	MigrationsDir string // каталог с SQL-миграциями golang-migrate
}

type RedisCfg struct {
	Addr              string
	Password          string
	User              string
	DB                int
	MaxRetries        int
	DialTimeout       time.Duration
	Timeout           time.Duration
	ClassificationTTL time.Duration // срок жизни кэша классификации продукта
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	BucketName        string // Название конкретного бакета в Minio
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	PublicURL         string // базовый URL, по которому объекты доступны снаружи
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

type MLServiceCfg struct {
	Addr    string
	Timeout time.Duration // таймаут одного вызова классификатора
}

// ContentHostCfg описывает внешний хост, на который загружаются изображения.
type ContentHostCfg struct {
	Driver        string // http | minio
	DefaultOrigin string // используется, если у запроса нет заголовка Origin
	UploadPath    string
	PublicPath    string
	QueryParam    string
	Timeout       time.Duration
}

type ScratchCfg struct {
	Root string
}

type ClassificationCfg struct {
	Workers    int
	ClaimBatch int
	MaxRetries uint64
	StaleAfter time.Duration
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
// При APP_ENV=local переменные дополнительно читаются из .env.
func Load(log logger.Logger) (*Config, error) {
	if getEnv("APP_ENV") == "local" {
		if err := godotenv.Load(); err != nil {
			log.Warnf("failed to load .env: %v", err)
		}
	}

	db, err := loadPGDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minio, err := loadMinIOCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	kafka, err := loadKafkaCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ml, err := loadMLServiceCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	contentHost, err := loadContentHostCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	classification, err := loadClassificationCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:           http,
		Db:             db,
		Redis:          redis,
		Minio:          minio,
		Kafka:          kafka,
		Ml:             ml,
		ContentHost:    contentHost,
		Scratch:        loadScratchCfg(),
		Classification: classification,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultBrokers           = "localhost:9092"
		defaultTopic             = "lca.product-classified"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	brokers := lo.Compact(lo.Map(strings.Split(getEnvOrDefault("KAFKA_BROKERS", defaultBrokers), ","), func(b string, _ int) string {
		return strings.TrimSpace(b)
	}))
	if len(brokers) == 0 {
		return nil, fmt.Errorf("KAFKA_BROKERS must contain at least one broker")
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL    = false
		defaultEndpoint  = "minio:9000"
		defaultBucket    = "product-images"
		defaultPublicURL = "http://localhost:9000"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        getEnvOrDefault("BUCKET_NAME", defaultBucket),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		PublicURL:         strings.TrimRight(getEnvOrDefault("MINIO_PUBLIC_URL", defaultPublicURL), "/"),
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort           = "8080"
		defaultReadTimeout    = 30 * time.Second
		defaultWriteTimeout   = 5 * time.Minute
		defaultIdleTimeout    = 60 * time.Second
		defaultMaxUploadBytes = 256 << 20
	)

	port := getEnvOrDefault("HTTP_PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	// Распределение архива загружает изображения последовательно, поэтому запись ответа может занять минуты.
	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	maxUpload, err := parseIntEnv("HTTP_MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	if err != nil {
		log.Errorf(err, "invalid HTTP_MAX_UPLOAD_BYTES")
		return nil, err
	}

	return &HTTPConfig{
		Port:           port,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		MaxUploadBytes: int64(maxUpload),
	}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost          = "localhost"
		defaultPort          = "5432"
		defaultSSLMode       = "disable"
		defaultMaxConns      = 10
		defaultMigrationsDir = "db/migrations"
	)

	user := getEnv("POSTGRES_USER")
	if user == "" {
		err := fmt.Errorf("POSTGRES_USER is required")
		log.Errorf(err, "missing POSTGRES_USER")
		return nil, err
	}

	password := getEnv("POSTGRES_PASSWORD")
	if password == "" {
		err := fmt.Errorf("POSTGRES_PASSWORD is required")
		log.Errorf(err, "missing POSTGRES_PASSWORD")
		return nil, err
	}

	dbName := getEnv("POSTGRES_DB")
	if dbName == "" {
		err := fmt.Errorf("POSTGRES_DB is required")
		log.Errorf(err, "missing POSTGRES_DB")
		return nil, err
	}

	maxConns, err := parseIntEnv("POSTGRES_MAX_CONNS", defaultMaxConns)
	if err != nil || maxConns <= 0 {
		if err == nil {
			err = fmt.Errorf("POSTGRES_MAX_CONNS must be positive, got %d", maxConns)
		}
		log.Errorf(err, "invalid POSTGRES_MAX_CONNS")
		return nil, err
	}

	return &PGDBCfg{
		Host:          getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:          getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:          user,
		Password:      password,
		DBName:        dbName,
		SSLMode:       getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MaxConns:      int32(maxConns),
		MigrationsDir: getEnvOrDefault("POSTGRES_MIGRATIONS_DIR", defaultMigrationsDir),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr              = "localhost:6379"
		defaultDB                = 0
		defaultMaxRetries        = 3
		defaultDialTimeout       = 5 * time.Second
		defaultReadTimeout       = 3 * time.Second
		defaultWriteTimeout      = 3 * time.Second
		defaultClassificationTTL = 24 * time.Hour
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	classificationTTL, err := parseDurationEnv("CLASSIFICATION_CACHE_TTL", defaultClassificationTTL)
	if err != nil {
		log.Errorf(err, "invalid CLASSIFICATION_CACHE_TTL")
		return nil, err
	}

	return &RedisCfg{
		Addr:              getEnvOrDefault("REDIS_ADDR", defaultAddr),
		Password:          getEnv("REDIS_PASSWORD"),
		User:              getEnv("REDIS_USER"),
		DB:                db,
		MaxRetries:        maxRetries,
		DialTimeout:       dialTimeout,
		Timeout:           max(readTimeout, writeTimeout),
		ClassificationTTL: classificationTTL,
	}, nil
}

func loadMLServiceCfg(log logger.Logger) (*MLServiceCfg, error) {
	const (
		defaultHost    = "ml-service"
		defaultPort    = "50051"
		defaultTimeout = 60 * time.Second
	)

	host := getEnvOrDefault("ML_HOST", defaultHost)
	port := getEnvOrDefault("ML_PORT", defaultPort)

	timeout, err := parseDurationEnv("ML_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid ML_TIMEOUT")
		return nil, err
	}

	return &MLServiceCfg{
		Addr:    host + ":" + port,
		Timeout: timeout,
	}, nil
}

func loadContentHostCfg(log logger.Logger) (*ContentHostCfg, error) {
	const (
		defaultOrigin     = "http://localhost:3000"
		defaultUploadPath = "/api/upload"
		defaultPublicPath = "/api/files"
		defaultQueryParam = "filename"
		defaultTimeout    = 30 * time.Second
	)

	driver := strings.ToLower(getEnvOrDefault("CONTENT_HOST_DRIVER", ContentHostHTTP))
	if driver != ContentHostHTTP && driver != ContentHostMinIO {
		err := fmt.Errorf("%w: CONTENT_HOST_DRIVER=%s", e.ErrIncorrectEnvVariable, driver)
		log.Errorf(err, "invalid CONTENT_HOST_DRIVER")
		return nil, err
	}

	timeout, err := parseDurationEnv("CONTENT_HOST_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid CONTENT_HOST_TIMEOUT")
		return nil, err
	}

	return &ContentHostCfg{
		Driver:        driver,
		DefaultOrigin: strings.TrimRight(getEnvOrDefault("CONTENT_HOST_DEFAULT_ORIGIN", defaultOrigin), "/"),
		UploadPath:    getEnvOrDefault("UPLOAD_PATH", defaultUploadPath),
		PublicPath:    getEnvOrDefault("PUBLIC_PATH", defaultPublicPath),
		QueryParam:    getEnvOrDefault("CONTENT_HOST_QUERY_PARAM", defaultQueryParam),
		Timeout:       timeout,
	}, nil
}

func loadScratchCfg() *ScratchCfg {
	return &ScratchCfg{
		Root: getEnvOrDefault("SCRATCH_DIR", filepath.Join(os.TempDir(), "lca-catalog")),
	}
}

func loadClassificationCfg(log logger.Logger) (*ClassificationCfg, error) {
	const (
		defaultWorkers    = 8
		defaultClaimBatch = 100
		defaultMaxRetries = 1
		defaultStaleAfter = 30 * time.Minute
	)

	workers, err := parseIntEnv("CLASSIFICATION_WORKERS", defaultWorkers)
	if err != nil || workers <= 0 {
		err = fmt.Errorf("%w: CLASSIFICATION_WORKERS", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid CLASSIFICATION_WORKERS")
		return nil, err
	}

	claimBatch, err := parseIntEnv("CLASSIFICATION_CLAIM_BATCH", defaultClaimBatch)
	if err != nil || claimBatch <= 0 {
		err = fmt.Errorf("%w: CLASSIFICATION_CLAIM_BATCH", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid CLASSIFICATION_CLAIM_BATCH")
		return nil, err
	}

	maxRetries, err := parseIntEnv("CLASSIFICATION_MAX_RETRIES", defaultMaxRetries)
	if err != nil || maxRetries < 0 {
		err = fmt.Errorf("%w: CLASSIFICATION_MAX_RETRIES", e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid CLASSIFICATION_MAX_RETRIES")
		return nil, err
	}

	staleAfter, err := parseDurationEnv("CLASSIFICATION_STALE_AFTER", defaultStaleAfter)
	if err != nil {
		log.Errorf(err, "invalid CLASSIFICATION_STALE_AFTER")
		return nil, err
	}

	return &ClassificationCfg{
		Workers:    workers,
		ClaimBatch: claimBatch,
		MaxRetries: uint64(maxRetries),
		StaleAfter: staleAfter,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}

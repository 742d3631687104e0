package postgres

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/url"

	"github.com/DRSN-tech/lca-catalog/internal/cfg"
	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PgDatabase — пул соединений каталога и применение миграций схемы products.
type PgDatabase struct {
	Pool *pgxpool.Pool
	dsn  string
	cfg  *cfg.PGDBCfg
}

// DSN собирает строку подключения в URL-форме, понятной и pgx, и golang-migrate.
func DSN(c *cfg.PGDBCfg) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}

	return u.String()
}

// Connect открывает пул и проверяет соединение в пределах ctx.
func Connect(ctx context.Context, c *cfg.PGDBCfg) (*PgDatabase, error) {
	const op = "PgDatabase.Connect"

	dsn := DSN(c)
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if c.MaxConns > 0 {
		poolCfg.MaxConns = c.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, e.Wrap(op, err)
	}

	return &PgDatabase{Pool: pool, dsn: dsn, cfg: c}, nil
}

func (db *PgDatabase) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// RunMigrations применяет ожидающие миграции из cfg.MigrationsDir.
func (db *PgDatabase) RunMigrations(logger logger.Logger) error {
	const (
		op                 = "PgDatabase.RunMigrations"
		driverName         = "pgx"
		databaseDriverName = "postgres"
	)

	sqlDb, err := sql.Open(driverName, db.dsn)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer sqlDb.Close()

	driver, err := postgres.WithInstance(sqlDb, &postgres.Config{})
	if err != nil {
		return e.Wrap(op, err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+db.cfg.MigrationsDir, databaseDriverName, driver)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debugf("schema is up to date")
			return nil
		}
		return e.Wrap(op, err)
	}

	version, _, _ := m.Version()
	logger.Infof("migrations applied, schema version %d", version)
	return nil
}

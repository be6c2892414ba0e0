// Package store opens the configured backend and hands out repositories and
// report services bound to it.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/hlubek/gestao-varejo/config"
	"github.com/hlubek/gestao-varejo/domain"
	"github.com/hlubek/gestao-varejo/graph"
	"github.com/hlubek/gestao-varejo/migration"
	"github.com/hlubek/gestao-varejo/report"
	"github.com/hlubek/gestao-varejo/repository"
	"github.com/hlubek/gestao-varejo/schema"
)

// Repository is implemented by the relational and the graph mapper.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Insert(ctx context.Context, e *T) (int64, error)
	Update(ctx context.Context, id int64, changeSet schema.ChangeSet) error
	Delete(ctx context.Context, id int64) error
}

var (
	_ Repository[domain.Category] = (*repository.Repository[domain.Category])(nil)
	_ Repository[domain.Category] = (*graph.Repository[domain.Category])(nil)
)

// ErrUnsupported is returned for operations the backend does not have.
var ErrUnsupported = errors.New("not supported by this backend")

// Labels lists every entity table, which is also its graph label.
var Labels = []string{
	domain.CategoryDescriptor.Table,
	domain.CatalogProductDescriptor.Table,
	domain.ProductDescriptor.Table,
	domain.AddressDescriptor.Table,
	domain.ClientDescriptor.Table,
	domain.SupplierDescriptor.Table,
	domain.EmployeeDescriptor.Table,
	domain.PurchaseDescriptor.Table,
	domain.SaleDescriptor.Table,
}

// Backend is either a relational database or a graph database.
type Backend struct {
	name    string
	db      *sql.DB
	dialect repository.Dialect
	graph   graph.Client
	close   func(ctx context.Context) error
	logger  *zap.Logger

	migrator *migration.Migrator
}

// Open connects to the backend selected in cfg.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		db, err := openDB(ctx, "postgres", cfg.Database.DSN())
		if err != nil {
			return nil, err
		}
		logger.Info("connected to postgres", zap.String("host", cfg.Database.Host), zap.String("database", cfg.Database.DBName))
		return NewSQL(db, repository.Postgres, logger), nil

	case config.BackendSQLite:
		db, err := openDB(ctx, "sqlite", cfg.SQLite.DSN())
		if err != nil {
			return nil, err
		}
		// one connection serializes writers
		db.SetMaxOpenConns(1)
		logger.Info("opened sqlite", zap.String("path", cfg.SQLite.Path))
		return NewSQL(db, repository.SQLite, logger), nil

	case config.BackendNeo4j:
		driver, err := graph.Open(ctx, graph.Options{
			URI:      cfg.Neo4j.URI,
			Username: cfg.Neo4j.Username,
			Password: cfg.Neo4j.Password,
			Database: cfg.Neo4j.Database,
		}, logger)
		if err != nil {
			return nil, err
		}
		return &Backend{name: config.BackendNeo4j, graph: driver, close: driver.Close, logger: logger}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func openDB(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", driver, err)
	}
	return db, nil
}

// NewSQL wraps an open database. Close closes db.
func NewSQL(db *sql.DB, dialect repository.Dialect, logger *zap.Logger) *Backend {
	return &Backend{
		name:    dialect.Name,
		db:      db,
		dialect: dialect,
		close:   func(context.Context) error { return db.Close() },
		logger:  logger,
	}
}

// NewGraph wraps a graph client. Close is a no-op.
func NewGraph(client graph.Client, logger *zap.Logger) *Backend {
	return &Backend{
		name:   config.BackendNeo4j,
		graph:  client,
		close:  func(context.Context) error { return nil },
		logger: logger,
	}
}

func (b *Backend) Name() string {
	return b.name
}

// Bind returns the repository of the entity described by desc.
func Bind[T any](b *Backend, desc *schema.Descriptor[T]) Repository[T] {
	if b.graph != nil {
		return graph.New(b.graph, desc, b.logger)
	}
	return repository.New(b.db, b.dialect, desc, b.logger)
}

func (b *Backend) Reports() report.Service {
	if b.graph != nil {
		return report.NewGraph(b.graph, b.logger)
	}
	return report.NewSQL(b.db, b.dialect, b.logger)
}

// MigrateUp applies the relational schema, or the id constraints of the graph.
func (b *Backend) MigrateUp(ctx context.Context) error {
	if b.graph != nil {
		if err := graph.EnsureConstraints(ctx, b.graph, Labels...); err != nil {
			return err
		}
		b.logger.Info("graph constraints ensured", zap.Int("labels", len(Labels)))
		return nil
	}
	m, err := b.migration()
	if err != nil {
		return err
	}
	return m.Up()
}

// MigrateDown drops the relational schema.
func (b *Backend) MigrateDown(ctx context.Context) error {
	if b.graph != nil {
		return fmt.Errorf("migrate down: %w", ErrUnsupported)
	}
	m, err := b.migration()
	if err != nil {
		return err
	}
	return m.Down()
}

// Version returns the applied schema version of a relational backend.
func (b *Backend) Version() (uint, bool, error) {
	if b.graph != nil {
		return 0, false, fmt.Errorf("schema version: %w", ErrUnsupported)
	}
	m, err := b.migration()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// migration holds on to one migrator, which keeps a connection for postgres.
func (b *Backend) migration() (*migration.Migrator, error) {
	if b.migrator == nil {
		m, err := migration.New(b.db, b.dialect.Name, b.logger)
		if err != nil {
			return nil, err
		}
		b.migrator = m
	}
	return b.migrator, nil
}

func (b *Backend) Close(ctx context.Context) error {
	return b.close(ctx)
}

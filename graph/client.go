// Package graph stores entities as Neo4j nodes. Foreign key columns become
// relationships, following the Edge of each descriptor field.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"
)

// Record is one result row keyed by the RETURN aliases.
type Record map[string]any

// Client defines the minimal contract required by the repositories to interact
// with the underlying graph database.
type Client interface {
	Read(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
	Write(ctx context.Context, cypher string, params map[string]any) ([]Record, error)
}

// Options configures the connection to a Neo4j server.
type Options struct {
	URI      string
	Username string
	Password string
	Database string
}

// Driver runs Cypher statements in short lived sessions of one driver.
type Driver struct {
	driver   neo4j.DriverWithContext
	database string
	logger   *zap.Logger
}

// Open connects to the server and verifies connectivity.
func Open(ctx context.Context, opts Options, logger *zap.Logger) (*Driver, error) {
	if opts.URI == "" {
		return nil, fmt.Errorf("neo4j uri is required")
	}
	driver, err := neo4j.NewDriverWithContext(opts.URI, neo4j.BasicAuth(opts.Username, opts.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("connecting to %s: %w", opts.URI, err)
	}

	logger.Info("connected to neo4j", zap.String("uri", opts.URI), zap.String("database", opts.Database))
	return &Driver{
		driver:   driver,
		database: opts.Database,
		logger:   logger.Named("graph"),
	}, nil
}

func (d *Driver) Read(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	return d.run(ctx, neo4j.AccessModeRead, cypher, params)
}

func (d *Driver) Write(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	return d.run(ctx, neo4j.AccessModeWrite, cypher, params)
}

func (d *Driver) run(ctx context.Context, mode neo4j.AccessMode, cypher string, params map[string]any) ([]Record, error) {
	session := d.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: mode, DatabaseName: d.database})
	defer session.Close(ctx)

	d.logger.Debug("running cypher", zap.String("cypher", cypher), zap.Any("params", params))

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}

	var records []Record
	for result.Next(ctx) {
		records = append(records, result.Record().AsMap())
	}
	if err := result.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (d *Driver) Close(ctx context.Context) error {
	return d.driver.Close(ctx)
}

// EnsureConstraints creates a uniqueness constraint on the id of every label.
func EnsureConstraints(ctx context.Context, client Client, labels ...string) error {
	for _, label := range labels {
		if _, err := client.Write(ctx, constraintCypher(label), nil); err != nil {
			return fmt.Errorf("creating id constraint for %s: %w", label, err)
		}
	}
	return nil
}

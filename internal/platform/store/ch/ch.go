// Package ch provides a clickhouse client
package ch

import (
	"context"
	"errors"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Config configures clickhouse client
type Config struct {
	Addr string
	DB   string
	Role string
}

// CH wraps a clickhouse connection with the small surface the store needs
type CH struct {
	conn clickhouse.Conn
}

// Open dials clickhouse with client info stamped for this process role
func Open(_ context.Context, cfg Config) (*CH, error) {
	if cfg.Addr == "" {
		return nil, errors.New("ch: no addr configured")
	}
	db := cfg.DB
	if db == "" {
		db = "default"
	}
	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr:       []string{cfg.Addr},
		Auth:       clickhouse.Auth{Database: db},
		ClientInfo: BuildClientInfo(cfg.Role, ""),
	})
	if err != nil {
		return nil, err
	}
	return &CH{conn: conn}, nil
}

// Insert appends rows to table using a native batch
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	batch, err := c.conn.PrepareBatch(ctx, "INSERT INTO "+table)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := batch.Append(row...); err != nil {
			return err
		}
	}
	return batch.Send()
}

// Ping verifies connectivity
func (c *CH) Ping(ctx context.Context) error { return c.conn.Ping(ctx) }

// Close closes resources
func (c *CH) Close() error { return c.conn.Close() }

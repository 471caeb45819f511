package database

import (
	"context"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/project-attributes/pkg/schedule/schema"
)

var tracer = otel.Tracer("project-attributes/database")

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func LoadConfiguration(ctx context.Context) Config {
	return Config{
		host:     env.GetVariableOrDefault(ctx, "POSTGRES_HOST", ""),
		user:     env.GetVariableOrDefault(ctx, "POSTGRES_USER", ""),
		password: env.GetVariableOrDefault(ctx, "POSTGRES_PASSWORD", ""),
		port:     env.GetVariableOrDefault(ctx, "POSTGRES_PORT", "5432"),
		dbname:   env.GetVariableOrDefault(ctx, "POSTGRES_DBNAME", "diwise"),
		sslmode:  env.GetVariableOrDefault(ctx, "POSTGRES_SSLMODE", "disable"),
	}
}

// Enabled reports if a database host has been configured
func (c Config) Enabled() bool {
	return c.host != ""
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

type Database struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, cfg Config) (*Database, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, err
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &Database{pool: pool}, nil
}

func (db *Database) Initialize(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS attribute_values (
			kind       TEXT NOT NULL,
			entity_id  TEXT NOT NULL,
			attribute  TEXT NOT NULL,
			value_type TEXT NOT NULL,
			text       TEXT NULL,
			number     NUMERIC NULL,
			ts         TIMESTAMPTZ NULL,
			json       JSONB NULL,
			created_on TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (kind, entity_id, attribute)
		);`)
	if err != nil {
		return fmt.Errorf("failed to create table attribute_values: %w", err)
	}

	return nil
}

func (db *Database) Close() {
	db.pool.Close()
}

// Write replaces all stored values of an entity with the supplied rows
func (db *Database) Write(ctx context.Context, kind schema.Kind, entityID string, rows []Row) (err error) {
	ctx, span := tracer.Start(ctx, "write-attribute-values",
		trace.WithAttributes(
			attribute.String("kind", string(kind)),
			attribute.Int("rows", len(rows)),
		),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `DELETE FROM attribute_values WHERE kind=$1 AND entity_id=$2;`, string(kind), entityID)
	if err != nil {
		tx.Rollback(ctx)
		return err
	}

	batch := &pgx.Batch{}
	now := time.Now().UTC()

	for _, row := range rows {
		batch.Queue(
			`INSERT INTO attribute_values (kind, entity_id, attribute, value_type, text, number, ts, json, created_on)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			string(kind), entityID, row.Attribute, row.ValueType, row.Text, row.Number, row.Timestamp, row.JSON, now,
		)
	}

	err = tx.SendBatch(ctx, batch).Close()
	if err != nil {
		tx.Rollback(ctx)
		return err
	}

	err = tx.Commit(ctx)
	if err != nil {
		return err
	}

	logging.GetFromContext(ctx).Debug("attribute values written", "kind", kind, "entity_id", entityID, "count", len(rows))

	return nil
}

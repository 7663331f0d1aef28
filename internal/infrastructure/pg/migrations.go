package pg

import (
	"context"
)

const createEvaluationsTable = `
CREATE TABLE IF NOT EXISTS evaluations (
	id         SERIAL PRIMARY KEY,
	session_id VARCHAR(64) NOT NULL,
	operand1   TEXT NOT NULL,
	operator   VARCHAR(4) NOT NULL,
	operand2   TEXT NOT NULL,
	result     TEXT NOT NULL DEFAULT '',
	display    TEXT NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS evaluations_created_at_idx ON evaluations (created_at DESC);
`

// Migrate создаёт таблицу evaluations, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createEvaluationsTable)
	return err
}

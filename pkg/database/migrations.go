package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express in schema definitions. These must match the constraints
// in migrations/0001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, db *stdsql.DB) error {
	// Idempotency: at most one non-terminal task per
	// (agent_type, skill_name, parameters_hash, workflow_id). Failed and
	// cancelled tasks do not block a fresh attempt.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS task_idempotency_active
		ON tasks (agent_type, skill_name, parameters_hash, workflow_id)
		WHERE status IN ('pending', 'running', 'completed')`)
	if err != nil {
		return fmt.Errorf("failed to create task idempotency index: %w", err)
	}

	// At most one active recovery per original task.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS taskrecovery_original_task_active
		ON task_recoveries (original_task_id)
		WHERE recovery_status IN ('pending', 'recovering')`)
	if err != nil {
		return fmt.Errorf("failed to create active recovery index: %w", err)
	}

	return nil
}

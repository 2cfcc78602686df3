package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS entities (
		kind VARCHAR(50) NOT NULL,
		id VARCHAR(255) NOT NULL,
		position INTEGER NOT NULL,
		data JSONB NOT NULL DEFAULT '{}',
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		PRIMARY KEY (kind, id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entities_kind_position ON entities(kind, position)`,

	// promote-admin looks users up by e-mail
	`CREATE INDEX IF NOT EXISTS idx_entities_user_email ON entities ((lower(data->>'email'))) WHERE kind = 'user'`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}

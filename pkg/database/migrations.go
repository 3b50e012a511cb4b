package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates the pg_trgm GIN index backing substring and
// fuzzy medicine-name lookup. Kept outside the Ent schema because Ent cannot
// express expression indexes or extension management.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	if _, err := db.ExecContext(ctx, `CREATE EXTENSION IF NOT EXISTS pg_trgm`); err != nil {
		return fmt.Errorf("failed to enable pg_trgm extension: %w", err)
	}

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_medicines_name_trgm
		ON medicines USING gin (lower(name) gin_trgm_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create medicine name trigram index: %w", err)
	}

	return nil
}

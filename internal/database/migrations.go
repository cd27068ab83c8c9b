package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds the indexes the list and filter queries depend on.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Member listing is ordered by creation time
		{"members", "idx_members_created_at", "created_at"},
		{"members", "idx_members_status", "status"},

		// Task filters and ordering
		{"tasks", "idx_tasks_member_id", "member_id"},
		{"tasks", "idx_tasks_status", "status"},
		{"tasks", "idx_tasks_due_date", "due_date"},

		// Follow-up filters and ordering
		{"follow_ups", "idx_follow_ups_member_id", "member_id"},
		{"follow_ups", "idx_follow_ups_scheduled_date", "scheduled_date"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

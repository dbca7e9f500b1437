package database

import (
	logger "github.com/Bparsons0904/goLogger"
)

// CreateIndexes creates additional indexes that GORM doesn't create
// automatically. The reminder sweep scans each table by reminder_date, so the
// partial indexes keep those scans off the rows with no reminder set.
func (db *DB) CreateIndexes() error {
	log := logger.New("database").Function("CreateIndexes")
	log.Info("Creating additional database indexes")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_houses_due_reminder ON houses(reminder_date) WHERE reminder_date IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_rooms_due_reminder ON rooms(reminder_date) WHERE reminder_date IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_appliances_due_reminder ON appliances(reminder_date) WHERE reminder_date IS NOT NULL",
		"CREATE INDEX IF NOT EXISTS idx_parts_due_reminder ON parts(reminder_date) WHERE reminder_date IS NOT NULL",
	}

	for _, indexSQL := range indexes {
		if err := db.SQL.Exec(indexSQL).Error; err != nil {
			log.Warn("Failed to create index", "sql", indexSQL, "error", err)
		}
	}

	log.Info("Additional database indexes created")
	return nil
}

// Package database holds the sqlite-backed usage log. The log is an audit
// trail for the stats command; quota decisions stay in memory and are not
// derived from it.
package database

import (
	"fmt"
	"time"

	"ffinfo-bot/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Init opens the usage database and ensures the schema exists.
func Init(dbPath string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	usageSchema := `CREATE TABLE IF NOT EXISTS usage_log (
	          usage_id INTEGER PRIMARY KEY AUTOINCREMENT,
	          guild_id TEXT NOT NULL,
	          user_id TEXT NOT NULL,
	          uid TEXT NOT NULL,
	          timestamp INTEGER NOT NULL
	      );`
	if _, err := db.Exec(usageSchema); err != nil {
		return nil, fmt.Errorf("failed to create usage_log table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_usage_guild_user ON usage_log (guild_id, user_id)`); err != nil {
		return nil, fmt.Errorf("failed to create usage_log index: %w", err)
	}

	return db, nil
}

// AddUsageRecord appends one accepted info request to the log.
func AddUsageRecord(db *sqlx.DB, record model.UsageRecord) error {
	query := `INSERT INTO usage_log (guild_id, user_id, uid, timestamp)
			  VALUES (:guild_id, :user_id, :uid, :timestamp)`
	if _, err := db.NamedExec(query, record); err != nil {
		return fmt.Errorf("failed to insert usage record: %w", err)
	}
	return nil
}

// GetUsageCount returns how many requests the user has made in the guild,
// optionally restricted to records at or after the given time.
func GetUsageCount(db *sqlx.DB, guildID, userID string, since *time.Time) (int, error) {
	query := "SELECT COUNT(*) FROM usage_log WHERE guild_id = ? AND user_id = ?"
	args := []interface{}{guildID, userID}

	if since != nil {
		query += " AND timestamp >= ?"
		args = append(args, since.Unix())
	}

	var count int
	if err := db.Get(&count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count usage for user %s: %w", userID, err)
	}
	return count, nil
}

// GetTotalUsageCount returns the number of requests ever logged.
func GetTotalUsageCount(db *sqlx.DB) (int, error) {
	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM usage_log"); err != nil {
		return 0, fmt.Errorf("failed to count usage records: %w", err)
	}
	return count, nil
}

// GetRecentUsage returns the user's most recent requests in the guild,
// newest first.
func GetRecentUsage(db *sqlx.DB, guildID, userID string, limit int) ([]model.UsageRecord, error) {
	var records []model.UsageRecord
	query := "SELECT * FROM usage_log WHERE guild_id = ? AND user_id = ? ORDER BY timestamp DESC LIMIT ?"
	if err := db.Select(&records, query, guildID, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to get recent usage for user %s: %w", userID, err)
	}
	return records, nil
}

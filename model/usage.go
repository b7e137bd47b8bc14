package model

// UsageRecord is one accepted info request, as stored in the usage log.
type UsageRecord struct {
	ID        int64  `db:"usage_id"`
	GuildID   string `db:"guild_id"`
	UserID    string `db:"user_id"`
	UID       string `db:"uid"`
	Timestamp int64  `db:"timestamp"`
}

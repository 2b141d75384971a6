package models

// MigrationToken links a user to a one-time migration token. Token strings
// are unique across the whole table.
type MigrationToken struct {
	UserID int64
	Token  string
}

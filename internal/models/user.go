// Package models defines the rows the recruitkit tools read from and write
// to the application database.
package models

// User is a person record owned by the application. The tools never
// create or delete users.
type User struct {
	ID     int64
	Email  string
	RoleID int
}

// PendingMigration pairs a user's address with the token they need to
// finish migrating their account.
type PendingMigration struct {
	UserID int64
	Email  string
	Token  string
}

// Credential is a user's stored password, plaintext until hashed.
type Credential struct {
	UserID   int64
	Password string
}

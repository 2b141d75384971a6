// Package tokens issues one-time migration tokens to existing users and
// notifies the users that still have to finish migrating their accounts.
//
// Generator walks every user that has no token yet and stores a fresh
// random token for each, regenerating when the token string is already
// taken. Notifier builds the migration link email for each user of the
// configured role; by default it only prints the messages (dry run).
package tokens

package migrate

import "errors"

// ErrMigration is the base error for failed migrations. Errors returned by
// Runner.Run wrap it together with the underlying store error.
var ErrMigration = errors.New("migration error")

// IsMigrationError checks if the given error is a migration error.
func IsMigrationError(err error) bool {
	return errors.Is(err, ErrMigration)
}

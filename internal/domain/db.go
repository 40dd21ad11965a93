package domain

import "context"

// Database defines lifecycle operations for the underlying database. The
// handle is constructed in main and injected into every component; there is
// no package-level connection singleton.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}

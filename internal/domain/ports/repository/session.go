package repository

import "context"

// AdminSessionRepository stores server-side admin session records. A record's
// presence is the session; deleting it logs the admin out everywhere the
// matching cookie is held.
type AdminSessionRepository interface {
	Create(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
}

package repository

import (
	"context"
)

// Snapshot store keys. Each key holds the full current collection as JSON.
const (
	KeyAuthUser     = "auth_user"
	KeyDoctors      = "app_doctors"
	KeyServices     = "app_services"
	KeyArticles     = "app_articles"
	KeyAppointments = "app_appointments"
	KeyLogs         = "app_logs"
)

// SnapshotStore defines the interface for durable key to JSON-value storage.
// Load returns found=false when the key has never been written.
type SnapshotStore interface {
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	Save(ctx context.Context, key string, data []byte) error
}

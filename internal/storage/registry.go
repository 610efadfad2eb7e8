package storage

import "github.com/conectone/platform/models"

// RegisteredModels lists every persistent model in dependency order, so
// table creation with foreign keys succeeds on a fresh database.
func RegisteredModels() []interface{} {
	return []interface{}{
		(*models.Country)(nil),
		(*models.City)(nil),
		(*models.User)(nil),
		(*models.RefreshToken)(nil),
		(*models.AuditLog)(nil),
		(*models.Property)(nil),
		(*models.Booking)(nil),
		(*models.School)(nil),
		(*models.Student)(nil),
		(*models.Advert)(nil),
		(*models.Post)(nil),
		(*models.Event)(nil),
		(*models.Category)(nil),
		(*models.Product)(nil),
		(*models.Payment)(nil),
	}
}

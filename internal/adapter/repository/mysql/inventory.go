package mysql

import (
	"context"

	inventoryDomain "dealership-ops-api/internal/domain/inventory"

	"gorm.io/gorm"
)

// VehicleRepository is the promotion target: the main inventory store's
// vehicles table, written exactly once per uploaded submission.
type VehicleRepository struct{ db *gorm.DB }

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *inventoryDomain.Vehicle) error {
	return r.db.WithContext(ctx).Create(v).Error
}

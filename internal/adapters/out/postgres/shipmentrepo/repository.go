package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/core/ports"
	"eshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormShipmentRepository implements ports.ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment record. When the aggregate carries no id the
// repository assigns a fresh UUID; the assigned id is returned either way.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) (string, error) {
	if err := aggregate.Validate(); err != nil {
		return "", err
	}

	id := aggregate.ID()
	if id == "" {
		id = uuid.NewString()
	}

	dto := fromDomain(aggregate, id)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return "", err
	}

	r.tracker.TrackAggregate(id, aggregate)
	return id, nil
}

// Update saves an existing shipment's state. An absent record fails with an
// errs.ObjectNotFoundError.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) (ports.UpdateOutcome, error) {
	if err := aggregate.Validate(); err != nil {
		return ports.UpdateOutcomeFailed, err
	}

	dto := fromDomain(aggregate, aggregate.ID())
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return ports.UpdateOutcomeFailed, result.Error
	}

	if result.RowsAffected == 0 {
		return ports.UpdateOutcomeFailed, errs.NewObjectNotFoundError("shipmentId", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return ports.UpdateOutcomeApplied, nil
}

// Get retrieves a shipment by its identifier.
func (r *GormShipmentRepository) Get(ctx context.Context, id string) (*shipment.Shipment, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("shipment id")
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipmentId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOverdue retrieves all non-terminal shipments whose due date lies
// before now.
func (r *GormShipmentRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "due_date < ? AND status NOT IN ?", now,
			[]int{int(shipment.Completed), int(shipment.Failed)}).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, aggregate)
	}

	return shipments, nil
}

package queries

import (
	"context"

	"eshop/internal/core/domain/model/shipment"
	"eshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentStatusQueryResponse is the read model for a status check.
type GetShipmentStatusQueryResponse struct {
	ShipmentID string
	Status     shipment.Status
}

// GetShipmentStatusQueryHandler reads a shipment's current status straight
// from the store, bypassing the aggregate.
//
// Example:
//
//	handler := NewGetShipmentStatusQueryHandler(db)
//	query, _ := NewGetShipmentStatusQuery(shipmentID)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown shipment
//	}
type GetShipmentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentStatusQueryHandler creates a handler for status queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentStatusQueryHandler(db *gorm.DB) GetShipmentStatusQueryHandler {
	return GetShipmentStatusQueryHandler{db: db}
}

// Handle executes the status lookup. An unknown shipment id fails with an
// errs.ObjectNotFoundError.
func (h GetShipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatusQuery,
) (GetShipmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	var status int
	err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID()).Scan(&status).Error
	if err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	// Raw().Scan leaves the destination untouched when no row matched.
	if status == int(shipment.Unknown) {
		return GetShipmentStatusQueryResponse{},
			errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}

	parsed := shipment.Status(status)
	if err = parsed.Validate(); err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	return GetShipmentStatusQueryResponse{
		ShipmentID: query.ShipmentID(),
		Status:     parsed,
	}, nil
}

// Package shipmentrepo provides the data transfer object and mapping
// functions for shipment persistence. It implements the repository pattern
// for the shipment aggregate, converting between the domain entity and its
// database representation.
package shipmentrepo

import (
	"time"

	"eshop/internal/core/domain/model/shipment"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Indexed by status and due date for the overdue sweep.
type ShipmentDTO struct {
	ID           string    `gorm:"type:uuid;primaryKey"`
	ShippingType string    `gorm:"type:varchar(64)"`
	ItemNames    []string  `gorm:"serializer:json;type:jsonb"`
	OrderID      string    `gorm:"type:varchar(64);index"`
	Status       int       `gorm:"index"`
	DueDate      time.Time `gorm:"index"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment aggregate to its database representation.
// The id must already be assigned; Add generates one for fresh aggregates
// before mapping.
func fromDomain(aggregate *shipment.Shipment, id string) ShipmentDTO {
	return ShipmentDTO{
		ID:           id,
		ShippingType: aggregate.ShippingType().String(),
		ItemNames:    aggregate.ItemNames(),
		OrderID:      aggregate.OrderID(),
		Status:       int(aggregate.Status()),
		DueDate:      aggregate.DueDate(),
	}
}

// toDomain converts a database DTO back to a shipment aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	shippingType, err := shipment.NewShippingType(dto.ShippingType)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		dto.ID,
		shippingType,
		dto.ItemNames,
		dto.OrderID,
		shipment.Status(dto.Status),
		dto.DueDate,
	)
}

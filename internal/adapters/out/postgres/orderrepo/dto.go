// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"meethere/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by user, venue and review status.
type OrderDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    string `gorm:"index"`
	VenueID   int64  `gorm:"index"`
	StartTime time.Time
	Hours     int
	Total     int
	OrderTime time.Time
	Status    int `gorm:"index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// A zero ID marks a not-yet-inserted aggregate and lets the store assign one.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:        aggregate.ID(),
		UserID:    aggregate.UserID(),
		VenueID:   aggregate.VenueID(),
		StartTime: aggregate.StartTime(),
		Hours:     aggregate.Hours(),
		Total:     aggregate.Total(),
		OrderTime: aggregate.OrderTime(),
		Status:    int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including review status using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.VenueID,
		dto.StartTime,
		dto.Hours,
		dto.Total,
		dto.OrderTime,
		order.Status(dto.Status),
	)
}

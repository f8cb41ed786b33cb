// Package venuerepo provides data transfer objects and mapping functions for
// venue persistence. Venues form the bookable catalog; the order component
// reads them to resolve names and derive booking costs.
package venuerepo

import (
	"meethere/internal/core/domain/model/venue"
)

// VenueDTO represents the database structure for persisting venues.
// The venue name carries a unique index because bookings reference venues by name.
type VenueDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"uniqueIndex"`
	Price int
}

// TableName specifies the database table name for venue entities.
func (VenueDTO) TableName() string {
	return "venues"
}

// fromDomain converts a venue domain entity to its database representation.
func fromDomain(entity *venue.Venue) VenueDTO {
	return VenueDTO{
		ID:    entity.ID(),
		Name:  entity.Name(),
		Price: entity.Price(),
	}
}

// toDomain converts a database DTO to a venue domain entity using RestoreVenue.
func toDomain(dto VenueDTO) (*venue.Venue, error) {
	return venue.RestoreVenue(dto.ID, dto.Name, dto.Price)
}

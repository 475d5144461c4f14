// Package videorepo provides data transfer objects and mapping functions for catalog persistence.
// Videos are read-mostly: the order flow only consults prices, catalog writes
// happen through seeding and back-office tooling.
package videorepo

import (
	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/video"

	"github.com/google/uuid"
)

// VideoDTO represents the database structure for persisting catalog videos.
type VideoDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"type:varchar(255);not null"`
	Price int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for video entities.
// Overrides GORM's default naming convention to use "videos".
func (VideoDTO) TableName() string {
	return "videos"
}

// fromDomain converts a video to its database representation.
func fromDomain(video *video.Video) VideoDTO {
	return VideoDTO{
		ID:    video.ID().Bytes(),
		Title: video.Title(),
		Price: video.Price(),
	}
}

// toDomain converts a database DTO to a video domain object.
func toDomain(dto VideoDTO) (*video.Video, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return video.RestoreVideo(id, dto.Title, dto.Price)
}

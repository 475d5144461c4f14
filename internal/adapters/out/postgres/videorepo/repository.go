package videorepo

import (
	"context"
	"errors"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/video"
	"vidstore/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVideoRepository implements VideoRepository using GORM.
type GormVideoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVideoRepository creates a new GORM video repository.
func NewGormVideoRepository(db *gorm.DB, tracker aggregateTracker) *GormVideoRepository {
	return &GormVideoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new video to the catalog.
func (r *GormVideoRepository) Add(ctx context.Context, aggregate *video.Video) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a video by ID.
func (r *GormVideoRepository) Get(ctx context.Context, id kernel.UUID) (*video.Video, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VideoDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("video", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the videos for the given identifiers, preserving the
// input order. Fails with ObjectNotFoundError if any identifier is unknown.
func (r *GormVideoRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*video.Video, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []VideoDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]VideoDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	videos := make([]*video.Video, 0, len(ids))
	for i, id := range ids {
		dto, ok := byID[rawIDs[i]]
		if !ok {
			return nil, errs.NewObjectNotFoundError("video", id.String())
		}

		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}

	return videos, nil
}

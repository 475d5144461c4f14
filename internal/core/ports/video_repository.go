package ports

import (
	"context"

	"vidstore/internal/core/domain/model/kernel"
	"vidstore/internal/core/domain/model/video"
)

// VideoRepository defines the persistence contract for catalog videos.
// Order creation reads prices through it; nothing in the order flow writes
// the catalog.
type VideoRepository interface {
	// Add persists a new video to the catalog.
	Add(ctx context.Context, aggregate *video.Video) error

	// Get retrieves a video by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*video.Video, error)

	// GetByIDs retrieves the videos for the given identifiers, preserving
	// the input order. Fails if any identifier is unknown.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*video.Video, error)
}

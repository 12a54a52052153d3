package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"newsdigest/internal/domain"
)

type StoryStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Story, error)
	LatestCreatedAt(ctx context.Context) (time.Time, error)
	ListBetween(ctx context.Context, from, to time.Time, source string, limit int) ([]domain.Story, error)
	SearchByTitle(ctx context.Context, terms []string, limit int) ([]domain.Story, error)
	ListWithAudio(ctx context.Context) ([]domain.Story, error)
	ListStamps(ctx context.Context, from, to time.Time) ([]domain.SourceStamp, error)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"newsdigest/internal/config"
	"newsdigest/internal/domain"
	"newsdigest/internal/result"
)

// ErrSearchQueryRequired is returned when a search is attempted with a
// blank query. The HTTP layer maps it to a 400.
var ErrSearchQueryRequired = errors.New("search query is required")

// NewsQuery carries the /news filters. A non-nil ID short-circuits every
// other filter.
type NewsQuery struct {
	ID     *int64
	Source string
	Date   string
	Limit  int
}

type NewsService struct {
	stories StoryStore
	logger  *slog.Logger
	config  config.NewsConfig
}

func NewNewsService(stories StoryStore, logger *slog.Logger, cfg config.NewsConfig) *NewsService {
	return &NewsService{
		stories: stories,
		logger:  logger,
		config:  cfg,
	}
}

// News returns the stories for one calendar day together with their
// derived views. With an ID set it returns at most that one story; a
// missing row yields an empty result, not an error. Without a date the day
// of the newest record is served.
func (s *NewsService) News(ctx context.Context, q NewsQuery) (*domain.Result, error) {
	if q.ID != nil {
		story, err := s.stories.GetByID(ctx, *q.ID)
		if err != nil {
			return nil, fmt.Errorf("get story: %w", err)
		}

		var stories []domain.Story
		if story != nil {
			stories = []domain.Story{*story}
		}
		res := result.Construct(stories)
		return &res, nil
	}

	day, err := s.resolveDay(ctx, q.Date)
	if err != nil {
		return nil, err
	}

	from := startOfDay(day)
	to := from.AddDate(0, 0, 1)

	limit := q.Limit
	if limit <= 0 {
		limit = s.config.DefaultLimit
	}

	stories, err := s.stories.ListBetween(ctx, from, to, q.Source, limit)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	s.logger.Debug("fetched stories",
		"day", from.Format("2006-01-02"),
		"source", q.Source,
		"count", len(stories),
	)

	res := result.Construct(stories)
	return &res, nil
}

// Search matches every whitespace-separated term of q against story titles
// (case-insensitive, logical AND) and returns the newest matches.
func (s *NewsService) Search(ctx context.Context, q string, limit int) (*domain.Result, error) {
	terms := strings.Fields(strings.ToLower(q))
	if len(terms) == 0 {
		return nil, ErrSearchQueryRequired
	}

	if limit <= 0 {
		limit = s.config.SearchLimit
	}

	stories, err := s.stories.SearchByTitle(ctx, terms, limit)
	if err != nil {
		return nil, fmt.Errorf("search stories: %w", err)
	}

	s.logger.Debug("search completed", "terms", terms, "count", len(stories))

	res := result.Construct(stories)
	return &res, nil
}

// Stats aggregates per-day per-source story counts over the trailing
// archive window, newest day first.
func (s *NewsService) Stats(ctx context.Context) (domain.NewsStats, error) {
	to := startOfDay(time.Now()).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -s.config.StatsWindowDays-1)

	stamps, err := s.stories.ListStamps(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list stamps: %w", err)
	}

	return aggregateStats(stamps), nil
}

// Audio flattens every story with an audio asset into its tracks, newest
// story first.
func (s *NewsService) Audio(ctx context.Context) ([]domain.Track, error) {
	stories, err := s.stories.ListWithAudio(ctx)
	if err != nil {
		return nil, fmt.Errorf("list audio stories: %w", err)
	}

	tracks := make([]domain.Track, 0, len(stories))
	for _, story := range stories {
		if story.Source != nil && *story.Source != "" {
			story.Cover = result.CoverFor(*story.Source)
		}
		tracks = append(tracks, result.TracksFor(story)...)
	}

	return tracks, nil
}

// resolveDay picks the calendar day to serve: the parsed date parameter
// when present, otherwise the day of the newest record, falling back to
// today on an empty table.
func (s *NewsService) resolveDay(ctx context.Context, raw string) (time.Time, error) {
	if raw != "" {
		return parseDate(raw)
	}

	latest, err := s.stories.LatestCreatedAt(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("latest record: %w", err)
	}
	if latest.IsZero() {
		return time.Now(), nil
	}
	return latest, nil
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// aggregateStats groups stamps into per-day per-source counts. Every
// source observed anywhere in the window is zero-filled on every day that
// has rows, so the archive table renders a full grid. Stamps without a
// source are skipped entirely.
func aggregateStats(stamps []domain.SourceStamp) domain.NewsStats {
	sources := make(map[string]struct{})
	for _, st := range stamps {
		if st.Source != nil && *st.Source != "" {
			sources[strings.ToLower(*st.Source)] = struct{}{}
		}
	}

	byDay := make(map[time.Time]map[string]int)
	for _, st := range stamps {
		if st.Source == nil || *st.Source == "" {
			continue
		}

		day := startOfDay(st.CreatedAt)
		counts, ok := byDay[day]
		if !ok {
			counts = make(map[string]int, len(sources))
			for src := range sources {
				counts[src] = 0
			}
			byDay[day] = counts
		}
		counts[strings.ToLower(*st.Source)]++
	}

	stats := make(domain.NewsStats, 0, len(byDay))
	for day, counts := range byDay {
		stats = append(stats, domain.StatsDay{Date: day, Counts: counts})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date.After(stats[j].Date)
	})

	return stats
}

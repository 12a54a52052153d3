package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"newsdigest/internal/domain"
)

const storyColumns = `id, story_id, title, url, source, score, hn_url, summary,
	comments_summary, speech_url, notebooklm_url, deleted, created_at`

type StoryStore struct {
	db *sqlx.DB
}

func NewStoryStore(db *sqlx.DB) *StoryStore {
	return &StoryStore{db: db}
}

// GetByID fetches a single story by its internal id. A missing row is not
// an error: the endpoint answers it with an empty result set.
func (s *StoryStore) GetByID(ctx context.Context, id int64) (*domain.Story, error) {
	var story domain.Story
	query := `SELECT ` + storyColumns + ` FROM stories WHERE id = $1`

	err := s.db.GetContext(ctx, &story, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &story, nil
}

// LatestCreatedAt returns the timestamp of the newest story, or the zero
// time when the table is empty.
func (s *StoryStore) LatestCreatedAt(ctx context.Context) (time.Time, error) {
	var ts time.Time
	query := `SELECT created_at FROM stories ORDER BY created_at DESC LIMIT 1`

	err := s.db.GetContext(ctx, &ts, query)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return ts, nil
}

// ListBetween returns stories created in [from, to), optionally restricted
// to one source, ordered by source then descending score.
func (s *StoryStore) ListBetween(ctx context.Context, from, to time.Time, source string, limit int) ([]domain.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM stories WHERE created_at >= $1 AND created_at < $2`
	args := []interface{}{from, to}

	if source != "" {
		args = append(args, source)
		query += fmt.Sprintf(" AND source = $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY source ASC, score DESC NULLS LAST LIMIT $%d", len(args))

	var stories []domain.Story
	if err := s.db.SelectContext(ctx, &stories, query, args...); err != nil {
		return nil, err
	}
	return stories, nil
}

// SearchByTitle returns stories whose title matches every term
// (case-insensitive substring match), newest first. Soft-deleted rows are
// excluded.
func (s *StoryStore) SearchByTitle(ctx context.Context, terms []string, limit int) ([]domain.Story, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + storyColumns + ` FROM stories WHERE deleted IS NOT TRUE`)

	args := make([]interface{}, 0, len(terms)+1)
	for _, term := range terms {
		args = append(args, "%"+term+"%")
		fmt.Fprintf(&sb, " AND title ILIKE $%d", len(args))
	}

	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY created_at DESC LIMIT $%d", len(args))

	var stories []domain.Story
	if err := s.db.SelectContext(ctx, &stories, sb.String(), args...); err != nil {
		return nil, err
	}
	return stories, nil
}

// ListWithAudio returns every story carrying at least one audio asset,
// newest first.
func (s *StoryStore) ListWithAudio(ctx context.Context) ([]domain.Story, error) {
	query := `SELECT ` + storyColumns + ` FROM stories
		WHERE speech_url IS NOT NULL OR notebooklm_url IS NOT NULL
		ORDER BY created_at DESC`

	var stories []domain.Story
	if err := s.db.SelectContext(ctx, &stories, query); err != nil {
		return nil, err
	}
	return stories, nil
}

// ListStamps returns the (created_at, source) pairs of stories created in
// [from, to). The stats aggregation works off this minimal projection.
func (s *StoryStore) ListStamps(ctx context.Context, from, to time.Time) ([]domain.SourceStamp, error) {
	query := `SELECT created_at, source FROM stories WHERE created_at >= $1 AND created_at < $2`

	var stamps []domain.SourceStamp
	if err := s.db.SelectContext(ctx, &stamps, query, from, to); err != nil {
		return nil, err
	}
	return stamps, nil
}

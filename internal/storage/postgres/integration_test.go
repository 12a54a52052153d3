//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"newsdigest/internal/domain"
	"newsdigest/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	store     *StoryStore
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_stories.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
	s.store = NewStoryStore(db)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM stories")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) insertStory(story domain.Story) int64 {
	var id int64
	err := s.db.QueryRowContext(s.ctx, `
		INSERT INTO stories (
			story_id, title, url, source, score, hn_url, summary,
			comments_summary, speech_url, notebooklm_url, deleted, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		story.StoryID,
		story.Title,
		story.URL,
		story.Source,
		story.Score,
		story.HNURL,
		story.Summary,
		story.CommentsSummary,
		story.SpeechURL,
		story.NotebookLMURL,
		story.Deleted,
		story.CreatedAt,
	).Scan(&id)
	s.Require().NoError(err)
	return id
}

func (s *PostgresIntegrationSuite) TestGetByID() {
	now := time.Now().Truncate(time.Microsecond)

	id := s.insertStory(domain.Story{
		StoryID:   1001,
		Title:     "Test Story",
		URL:       "https://example.com/story",
		Source:    utils.Ptr("hackernews"),
		Score:     utils.Ptr(120),
		SpeechURL: utils.Ptr("https://example.com/a.mp3"),
		CreatedAt: now,
	})

	story, err := s.store.GetByID(s.ctx, id)
	s.NoError(err)
	s.Require().NotNil(story)
	s.Equal(int64(1001), story.StoryID)
	s.Equal("Test Story", story.Title)
	s.Require().NotNil(story.Source)
	s.Equal("hackernews", *story.Source)
}

func (s *PostgresIntegrationSuite) TestGetByID_NotFound() {
	story, err := s.store.GetByID(s.ctx, 999999)
	s.NoError(err)
	s.Nil(story)
}

func (s *PostgresIntegrationSuite) TestLatestCreatedAt_EmptyTable() {
	ts, err := s.store.LatestCreatedAt(s.ctx)
	s.NoError(err)
	s.True(ts.IsZero())
}

func (s *PostgresIntegrationSuite) TestLatestCreatedAt() {
	older := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	s.insertStory(domain.Story{StoryID: 1, Title: "old", URL: "u", CreatedAt: older})
	s.insertStory(domain.Story{StoryID: 2, Title: "new", URL: "u", CreatedAt: newer})

	ts, err := s.store.LatestCreatedAt(s.ctx)
	s.NoError(err)
	s.True(ts.Equal(newer))
}

func (s *PostgresIntegrationSuite) TestListBetween_DayWindowAndOrder() {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.insertStory(domain.Story{StoryID: 1, Title: "hn low", URL: "u", Source: utils.Ptr("hackernews"), Score: utils.Ptr(10), CreatedAt: day.Add(8 * time.Hour)})
	s.insertStory(domain.Story{StoryID: 2, Title: "hn high", URL: "u", Source: utils.Ptr("hackernews"), Score: utils.Ptr(500), CreatedAt: day.Add(9 * time.Hour)})
	s.insertStory(domain.Story{StoryID: 3, Title: "tc", URL: "u", Source: utils.Ptr("techcrunch"), CreatedAt: day.Add(10 * time.Hour)})
	s.insertStory(domain.Story{StoryID: 4, Title: "previous day", URL: "u", Source: utils.Ptr("hackernews"), CreatedAt: day.Add(-2 * time.Hour)})

	stories, err := s.store.ListBetween(s.ctx, day, day.AddDate(0, 0, 1), "", 100)
	s.NoError(err)
	s.Require().Len(stories, 3)

	// source ascending, score descending, nulls last
	s.Equal(int64(2), stories[0].StoryID)
	s.Equal(int64(1), stories[1].StoryID)
	s.Equal(int64(3), stories[2].StoryID)
}

func (s *PostgresIntegrationSuite) TestListBetween_SourceFilterAndLimit() {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.insertStory(domain.Story{StoryID: 1, Title: "hn", URL: "u", Source: utils.Ptr("hackernews"), Score: utils.Ptr(5), CreatedAt: day.Add(time.Hour)})
	s.insertStory(domain.Story{StoryID: 2, Title: "hn2", URL: "u", Source: utils.Ptr("hackernews"), Score: utils.Ptr(9), CreatedAt: day.Add(time.Hour)})
	s.insertStory(domain.Story{StoryID: 3, Title: "tc", URL: "u", Source: utils.Ptr("techcrunch"), CreatedAt: day.Add(time.Hour)})

	stories, err := s.store.ListBetween(s.ctx, day, day.AddDate(0, 0, 1), "hackernews", 1)
	s.NoError(err)
	s.Require().Len(stories, 1)
	s.Equal(int64(2), stories[0].StoryID)
}

func (s *PostgresIntegrationSuite) TestSearchByTitle() {
	now := time.Now().Truncate(time.Microsecond)

	s.insertStory(domain.Story{StoryID: 1, Title: "AI agents are coming", URL: "u", CreatedAt: now.Add(-2 * time.Hour)})
	s.insertStory(domain.Story{StoryID: 2, Title: "Agents of AI change everything", URL: "u", CreatedAt: now.Add(-1 * time.Hour)})
	s.insertStory(domain.Story{StoryID: 3, Title: "Unrelated kernel news", URL: "u", CreatedAt: now})
	s.insertStory(domain.Story{StoryID: 4, Title: "Deleted AI agents story", URL: "u", Deleted: true, CreatedAt: now})

	stories, err := s.store.SearchByTitle(s.ctx, []string{"ai", "agents"}, 10)
	s.NoError(err)
	s.Require().Len(stories, 2)

	// newest first, soft-deleted rows excluded
	s.Equal(int64(2), stories[0].StoryID)
	s.Equal(int64(1), stories[1].StoryID)
}

func (s *PostgresIntegrationSuite) TestListWithAudio() {
	now := time.Now().Truncate(time.Microsecond)

	s.insertStory(domain.Story{StoryID: 1, Title: "speech only", URL: "u", SpeechURL: utils.Ptr("a.mp3"), CreatedAt: now.Add(-2 * time.Hour)})
	s.insertStory(domain.Story{StoryID: 2, Title: "podcast only", URL: "u", NotebookLMURL: utils.Ptr("p.mp3"), CreatedAt: now.Add(-1 * time.Hour)})
	s.insertStory(domain.Story{StoryID: 3, Title: "silent", URL: "u", CreatedAt: now})

	stories, err := s.store.ListWithAudio(s.ctx)
	s.NoError(err)
	s.Require().Len(stories, 2)
	s.Equal(int64(2), stories[0].StoryID)
	s.Equal(int64(1), stories[1].StoryID)
}

func (s *PostgresIntegrationSuite) TestListStamps() {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.insertStory(domain.Story{StoryID: 1, Title: "in", URL: "u", Source: utils.Ptr("hackernews"), CreatedAt: day.Add(time.Hour)})
	s.insertStory(domain.Story{StoryID: 2, Title: "out", URL: "u", Source: utils.Ptr("hackernews"), CreatedAt: day.AddDate(0, 0, 2)})

	stamps, err := s.store.ListStamps(s.ctx, day, day.AddDate(0, 0, 1))
	s.NoError(err)
	s.Require().Len(stamps, 1)
	s.Require().NotNil(stamps[0].Source)
	s.Equal("hackernews", *stamps[0].Source)
}

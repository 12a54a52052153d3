package domain

import "time"

// Track type labels. Every playable unit derived from a story carries one
// of these.
const (
	TrackTypeAudio   = "Article audio"
	TrackTypePodcast = "AI-generated podcast"
)

// Story is one aggregated article record as stored upstream. Optional
// columns are pointers so a missing value survives the round trip instead
// of collapsing to a zero value.
type Story struct {
	ID              int64     `db:"id" json:"id"`
	StoryID         int64     `db:"story_id" json:"story_id"`
	Title           string    `db:"title" json:"title"`
	URL             string    `db:"url" json:"url"`
	Source          *string   `db:"source" json:"source"`
	Score           *int      `db:"score" json:"score,omitempty"`
	HNURL           *string   `db:"hn_url" json:"hn_url,omitempty"`
	Summary         *string   `db:"summary" json:"summary,omitempty"`
	CommentsSummary *string   `db:"comments_summary" json:"comments_summary,omitempty"`
	SpeechURL       *string   `db:"speech_url" json:"speech_url,omitempty"`
	NotebookLMURL   *string   `db:"notebooklm_url" json:"notebooklm_url,omitempty"`
	Deleted         bool      `db:"deleted" json:"-"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`

	// Cover is derived from Source at response-construction time and is
	// never persisted.
	Cover string `db:"-" json:"cover"`
}

// HasAudio reports whether the story carries at least one playable asset.
func (s Story) HasAudio() bool {
	return (s.SpeechURL != nil && *s.SpeechURL != "") ||
		(s.NotebookLMURL != nil && *s.NotebookLMURL != "")
}

// Track is one playable audio unit derived from a story. Tracks are built
// fresh on every response and never mutated afterwards.
type Track struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	AudioURL  string    `json:"audioUrl"`
	Cover     string    `json:"cover"`
	CreatedAt time.Time `json:"createdAt"`
}

// Result is the three-view payload served by the news and search endpoints.
type Result struct {
	Stories       []Story        `json:"stories"`
	AudioTracks   []Track        `json:"audioTracks"`
	CountBySource map[string]int `json:"countBySource"`
}

// Package result derives the response views served to the client: stories
// annotated with a cover image, the flattened audio playlist, and
// per-source counts. Everything here is a pure transformation over rows
// already fetched from storage.
package result

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"newsdigest/internal/domain"
)

// Per-source branding images. Sources without a dedicated cover fall back
// to the default one.
const (
	CoverTechCrunch = "/images/covers/techcrunch.png"
	CoverHackerNews = "/images/covers/hackernews.png"
	CoverDefault    = "/images/covers/default.png"
)

// CoverFor returns the display cover for a source tag. Matching is
// case-insensitive and the function is total: unknown sources get the
// default cover.
func CoverFor(source string) string {
	switch strings.ToLower(source) {
	case "techcrunch":
		return CoverTechCrunch
	case "hackernews":
		return CoverHackerNews
	default:
		return CoverDefault
	}
}

// Construct builds the three derived views from raw story rows. It never
// fails: an empty or nil input yields empty views. Stories without a
// source keep rendering but get an empty cover and are left out of the
// per-source counts.
func Construct(stories []domain.Story) domain.Result {
	annotated := lo.Map(stories, func(s domain.Story, _ int) domain.Story {
		if s.Source == nil || *s.Source == "" {
			s.Cover = ""
		} else {
			s.Cover = CoverFor(*s.Source)
		}
		return s
	})

	tracks := make([]domain.Track, 0, len(annotated))
	for _, s := range annotated {
		tracks = append(tracks, TracksFor(s)...)
	}

	counted := lo.Filter(annotated, func(s domain.Story, _ int) bool {
		return s.Source != nil && *s.Source != ""
	})
	counts := lo.CountValuesBy(counted, func(s domain.Story) string {
		return strings.ToLower(*s.Source)
	})

	return domain.Result{
		Stories:       annotated,
		AudioTracks:   tracks,
		CountBySource: counts,
	}
}

// TracksFor flattens one story into its playable tracks: the article audio
// first, then the generated podcast. Stories contribute zero, one, or two
// tracks.
func TracksFor(s domain.Story) []domain.Track {
	var tracks []domain.Track

	if s.SpeechURL != nil && *s.SpeechURL != "" {
		tracks = append(tracks, domain.Track{
			ID:        fmt.Sprintf("%d_audio", s.StoryID),
			Title:     s.Title,
			Type:      domain.TrackTypeAudio,
			AudioURL:  *s.SpeechURL,
			Cover:     s.Cover,
			CreatedAt: s.CreatedAt,
		})
	}

	if s.NotebookLMURL != nil && *s.NotebookLMURL != "" {
		tracks = append(tracks, domain.Track{
			ID:        fmt.Sprintf("%d_podcast", s.StoryID),
			Title:     s.Title,
			Type:      domain.TrackTypePodcast,
			AudioURL:  *s.NotebookLMURL,
			Cover:     s.Cover,
			CreatedAt: s.CreatedAt,
		})
	}

	return tracks
}

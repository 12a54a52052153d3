// Package player holds the shared playback state: the current track, the
// ordered playlist, and the playing/visible flags. It is the single source
// of truth for every surface that can start or display playback.
package player

import (
	"sync"

	"newsdigest/internal/domain"
)

// Player is an explicitly constructed state container. Transitions are
// total: operating on an empty playlist or an absent current track is a
// no-op, never an error. Reads from concurrent surfaces and writes from
// the event path serialize through the internal lock.
type Player struct {
	mu sync.Mutex

	current  *domain.Track
	playlist []domain.Track
	playing  bool
	visible  bool
	volume   float64
}

// New returns an idle player: no track, not visible, full volume.
func New() *Player {
	return &Player{volume: 1}
}

// SelectTrack makes track the current one and reveals the player surface.
// It does not start playback; callers follow up with SetIsPlaying(true).
// Selecting while another track is playing supersedes it, there is never
// more than one current track.
func (p *Player) SelectTrack(track domain.Track) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = &track
	p.visible = true
}

// SetPlaylist replaces the ordered playlist wholesale. The current track is
// untouched even if it no longer appears in the new playlist.
func (p *Player) SetPlaylist(tracks []domain.Track) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.playlist = make([]domain.Track, len(tracks))
	copy(p.playlist, tracks)
}

// SetIsPlaying toggles the playing flag. Playing without a current track is
// meaningless, so the flag stays false until a track is selected.
func (p *Player) SetIsPlaying(playing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		p.playing = false
		return
	}
	p.playing = playing
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.volume = volume
}

// PlayNext advances to the playlist entry after the current track and
// starts playing it. At the end of the playlist, or when the current track
// is not in the playlist at all, playback stops and the current track is
// left unchanged. There is no wraparound.
func (p *Player) PlayNext() {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.currentIndex()
	if idx < 0 || idx >= len(p.playlist)-1 {
		p.playing = false
		return
	}

	next := p.playlist[idx+1]
	p.current = &next
	p.playing = true
}

// PlayPrevious steps back to the playlist entry before the current track.
// Boundary policy mirrors PlayNext: stop at the first entry, no wraparound.
func (p *Player) PlayPrevious() {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.currentIndex()
	if idx <= 0 {
		p.playing = false
		return
	}

	prev := p.playlist[idx-1]
	p.current = &prev
	p.playing = true
}

// Close resets the player to idle: no current track, not playing, surface
// hidden. The playlist and volume survive so reopening resumes where the
// user left things.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current = nil
	p.playing = false
	p.visible = false
}

// CurrentTrack returns the selected track, if any.
func (p *Player) CurrentTrack() (domain.Track, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return domain.Track{}, false
	}
	return *p.current, true
}

// IsPlaying reports whether playback is active.
func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// IsVisible reports whether the player surface is shown.
func (p *Player) IsVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Volume returns the current playback volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// Playlist returns a copy of the ordered playlist.
func (p *Player) Playlist() []domain.Track {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracks := make([]domain.Track, len(p.playlist))
	copy(tracks, p.playlist)
	return tracks
}

// currentIndex locates the current track in the playlist by id. Callers
// hold the lock. Returns -1 when there is no current track or it is not in
// the playlist.
func (p *Player) currentIndex() int {
	if p.current == nil {
		return -1
	}
	for i, t := range p.playlist {
		if t.ID == p.current.ID {
			return i
		}
	}
	return -1
}

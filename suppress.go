package ansilog

import (
	"sync"
	"time"
)

// DefaultSuppressionWindow is how long an identical message on the
// same channel stays suppressed after its last visible output.
const DefaultSuppressionWindow = time.Second

// Suppressor drops messages that repeat an identical text on the same
// channel within a time window. It keeps one entry per channel, the
// last visible text with its timestamp and a count of duplicates
// swallowed since. Safe for concurrent use.
type Suppressor struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]*suppressed
	now     func() time.Time
}

type suppressed struct {
	text    string
	visible time.Time
	repeats int
}

// NewSuppressor builds a Suppressor. A window of zero or less selects
// DefaultSuppressionWindow.
func NewSuppressor(window time.Duration) *Suppressor {
	if window <= 0 {
		window = DefaultSuppressionWindow
	}
	return &Suppressor{
		window:  window,
		entries: make(map[string]*suppressed),
		now:     time.Now,
	}
}

// Check records a message on a channel and decides its fate.
// A text identical to the channel's last visible output, arriving
// inside the window and without force, is suppressed and counted.
// Otherwise the message is visible and repeats reports how many
// duplicates were swallowed since it was last shown, zero for a fresh
// text.
func (s *Suppressor) Check(channel, text string, force bool) (isSuppressed bool, repeats int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	e := s.entries[channel]
	if e == nil || e.text != text {
		s.entries[channel] = &suppressed{text: text, visible: now}
		return false, 0
	}
	if !force && now.Sub(e.visible) <= s.window {
		e.repeats++
		return true, 0
	}
	repeats = e.repeats
	e.repeats = 0
	e.visible = now
	return false, repeats
}

// Evict drops every entry whose last visible output has aged past the
// window, including any swallowed duplicate count.
func (s *Suppressor) Evict() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for channel, e := range s.entries {
		if now.Sub(e.visible) > s.window {
			delete(s.entries, channel)
		}
	}
}

// Len reports how many channels currently hold an entry.
func (s *Suppressor) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

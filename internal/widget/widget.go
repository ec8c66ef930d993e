// Package widget is the passive display surface: it only reads the shared
// snapshot and never fetches weather itself.
package widget

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

// Entry is one rendered state of the display.
type Entry struct {
	Date        time.Time
	Suggestions weather.DailySuggestions
	Stored      bool // false when the neutral default is shown
}

// Display reads the shared snapshot on its own schedule.
type Display struct {
	store weather.SnapshotStore
	now   func() time.Time

	mu       sync.Mutex
	seen     bool
	lastSeen time.Time // LastUpdated of the last stored snapshot shown
}

// NewDisplay creates a display reading from store. A nil now uses time.Now.
func NewDisplay(store weather.SnapshotStore, now func() time.Time) *Display {
	if now == nil {
		now = time.Now
	}
	return &Display{store: store, now: now}
}

// Entry loads the latest snapshot, falling back to the all-clear default.
func (d *Display) Entry(ctx context.Context) Entry {
	e, _ := d.load(ctx)
	return e
}

// Changed loads the snapshot and reports whether a save happened since the
// last Entry or Changed call.
func (d *Display) Changed(ctx context.Context) (Entry, bool) {
	return d.load(ctx)
}

func (d *Display) load(ctx context.Context) (Entry, bool) {
	now := d.now()
	s, ok := d.store.Load(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if !ok {
		return Entry{Date: now, Suggestions: weather.DefaultSuggestions(now)}, false
	}

	changed := !d.seen || !s.LastUpdated.Equal(d.lastSeen)
	d.seen, d.lastSeen = true, s.LastUpdated
	return Entry{Date: now, Suggestions: s, Stored: true}, changed
}

// Render writes a plain-text view of e.
func Render(w io.Writer, e Entry) error {
	s := e.Suggestions
	var b strings.Builder
	fmt.Fprintf(&b, "Today: %s\n", strings.Join(s.Items(), ", "))
	fmt.Fprintf(&b, "Temp %.0f°C to %.0f°C, precipitation %.1f mm\n", s.MinTemp, s.MaxTemp, s.TotalPrecipitation)
	if e.Stored {
		fmt.Fprintf(&b, "Updated %s\n", s.LastUpdated.Local().Format("Jan 2 15:04"))
	} else {
		b.WriteString("No forecast yet. Open the app to fetch one.\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// NextRefresh returns the first occurrence of the "15:04" time of day strictly after now,
// in now's location.
func NextRefresh(now time.Time, at string) (time.Time, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid refresh time %q: %w", at, err)
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next, nil
}

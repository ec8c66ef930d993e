package widget

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/i474232898/weather-suggestions/internal/store"
	"github.com/i474232898/weather-suggestions/internal/weather"
)

var widgetNow = time.Date(2026, 10, 19, 6, 45, 0, 0, time.UTC)

func fixedNow() time.Time { return widgetNow }

func TestDisplay_DefaultWhenNothingStored(t *testing.T) {
	d := NewDisplay(store.NewMemoryStore(), fixedNow)

	e := d.Entry(context.Background())
	if e.Stored {
		t.Fatal("expected default entry")
	}
	if e.Suggestions != weather.DefaultSuggestions(widgetNow) {
		t.Fatalf("unexpected default %+v", e.Suggestions)
	}

	var buf bytes.Buffer
	if err := Render(&buf, e); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Today: Looking good") || !strings.Contains(out, "No forecast yet") {
		t.Fatalf("unexpected render:\n%s", out)
	}
}

func TestDisplay_StoredSnapshot(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	s.Save(context.Background(), weather.DailySuggestions{
		NeedsUmbrella: true,
		NeedsJacket:   true,
		MinTemp:       4,
		MaxTemp:       11,
		LastUpdated:   widgetNow.Add(-time.Hour),
	})

	e := NewDisplay(s, fixedNow).Entry(context.Background())
	if !e.Stored || !e.Suggestions.NeedsUmbrella {
		t.Fatalf("expected stored snapshot, got %+v", e)
	}

	var buf bytes.Buffer
	if err := Render(&buf, e); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Today: Umbrella, Jacket") || !strings.Contains(out, "Updated ") {
		t.Fatalf("unexpected render:\n%s", out)
	}
}

func TestNextRefresh(t *testing.T) {
	cases := []struct {
		now  time.Time
		at   string
		want time.Time
	}{
		{widgetNow, "07:00", time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)},
		{widgetNow, "06:45", time.Date(2026, 10, 20, 6, 45, 0, 0, time.UTC)},
		{widgetNow, "00:00", time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got, err := NextRefresh(c.now, c.at)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.at, err)
		}
		if !got.Equal(c.want) {
			t.Errorf("%s: expected %v, got %v", c.at, c.want, got)
		}
	}

	if _, err := NextRefresh(widgetNow, "7am"); err == nil {
		t.Error("expected error for invalid time")
	}
}

func TestDisplay_ChangedAfterSave(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	d := NewDisplay(s, fixedNow)

	if _, changed := d.Changed(context.Background()); changed {
		t.Fatal("expected no change while nothing is stored")
	}

	first := weather.DailySuggestions{NeedsJacket: true, LastUpdated: widgetNow.Add(-time.Hour)}
	s.Save(context.Background(), first)

	e, changed := d.Changed(context.Background())
	if !changed || !e.Stored || !e.Suggestions.NeedsJacket {
		t.Fatalf("expected first save to be picked up, got %+v (changed=%v)", e, changed)
	}
	if _, changed := d.Changed(context.Background()); changed {
		t.Fatal("expected no change without a new save")
	}

	second := weather.DailySuggestions{NeedsUmbrella: true, LastUpdated: widgetNow}
	s.Save(context.Background(), second)

	e, changed = d.Changed(context.Background())
	if !changed || !e.Suggestions.NeedsUmbrella {
		t.Fatalf("expected second save to be picked up, got %+v (changed=%v)", e, changed)
	}
}

func TestDisplay_EntryMarksSnapshotSeen(t *testing.T) {
	s := store.NewMemoryStore()
	s.Save(context.Background(), weather.DailySuggestions{LastUpdated: widgetNow})
	d := NewDisplay(s, fixedNow)

	d.Entry(context.Background())
	if _, changed := d.Changed(context.Background()); changed {
		t.Fatal("expected snapshot already shown by Entry to be unchanged")
	}
}

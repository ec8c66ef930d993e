package weather

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLocationTracker_CurrentBeforeAnyEvent(t *testing.T) {
	tr := NewLocationTracker()
	if _, err := tr.Current(); !errors.Is(err, ErrLocationUnavailable) {
		t.Fatalf("expected ErrLocationUnavailable, got %v", err)
	}
	if tr.Status() != AuthorizationNotDetermined {
		t.Fatalf("expected not_determined, got %s", tr.Status())
	}
}

func TestLocationTracker_AwaitWakesOnCoordinates(t *testing.T) {
	tr := NewLocationTracker()
	want := Coordinates{Lat: 60.17, Lon: 24.94}

	done := make(chan struct{})
	var (
		got Coordinates
		err error
	)
	go func() {
		defer close(done)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		got, err = tr.Await(ctx)
	}()

	tr.SetAuthorization(AuthorizationAuthorized)
	tr.UpdateCoordinates(want)
	<-done

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestLocationTracker_AwaitWakesOnDenial(t *testing.T) {
	tr := NewLocationTracker()

	errCh := make(chan error, 1)
	go func() {
		_, err := tr.Await(context.Background())
		errCh <- err
	}()

	tr.SetAuthorization(AuthorizationDenied)

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrLocationDenied) {
			t.Fatalf("expected ErrLocationDenied, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Await did not return after denial")
	}
}

func TestLocationTracker_AwaitTimesOut(t *testing.T) {
	tr := NewLocationTracker()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := tr.Await(ctx)
	if !errors.Is(err, ErrLocationUnavailable) {
		t.Fatalf("expected ErrLocationUnavailable, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline in error chain, got %v", err)
	}
}

func TestLocationTracker_DenialClearsCoordinates(t *testing.T) {
	tr := NewLocationTracker()
	tr.UpdateCoordinates(Coordinates{Lat: 1, Lon: 2})
	tr.SetAuthorization(AuthorizationDenied)

	if _, err := tr.Current(); !errors.Is(err, ErrLocationDenied) {
		t.Fatalf("expected ErrLocationDenied, got %v", err)
	}
}

func TestParseAuthorizationStatus(t *testing.T) {
	for _, s := range []string{"not_determined", "denied", "authorized"} {
		if _, err := ParseAuthorizationStatus(s); err != nil {
			t.Errorf("expected %q to parse, got %v", s, err)
		}
	}
	if _, err := ParseAuthorizationStatus("maybe"); err == nil {
		t.Error("expected error for unknown status")
	}
}

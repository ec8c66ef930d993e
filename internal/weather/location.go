package weather

import (
	"context"
	"fmt"
	"sync"
)

// AuthorizationStatus mirrors the platform's location permission state.
type AuthorizationStatus string

const (
	AuthorizationNotDetermined AuthorizationStatus = "not_determined"
	AuthorizationDenied        AuthorizationStatus = "denied"
	AuthorizationAuthorized    AuthorizationStatus = "authorized"
)

// ParseAuthorizationStatus validates a status reported by a client.
func ParseAuthorizationStatus(s string) (AuthorizationStatus, error) {
	switch st := AuthorizationStatus(s); st {
	case AuthorizationNotDetermined, AuthorizationDenied, AuthorizationAuthorized:
		return st, nil
	default:
		return "", fmt.Errorf("unknown authorization status %q", s)
	}
}

// LocationTracker holds the latest location events and wakes waiters when
// coordinates arrive or access is denied.
type LocationTracker struct {
	mu      sync.Mutex
	status  AuthorizationStatus
	coords  *Coordinates
	changed chan struct{}
}

// NewLocationTracker creates a tracker in the not-determined state.
func NewLocationTracker() *LocationTracker {
	return &LocationTracker{
		status:  AuthorizationNotDetermined,
		changed: make(chan struct{}),
	}
}

// SetAuthorization records a permission change.
func (t *LocationTracker) SetAuthorization(status AuthorizationStatus) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = status
	if status == AuthorizationDenied {
		t.coords = nil
	}
	t.broadcastLocked()
}

// UpdateCoordinates records a location fix. A fix implies authorization.
func (t *LocationTracker) UpdateCoordinates(c Coordinates) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.coords = &c
	t.status = AuthorizationAuthorized
	t.broadcastLocked()
}

// Status returns the last reported authorization state.
func (t *LocationTracker) Status() AuthorizationStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Current returns the known coordinates without waiting.
func (t *LocationTracker) Current() (Coordinates, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, _, err := t.resolveLocked()
	return c, err
}

// Await blocks until coordinates are known or access is denied.
// When ctx ends first it returns ErrLocationUnavailable.
func (t *LocationTracker) Await(ctx context.Context) (Coordinates, error) {
	for {
		t.mu.Lock()
		c, done, err := t.resolveLocked()
		wait := t.changed
		t.mu.Unlock()

		if done {
			return c, err
		}

		select {
		case <-ctx.Done():
			return Coordinates{}, fmt.Errorf("%w: %w", ErrLocationUnavailable, ctx.Err())
		case <-wait:
		}
	}
}

// resolveLocked reports the current answer and whether it is final.
func (t *LocationTracker) resolveLocked() (Coordinates, bool, error) {
	if t.status == AuthorizationDenied {
		return Coordinates{}, true, ErrLocationDenied
	}
	if t.coords != nil {
		return *t.coords, true, nil
	}
	return Coordinates{}, false, ErrLocationUnavailable
}

func (t *LocationTracker) broadcastLocked() {
	close(t.changed)
	t.changed = make(chan struct{})
}

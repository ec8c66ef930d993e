package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed covers transport failures and undecodable responses.
	ErrFetchFailed = errors.New("weather fetch failed")

	// ErrLocationUnavailable is returned when no coordinates are known yet.
	ErrLocationUnavailable = errors.New("location unavailable")

	// ErrLocationDenied is returned when the user refused location access.
	ErrLocationDenied = errors.New("location access denied")

	// ErrNoReport is returned when nothing has been fetched yet.
	ErrNoReport = errors.New("no weather fetched yet")
)

// ServerError is returned when the upstream API answers with a non-200 status.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("weather service returned status %d", e.StatusCode)
}

// UserMessage turns an error from the fetch pipeline into the text shown to the user.
func UserMessage(err error) string {
	var serverErr *ServerError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrLocationDenied):
		return "Location was denied. Enable it in Settings to get local weather."
	case errors.Is(err, ErrLocationUnavailable):
		return "Could not get your location. Try again or check Settings."
	case errors.As(err, &serverErr):
		return fmt.Sprintf("Weather service returned error %d. Try again in a moment.", serverErr.StatusCode)
	default:
		return "Could not load weather. Check your connection and try again."
	}
}

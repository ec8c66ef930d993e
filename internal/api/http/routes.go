package httpapi

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

var validate = validator.New()

// maxLocationWait caps how long a request may wait for the first location fix.
const maxLocationWait = 30 * time.Second

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		coords, err := resolveCoordinates(c, service.Tracker())
		if err != nil {
			return err
		}

		report, err := service.Refresh(c.UserContext(), coords)
		if err != nil {
			return fetchError(err)
		}

		return c.JSON(fiber.Map{
			"coordinates": report.Coordinates,
			"weather":     newWeatherView(report.Weather),
			"suggestions": newSuggestionsView(report.Suggestions, true),
			"fetchedAt":   report.FetchedAt,
		})
	})

	v1.Post("/location", func(c *fiber.Ctx) error {
		var req locationEvent
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid location event body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		status, err := weather.ParseAuthorizationStatus(req.Status)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		tracker := service.Tracker()
		tracker.SetAuthorization(status)
		if req.Lat != nil && req.Lon != nil && status != weather.AuthorizationDenied {
			tracker.UpdateCoordinates(weather.Coordinates{Lat: *req.Lat, Lon: *req.Lon})
		}

		return c.JSON(fiber.Map{"status": tracker.Status()})
	})

	v1.Get("/suggestions", func(c *fiber.Ctx) error {
		snapshot, stored := service.Snapshot(c.UserContext())
		return c.JSON(newSuggestionsView(snapshot, stored))
	})

	v1.Post("/reminders", func(c *fiber.Ctx) error {
		reminder, err := service.Remind(c.UserContext())
		if err != nil {
			if errors.Is(err, weather.ErrNoReport) {
				return fiber.NewError(fiber.StatusNotFound, "no weather loaded yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to schedule reminder")
		}
		return c.Status(fiber.StatusCreated).JSON(reminder)
	})
}

// locationEvent is what the geolocation collaborator reports.
type locationEvent struct {
	Status string   `json:"status" validate:"required"`
	Lat    *float64 `json:"lat" validate:"required_with=Lon,omitempty,latitude"`
	Lon    *float64 `json:"lon" validate:"required_with=Lat,omitempty,longitude"`
}

// resolveCoordinates prefers explicit lat/lon query parameters and otherwise
// asks the location tracker, optionally waiting up to ?wait= for a fix.
func resolveCoordinates(c *fiber.Ctx, tracker *weather.LocationTracker) (weather.Coordinates, error) {
	latStr, lonStr := c.Query("lat"), c.Query("lon")
	if latStr != "" || lonStr != "" {
		return parseCoordinates(latStr, lonStr)
	}

	wait := time.Duration(0)
	if w := c.Query("wait"); w != "" {
		d, err := time.ParseDuration(w)
		if err != nil || d < 0 {
			return weather.Coordinates{}, fiber.NewError(fiber.StatusBadRequest, "invalid wait duration")
		}
		wait = min(d, maxLocationWait)
	}

	var (
		coords weather.Coordinates
		err    error
	)
	if wait > 0 {
		ctx, cancel := context.WithTimeout(c.UserContext(), wait)
		defer cancel()
		coords, err = tracker.Await(ctx)
	} else {
		coords, err = tracker.Current()
	}
	if err != nil {
		return weather.Coordinates{}, locationError(err)
	}
	return coords, nil
}

func parseCoordinates(latStr, lonStr string) (weather.Coordinates, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return weather.Coordinates{}, fiber.NewError(fiber.StatusBadRequest, "invalid lat parameter")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return weather.Coordinates{}, fiber.NewError(fiber.StatusBadRequest, "invalid lon parameter")
	}

	coords := weather.Coordinates{Lat: lat, Lon: lon}
	if err := validate.Struct(coords); err != nil {
		return weather.Coordinates{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return coords, nil
}

func locationError(err error) error {
	code := fiber.StatusConflict
	if errors.Is(err, weather.ErrLocationDenied) {
		code = fiber.StatusForbidden
	}
	return fiber.NewError(code, weather.UserMessage(err))
}

func fetchError(err error) error {
	var serverErr *weather.ServerError
	if errors.As(err, &serverErr) {
		return fiber.NewError(fiber.StatusBadGateway, weather.UserMessage(err))
	}
	return fiber.NewError(fiber.StatusServiceUnavailable, weather.UserMessage(err))
}

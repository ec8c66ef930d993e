package weather

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reminder is a local notification built from the current conditions.
type Reminder struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Body      string        `json:"body"`
	FireAfter time.Duration `json:"fireAfter"`
}

// NewReminder composes the notification text for w.
func NewReminder(w WeatherInfo, fireAfter time.Duration) Reminder {
	var lines []string
	if w.NeedsUmbrella() {
		lines = append(lines, "Take an umbrella")
	}
	if w.NeedsJacket() {
		lines = append(lines, "Wear a jacket")
	}
	if w.NeedsSunscreen() {
		lines = append(lines, "Use sunscreen")
	}
	if w.IsWindy() {
		lines = append(lines, "Bring a windbreaker")
	}
	if w.IsSnowy() {
		lines = append(lines, "Dress warm, snow expected")
	}
	if w.IsStormy() {
		lines = append(lines, "Thunderstorms possible, stay safe")
	}

	r := Reminder{
		ID:        "weather-suggestion-" + uuid.NewString(),
		FireAfter: fireAfter,
	}
	if len(lines) == 0 {
		r.Title = "Weather update"
		r.Body = fmt.Sprintf("%d°C and looking fine. Have a good one!", int(math.Trunc(w.Temperature)))
	} else {
		r.Title = "Heads up"
		r.Body = strings.Join(lines, ". ")
	}
	return r
}

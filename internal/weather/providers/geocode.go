package providers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kelvins/geocoder"

	"github.com/i474232898/weather-suggestions/internal/weather"
)

// geocoderMu guards geocoder.ApiKey, which the library keeps as a package global.
var geocoderMu sync.Mutex

// ResolveHome geocodes a configured city into coordinates using the Google
// geocoding API behind github.com/kelvins/geocoder. Calls are serialized because
// the API key is process-wide state in that library.
func ResolveHome(apiKey, city, country string) (weather.Coordinates, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return weather.Coordinates{}, fmt.Errorf("home city is not configured")
	}
	if apiKey == "" {
		return weather.Coordinates{}, fmt.Errorf("geocoder api key is not configured")
	}

	geocoderMu.Lock()
	defer geocoderMu.Unlock()

	geocoder.ApiKey = apiKey
	loc, err := geocoder.Geocoding(geocoder.Address{
		City:    city,
		Country: strings.TrimSpace(country),
	})
	if err != nil {
		return weather.Coordinates{}, fmt.Errorf("geocode %s,%s: %w", city, country, err)
	}

	return weather.Coordinates{Lat: loc.Latitude, Lon: loc.Longitude}, nil
}

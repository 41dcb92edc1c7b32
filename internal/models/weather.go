package models

import (
	"fmt"
	"time"
)

// TemperatureUnit selects the unit system used for display.
// All values are fetched and stored in Celsius; conversion happens
// exactly once, when a record is built.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
)

// String returns the display symbol for the unit
func (u TemperatureUnit) String() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Convert rescales a Celsius temperature into the target unit
func (u TemperatureUnit) Convert(tempC float64) float64 {
	if u == Fahrenheit {
		return tempC*9/5 + 32
	}
	return tempC
}

// CurrentObservation represents point-in-time weather for one city
type CurrentObservation struct {
	City        string
	Temperature float64 // in Unit
	Unit        TemperatureUnit
	Humidity    float64 // percent, 0-100
	Description string  // e.g. "clear sky"
	Icon        string  // OpenWeatherMap icon code, e.g. "01d"
	ObservedAt  time.Time
	Lat         float64
	Lon         float64
}

// ForecastRecord represents one 3-hour forecast interval for one city
type ForecastRecord struct {
	City        string
	Timestamp   time.Time
	Temperature float64 // in Unit
	Unit        TemperatureUnit
	Humidity    float64 // percent, 0-100
	Description string
	WindSpeed   float64 // m/s
	PrecipProb  float64 // percent, 0-100
}

// ForecastSeries is a single city's forecast ordered by ascending timestamp.
// Merged series carry records for more than one city; the City field on each
// record attributes its origin.
type ForecastSeries []ForecastRecord

// MergeSeries concatenates two cities' series for comparison views.
// Each record keeps its own City discriminator.
func MergeSeries(a, b ForecastSeries) ForecastSeries {
	merged := make(ForecastSeries, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return merged
}

// Cities returns the distinct city names in the series, in first-seen order
func (s ForecastSeries) Cities() []string {
	var cities []string
	seen := make(map[string]bool)
	for _, r := range s {
		if !seen[r.City] {
			seen[r.City] = true
			cities = append(cities, r.City)
		}
	}
	return cities
}

// ForCity returns the subsequence of records belonging to one city
func (s ForecastSeries) ForCity(city string) ForecastSeries {
	var out ForecastSeries
	for _, r := range s {
		if r.City == city {
			out = append(out, r)
		}
	}
	return out
}

// Validate checks the record bounds and the per-city timestamp ordering:
// humidity and precipitation probability within [0,100], wind speed
// non-negative, timestamps strictly increasing within each city.
func (s ForecastSeries) Validate() error {
	last := make(map[string]time.Time)
	for i, r := range s {
		if r.Humidity < 0 || r.Humidity > 100 {
			return fmt.Errorf("record %d (%s): humidity %.1f out of range", i, r.City, r.Humidity)
		}
		if r.PrecipProb < 0 || r.PrecipProb > 100 {
			return fmt.Errorf("record %d (%s): precipitation probability %.1f out of range", i, r.City, r.PrecipProb)
		}
		if r.WindSpeed < 0 {
			return fmt.Errorf("record %d (%s): negative wind speed %.1f", i, r.City, r.WindSpeed)
		}
		if prev, ok := last[r.City]; ok && !r.Timestamp.After(prev) {
			return fmt.Errorf("record %d (%s): timestamp %s not after %s", i, r.City, r.Timestamp, prev)
		}
		last[r.City] = r.Timestamp
	}
	return nil
}

// City is a saved entry in the user's city list
type City struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

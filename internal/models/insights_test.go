package models

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	start := time.Unix(1700006400, 0)
	series := ForecastSeries{
		{City: "London,GB", Timestamp: start, Temperature: 10, WindSpeed: 2, PrecipProb: 60, Humidity: 50},
		{City: "London,GB", Timestamp: start.Add(3 * time.Hour), Temperature: 20, WindSpeed: 4, PrecipProb: 10, Humidity: 50},
		{City: "London,GB", Timestamp: start.Add(6 * time.Hour), Temperature: 15, WindSpeed: 6, PrecipProb: 80, Humidity: 50},
	}

	ins := Summarize(series)

	if ins.City != "London,GB" {
		t.Errorf("City = %q, want London,GB", ins.City)
	}
	if ins.AvgTemperature != 15 {
		t.Errorf("AvgTemperature = %v, want 15", ins.AvgTemperature)
	}
	if ins.MaxTemperature != 20 {
		t.Errorf("MaxTemperature = %v, want 20", ins.MaxTemperature)
	}
	if ins.MinTemperature != 10 {
		t.Errorf("MinTemperature = %v, want 10", ins.MinTemperature)
	}
	if ins.AvgWindSpeed != 4 {
		t.Errorf("AvgWindSpeed = %v, want 4", ins.AvgWindSpeed)
	}
	if ins.RainyPeriods != 2 {
		t.Errorf("RainyPeriods = %d, want 2", ins.RainyPeriods)
	}
}

func TestSummarize_ExactlyFiftyPercentIsNotRainy(t *testing.T) {
	series := ForecastSeries{
		{City: "A", Timestamp: time.Unix(1700006400, 0), Temperature: 10, PrecipProb: 50},
	}
	if got := Summarize(series).RainyPeriods; got != 0 {
		t.Errorf("RainyPeriods = %d, want 0 for exactly 50%%", got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	ins := Summarize(nil)
	if ins != (Insights{}) {
		t.Errorf("Summarize(nil) = %+v, want zero value", ins)
	}
}

package owm

import (
	"context"
	"errors"
	"testing"
	"time"

	"weathertop/internal/models"
)

func TestClient_Forecast(t *testing.T) {
	server := fixtureServer(t, "../../testdata/owm_forecast_response.json")
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	series, err := client.Forecast(context.Background(), "London,GB", models.Celsius)
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}

	if len(series) != 3 {
		t.Fatalf("len(series) = %d, want 3", len(series))
	}

	// Input order preserved, timestamps ascending
	wantTimes := []int64{1700006400, 1700017200, 1700028000}
	for i, want := range wantTimes {
		if !series[i].Timestamp.Equal(time.Unix(want, 0)) {
			t.Errorf("series[%d].Timestamp = %v, want %v", i, series[i].Timestamp, time.Unix(want, 0))
		}
	}
	for i := 0; i < len(series)-1; i++ {
		if !series[i].Timestamp.Before(series[i+1].Timestamp) {
			t.Errorf("series[%d] not before series[%d]", i, i+1)
		}
	}

	// pop scaled from fraction to percent; absent pop defaults to 0
	wantPrecip := []float64{20.0, 0.0, 80.0}
	for i, want := range wantPrecip {
		if series[i].PrecipProb != want {
			t.Errorf("series[%d].PrecipProb = %v, want %v", i, series[i].PrecipProb, want)
		}
	}

	if series[0].Temperature != 20 {
		t.Errorf("series[0].Temperature = %v, want 20", series[0].Temperature)
	}
	if series[0].WindSpeed != 4.2 {
		t.Errorf("series[0].WindSpeed = %v, want 4.2", series[0].WindSpeed)
	}
	if series[0].Humidity != 60 {
		t.Errorf("series[0].Humidity = %v, want 60", series[0].Humidity)
	}
	if series[0].Description != "light rain" {
		t.Errorf("series[0].Description = %q, want 'light rain'", series[0].Description)
	}

	for i, r := range series {
		if r.City != "London,GB" {
			t.Errorf("series[%d].City = %q, want London,GB", i, r.City)
		}
	}

	if err := series.Validate(); err != nil {
		t.Errorf("Validate() on fetched series = %v, want nil", err)
	}
}

func TestClient_Forecast_FahrenheitConversion(t *testing.T) {
	server := fixtureServer(t, "../../testdata/owm_forecast_response.json")
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	series, err := client.Forecast(context.Background(), "London,GB", models.Fahrenheit)
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}

	if series[0].Temperature != 68.0 {
		t.Errorf("series[0].Temperature = %v, want 68.0", series[0].Temperature)
	}
	// Wind stays metric regardless of the display unit
	if series[0].WindSpeed != 4.2 {
		t.Errorf("series[0].WindSpeed = %v, want 4.2", series[0].WindSpeed)
	}
}

func TestClient_Forecast_CityNotFound(t *testing.T) {
	server := fixtureServer(t, "../../testdata/owm_city_not_found.json")
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	series, err := client.Forecast(context.Background(), "Nowhereville", models.Celsius)
	if series != nil {
		t.Errorf("expected no series on failure, got %d records", len(series))
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if fetchErr.Kind != InvalidLocation {
		t.Errorf("Kind = %v, want InvalidLocation", fetchErr.Kind)
	}
	if fetchErr.Reason != "city not found" {
		t.Errorf("Reason = %q, want 'city not found'", fetchErr.Reason)
	}
}

func TestClient_Forecast_NumericSentinelAccepted(t *testing.T) {
	// The API documents the forecast cod as a string but validation
	// should not depend on the serialization form
	body := `{"cod": 200, "list": [
		{"dt": 1700006400, "main": {"temp": 20, "humidity": 60},
		 "weather": [{"description": "clear sky", "icon": "01d"}],
		 "wind": {"speed": 3.0}, "pop": 0.37}
	]}`
	server := bodyServer(body)
	defer server.Close()

	client := NewClient("test-key")
	client.baseURL = server.URL

	series, err := client.Forecast(context.Background(), "London,GB", models.Celsius)
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}
	if len(series) != 1 {
		t.Fatalf("len(series) = %d, want 1", len(series))
	}
	if series[0].PrecipProb != 37.0 {
		t.Errorf("PrecipProb = %v, want 37.0", series[0].PrecipProb)
	}
}

func TestClient_Forecast_MalformedPayloads(t *testing.T) {
	const entry = `{"dt": 1700006400, "main": {"temp": 20, "humidity": 60},
		"weather": [{"description": "clear sky", "icon": "01d"}], "wind": {"speed": 3.0}}`

	tests := []struct {
		name string
		body string
	}{
		{"empty list", `{"cod": "200", "list": []}`},
		{"missing list", `{"cod": "200"}`},
		{"entry missing wind", `{"cod": "200", "list": [
			{"dt": 1700006400, "main": {"temp": 20, "humidity": 60},
			 "weather": [{"description": "clear sky", "icon": "01d"}]}
		]}`},
		{"entry missing main", `{"cod": "200", "list": [
			{"dt": 1700006400, "weather": [{"description": "clear sky", "icon": "01d"}], "wind": {"speed": 3.0}}
		]}`},
		{"entry missing timestamp", `{"cod": "200", "list": [
			{"main": {"temp": 20, "humidity": 60},
			 "weather": [{"description": "clear sky", "icon": "01d"}], "wind": {"speed": 3.0}}
		]}`},
		{"timestamps not increasing", `{"cod": "200", "list": [` + entry + `,` + entry + `]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := bodyServer(tt.body)
			defer server.Close()

			client := NewClient("test-key")
			client.baseURL = server.URL

			series, err := client.Forecast(context.Background(), "London,GB", models.Celsius)
			if series != nil {
				t.Errorf("expected no series, got %d records", len(series))
			}

			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("error = %v, want *FetchError", err)
			}
			if fetchErr.Kind != MalformedResponse {
				t.Errorf("Kind = %v, want MalformedResponse", fetchErr.Kind)
			}
		})
	}
}

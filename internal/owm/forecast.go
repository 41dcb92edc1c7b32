package owm

import (
	"context"
	"fmt"
	"time"

	"weathertop/internal/models"
)

// Forecast fetches the 5-day / 3-hour forecast for a city and normalizes
// it into a chronological series. Input order is preserved, never re-sorted;
// the API already returns entries in ascending time.
func (c *Client) Forecast(ctx context.Context, city string, unit models.TemperatureUnit) (models.ForecastSeries, error) {
	var resp forecastResponse
	if err := c.query(ctx, "/forecast", city, &resp); err != nil {
		return nil, err
	}

	if !resp.Cod.ok() {
		return nil, invalidLocationErr(city, string(resp.Message))
	}

	if len(resp.List) == 0 {
		return nil, malformedErr(city, "empty forecast list")
	}

	series := make(models.ForecastSeries, 0, len(resp.List))
	var prev time.Time
	for i, entry := range resp.List {
		switch {
		case entry.Dt == nil:
			return nil, malformedErr(city, fmt.Sprintf("entry %d: missing timestamp", i))
		case entry.Main == nil || entry.Main.Temp == nil || entry.Main.Humidity == nil:
			return nil, malformedErr(city, fmt.Sprintf("entry %d: missing main block", i))
		case len(entry.Weather) == 0:
			return nil, malformedErr(city, fmt.Sprintf("entry %d: missing weather conditions", i))
		case entry.Wind == nil || entry.Wind.Speed == nil:
			return nil, malformedErr(city, fmt.Sprintf("entry %d: missing wind block", i))
		}

		ts := time.Unix(*entry.Dt, 0)
		if i > 0 && !ts.After(prev) {
			return nil, malformedErr(city, fmt.Sprintf("entry %d: timestamp not increasing", i))
		}
		prev = ts

		// pop is a 0-1 fraction, absent on some entries; scale to percent
		var precip float64
		if entry.Pop != nil {
			precip = *entry.Pop * 100
		}

		series = append(series, models.ForecastRecord{
			City:        city,
			Timestamp:   ts,
			Temperature: unit.Convert(*entry.Main.Temp),
			Unit:        unit,
			Humidity:    *entry.Main.Humidity,
			Description: entry.Weather[0].Description,
			WindSpeed:   *entry.Wind.Speed,
			PrecipProb:  precip,
		})
	}

	return series, nil
}

// forecastResponse mirrors the /forecast payload. The cod field is a
// string on this endpoint, unlike /weather; statusCode absorbs both.
type forecastResponse struct {
	Cod     statusCode      `json:"cod"`
	Message looseString     `json:"message"`
	List    []forecastEntry `json:"list"`
}

type forecastEntry struct {
	Dt   *int64 `json:"dt"`
	Main *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Pop *float64 `json:"pop"`
}

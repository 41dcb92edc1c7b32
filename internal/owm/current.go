package owm

import (
	"context"
	"time"

	"weathertop/internal/models"
)

// CurrentWeather fetches point-in-time weather for a city. The result is
// complete or absent: any missing required field fails the whole fetch.
func (c *Client) CurrentWeather(ctx context.Context, city string, unit models.TemperatureUnit) (*models.CurrentObservation, error) {
	var resp currentResponse
	if err := c.query(ctx, "/weather", city, &resp); err != nil {
		return nil, err
	}

	if !resp.Cod.ok() {
		return nil, invalidLocationErr(city, string(resp.Message))
	}

	switch {
	case resp.Main == nil || resp.Main.Temp == nil || resp.Main.Humidity == nil:
		return nil, malformedErr(city, "missing main block")
	case len(resp.Weather) == 0:
		return nil, malformedErr(city, "missing weather conditions")
	case resp.Coord == nil || resp.Coord.Lat == nil || resp.Coord.Lon == nil:
		return nil, malformedErr(city, "missing coordinates")
	case resp.Dt == nil:
		return nil, malformedErr(city, "missing observation timestamp")
	}

	return &models.CurrentObservation{
		City:        city,
		Temperature: unit.Convert(*resp.Main.Temp),
		Unit:        unit,
		Humidity:    *resp.Main.Humidity,
		Description: resp.Weather[0].Description,
		Icon:        resp.Weather[0].Icon,
		ObservedAt:  time.Unix(*resp.Dt, 0),
		Lat:         *resp.Coord.Lat,
		Lon:         *resp.Coord.Lon,
	}, nil
}

// currentResponse mirrors the /weather payload. Required fields are
// pointers so absence is distinguishable from a zero value.
type currentResponse struct {
	Cod     statusCode  `json:"cod"`
	Message looseString `json:"message"`
	Main    *struct {
		Temp     *float64 `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Dt    *int64 `json:"dt"`
	Coord *struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	} `json:"coord"`
}

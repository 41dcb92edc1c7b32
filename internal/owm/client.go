package owm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client queries the OpenWeatherMap REST API. One outbound GET per call,
// no retry and no caching; the rate limiter keeps a burst of refreshes
// inside the free-tier call budget.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates an OpenWeatherMap client with the given API key
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

// query performs one GET against path with the city embedded and decodes
// the JSON body into dst. Transport and decode failures come back as
// FetchError; in-band status validation is the caller's job.
func (c *Client) query(ctx context.Context, path, city string, dst any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return networkErr(city, fmt.Errorf("rate limit wait canceled: %w", err))
	}

	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", c.apiKey)
	params.Add("units", "metric")

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return networkErr(city, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkErr(city, err)
	}
	defer resp.Body.Close()

	// The API reports lookup failures in-band via the cod field, so the
	// body is decoded regardless of the transport status code.
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return malformedErr(city, fmt.Sprintf("decoding response: %v", err))
	}

	return nil
}

// statusCode tolerates the API's inconsistent cod field: the current-weather
// endpoint serializes it as the number 200 while the forecast endpoint uses
// the string "200". Both forms compare equal after normalization.
type statusCode string

func (s *statusCode) UnmarshalJSON(data []byte) error {
	*s = statusCode(strings.Trim(string(data), `"`))
	return nil
}

func (s statusCode) ok() bool {
	return s == "200"
}

// looseString decodes a JSON value that may arrive as a string or a number.
// The forecast endpoint's message field is 0 on success and text on failure.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	*s = looseString(strings.Trim(string(data), `"`))
	return nil
}

package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"weathertop/internal/cities"
	"weathertop/internal/models"
	"weathertop/internal/owm"
)

// Message types for async operations

// currentFetchedMsg is sent when a city's current weather has been fetched
type currentFetchedMsg struct {
	city string
	obs  *models.CurrentObservation
	err  error
}

// forecastFetchedMsg is sent when a city's forecast has been fetched
type forecastFetchedMsg struct {
	city   string
	series models.ForecastSeries
	err    error
}

// savedCitiesMsg is sent when the saved-city list has been loaded
type savedCitiesMsg struct {
	cities []models.City
}

// cityListChangedMsg is sent after the saved list was modified
type cityListChangedMsg struct{}

// refreshTickMsg re-runs the fetch pipeline on the configured cadence. The
// generation ties a tick to the cycle that armed it: manual refreshes bump
// the generation, so a superseded timer is dropped instead of compounding.
type refreshTickMsg struct {
	gen int
}

// errMsg reports a saved-city store failure
type errMsg struct {
	err error
}

// fetchCurrent fetches current weather for a city in the background
func fetchCurrent(client *owm.Client, city string, unit models.TemperatureUnit) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		obs, err := client.CurrentWeather(ctx, city, unit)
		return currentFetchedMsg{city: city, obs: obs, err: err}
	}
}

// fetchForecast fetches the forecast series for a city in the background
func fetchForecast(client *owm.Client, city string, unit models.TemperatureUnit) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		series, err := client.Forecast(ctx, city, unit)
		return forecastFetchedMsg{city: city, series: series, err: err}
	}
}

// seedAndLoadCities seeds the configured defaults, then loads the saved list
func seedAndLoadCities(repo *cities.Repository, defaults []string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Seed(defaults); err != nil {
			return errMsg{err: fmt.Errorf("seeding saved cities: %w", err)}
		}
		saved, err := repo.List()
		if err != nil {
			return errMsg{err: fmt.Errorf("loading saved cities: %w", err)}
		}
		return savedCitiesMsg{cities: saved}
	}
}

// loadSavedCities reloads the saved-city list
func loadSavedCities(repo *cities.Repository) tea.Cmd {
	return func() tea.Msg {
		saved, err := repo.List()
		if err != nil {
			return errMsg{err: fmt.Errorf("loading saved cities: %w", err)}
		}
		return savedCitiesMsg{cities: saved}
	}
}

// saveCity persists a city to the saved list
func saveCity(repo *cities.Repository, name string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Save(name); err != nil {
			return errMsg{err: fmt.Errorf("saving city %q: %w", name, err)}
		}
		return cityListChangedMsg{}
	}
}

// deleteCity removes a city from the saved list
func deleteCity(repo *cities.Repository, name string) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Delete(name); err != nil {
			return errMsg{err: fmt.Errorf("removing city %q: %w", name, err)}
		}
		return cityListChangedMsg{}
	}
}

// scheduleRefresh arms the auto-refresh timer. The timer owns no pipeline
// state; it only re-runs the whole fetch from scratch when it fires.
func scheduleRefresh(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshTickMsg{gen: gen}
	})
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weathertop/internal/cities"
	"weathertop/internal/config"
	"weathertop/internal/database"
	"weathertop/internal/models"
	"weathertop/internal/owm"
)

// AppState represents the current state of the application
type AppState int

const (
	StateCityInput AppState = iota // Enter primary (and optional comparison) city
	StateLoading                   // Fetches in flight
	StateDashboard                 // Render metrics, charts, map, table, insights
	StateError                     // A required fetch failed; whole render aborted
)

// ActivePane represents which dashboard pane is currently shown
type ActivePane int

const (
	PaneMetrics ActivePane = iota
	PaneCharts
	PaneMap
	PaneTable
	PaneInsights
	paneCount
)

var paneTitles = [paneCount]string{"Current", "Charts", "Map", "Table", "Insights"}

// Model represents the application's state
type Model struct {
	state      AppState
	activePane ActivePane
	chart      chartKind
	width      int
	height     int
	err        error

	client *owm.Client
	repo   *cities.Repository

	// Controls
	cityInput    textinput.Model
	compareInput textinput.Model
	focusCompare bool
	compareMode  bool
	unit         models.TemperatureUnit
	refreshEvery time.Duration

	// Cities requested for the current render cycle
	city        string
	compareCity string

	// Committed data, replaced wholesale on every successful refresh
	current        *models.CurrentObservation
	compareCurrent *models.CurrentObservation
	forecast       models.ForecastSeries
	combined       models.ForecastSeries
	lastRefresh    time.Time

	// In-flight refresh staging; committed only when every fetch succeeded
	pending        int
	fetchErr       error
	stagedCurrent  map[string]*models.CurrentObservation
	stagedForecast map[string]models.ForecastSeries

	// Bumped by every startRefresh so exactly one timer chain stays live;
	// ticks from superseded cycles carry an old generation and are dropped
	refreshGen int

	// Saved cities
	saved      []models.City
	savedIndex int
	seedCities []string

	spinner spinner.Model
	table   table.Model
}

// NewModel creates the application model from loaded configuration
func NewModel(cfg config.Config) Model {
	primary := textinput.New()
	primary.Placeholder = "City, e.g. London,GB or Mumbai,MH,IN..."
	primary.Focus()
	primary.CharLimit = 100
	primary.Width = 48
	primary.SetValue(cfg.City)

	compare := textinput.New()
	compare.Placeholder = "Comparison city..."
	compare.CharLimit = 100
	compare.Width = 48

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	unit, _ := cfg.Unit()

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = database.DefaultPath()
	}

	return Model{
		state:        StateCityInput,
		activePane:   PaneMetrics,
		client:       owm.NewClient(cfg.APIKey),
		repo:         cities.NewRepository(dbPath),
		cityInput:    primary,
		compareInput: compare,
		unit:         unit,
		refreshEvery: cfg.RefreshInterval(),
		spinner:      s,
		seedCities:   cfg.Cities,
		savedIndex:   -1,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, seedAndLoadCities(m.repo, m.seedCities))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if len(m.combined) > 0 {
			m.table = buildForecastTable(m.combined, m.tableHeight())
		}
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case savedCitiesMsg:
		m.saved = msg.cities
		return m, nil

	case cityListChangedMsg:
		m.savedIndex = -1
		return m, loadSavedCities(m.repo)

	case currentFetchedMsg:
		return m.handleFetched(msg.city, msg.err, func() {
			m.stagedCurrent[msg.city] = msg.obs
		})

	case forecastFetchedMsg:
		return m.handleFetched(msg.city, msg.err, func() {
			m.stagedForecast[msg.city] = msg.series
		})

	case refreshTickMsg:
		if msg.gen != m.refreshGen {
			// A manual refresh superseded this chain; let it die
			return m, nil
		}
		if m.state == StateDashboard {
			return m.startRefresh()
		}
		// Keep the timer armed while the user is elsewhere
		return m, scheduleRefresh(m.refreshEvery, m.refreshGen)
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateCityInput:
			return m.handleCityInput(keyMsg)

		case StateDashboard:
			return m.handleDashboardKeys(keyMsg)

		case StateError:
			// Any key returns to the city input
			m.state = StateCityInput
			m.err = nil
			m.focusInputs()
			return m, textinput.Blink
		}
	}

	// Update the child component owning the current state
	switch m.state {
	case StateLoading:
		m.spinner, cmd = m.spinner.Update(msg)
	case StateCityInput:
		if m.focusCompare {
			m.compareInput, cmd = m.compareInput.Update(msg)
		} else {
			m.cityInput, cmd = m.cityInput.Update(msg)
		}
	case StateDashboard:
		if m.activePane == PaneTable {
			m.table, cmd = m.table.Update(msg)
		}
	}

	return m, cmd
}

// handleFetched folds one completed fetch into the staging area and
// commits or aborts the render when the cycle is complete.
func (m Model) handleFetched(city string, err error, commit func()) (tea.Model, tea.Cmd) {
	if m.pending == 0 {
		// A stale fetch from a superseded cycle; drop it
		return m, nil
	}

	m.pending--
	if err != nil {
		if m.fetchErr == nil {
			m.fetchErr = fmt.Errorf("fetching weather for %q: %w", city, err)
		}
	} else {
		commit()
	}

	if m.pending > 0 {
		return m, nil
	}
	return m.finishRefresh()
}

// startRefresh kicks off the whole fetch pipeline for the requested cities.
// Current and forecast fetches run concurrently; nothing is displayed until
// all of them complete.
func (m Model) startRefresh() (tea.Model, tea.Cmd) {
	m.state = StateLoading
	m.refreshGen++
	m.fetchErr = nil
	m.stagedCurrent = make(map[string]*models.CurrentObservation)
	m.stagedForecast = make(map[string]models.ForecastSeries)

	targets := []string{m.city}
	if m.compareMode && m.compareCity != "" {
		targets = append(targets, m.compareCity)
	}
	m.pending = 2 * len(targets)

	cmds := []tea.Cmd{m.spinner.Tick}
	for _, city := range targets {
		cmds = append(cmds,
			fetchCurrent(m.client, city, m.unit),
			fetchForecast(m.client, city, m.unit),
		)
	}
	return m, tea.Batch(cmds...)
}

// finishRefresh commits a fully successful cycle or aborts the whole render.
// Partial degradation is deliberately unsupported: one failed fetch discards
// everything, including previously displayed data.
func (m Model) finishRefresh() (tea.Model, tea.Cmd) {
	if m.fetchErr != nil {
		m.err = m.fetchErr
		m.state = StateError
		m.current = nil
		m.compareCurrent = nil
		m.forecast = nil
		m.combined = nil
		return m, scheduleRefresh(m.refreshEvery, m.refreshGen)
	}

	m.current = m.stagedCurrent[m.city]
	m.forecast = m.stagedForecast[m.city]
	if m.compareMode && m.compareCity != "" {
		m.compareCurrent = m.stagedCurrent[m.compareCity]
		m.combined = models.MergeSeries(m.forecast, m.stagedForecast[m.compareCity])
	} else {
		m.compareCurrent = nil
		m.combined = m.forecast
	}

	m.table = buildForecastTable(m.combined, m.tableHeight())
	m.lastRefresh = time.Now()
	m.state = StateDashboard
	return m, scheduleRefresh(m.refreshEvery, m.refreshGen)
}

// handleCityInput handles keyboard input while entering cities
func (m Model) handleCityInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "enter":
		primary := strings.TrimSpace(m.cityInput.Value())
		secondary := strings.TrimSpace(m.compareInput.Value())
		if primary == "" {
			return m, nil
		}
		if m.compareMode && secondary == "" && !m.focusCompare {
			// Move on to the comparison city before fetching
			m.focusCompare = true
			m.focusInputs()
			return m, textinput.Blink
		}
		m.city = primary
		m.compareCity = secondary
		m.err = nil
		return m.startRefresh()

	case "tab":
		if m.compareMode {
			m.focusCompare = !m.focusCompare
			m.focusInputs()
			return m, textinput.Blink
		}

	case "ctrl+t":
		m.compareMode = !m.compareMode
		if !m.compareMode {
			m.focusCompare = false
			m.compareInput.SetValue("")
			m.focusInputs()
		}
		return m, nil

	case "ctrl+s":
		name := strings.TrimSpace(m.focusedInput().Value())
		if name != "" {
			return m, saveCity(m.repo, name)
		}
		return m, nil

	case "ctrl+d":
		name := strings.TrimSpace(m.focusedInput().Value())
		if name != "" {
			return m, deleteCity(m.repo, name)
		}
		return m, nil

	case "up", "down":
		if len(m.saved) == 0 {
			break
		}
		if msg.String() == "down" {
			m.savedIndex = (m.savedIndex + 1) % len(m.saved)
		} else {
			m.savedIndex--
			if m.savedIndex < 0 {
				m.savedIndex = len(m.saved) - 1
			}
		}
		m.focusedInput().SetValue(m.saved[m.savedIndex].Name)
		m.focusedInput().CursorEnd()
		return m, nil
	}

	if m.focusCompare {
		m.compareInput, cmd = m.compareInput.Update(msg)
	} else {
		m.cityInput, cmd = m.cityInput.Update(msg)
	}
	return m, cmd
}

// handleDashboardKeys handles keyboard input on the dashboard
func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "s":
		// New search; clear everything
		m.state = StateCityInput
		m.focusCompare = false
		m.cityInput.SetValue("")
		m.compareInput.SetValue("")
		m.focusInputs()
		m.current = nil
		m.compareCurrent = nil
		m.forecast = nil
		m.combined = nil
		m.savedIndex = -1
		return m, textinput.Blink

	case "u":
		// Unit toggle requires a refetch: conversion happens at record
		// construction and a series never mixes units
		if m.unit == models.Celsius {
			m.unit = models.Fahrenheit
		} else {
			m.unit = models.Celsius
		}
		return m.startRefresh()

	case "r":
		return m.startRefresh()

	case "tab":
		m.activePane = (m.activePane + 1) % paneCount
		return m, nil

	case "shift+tab":
		m.activePane--
		if m.activePane < 0 {
			m.activePane = paneCount - 1
		}
		return m, nil

	case "1", "2", "3", "4", "5":
		m.activePane = ActivePane(msg.String()[0] - '1')
		return m, nil

	case "left", "right":
		if m.activePane == PaneCharts {
			if msg.String() == "right" {
				m.chart = (m.chart + 1) % chartCount
			} else {
				m.chart--
				if m.chart < 0 {
					m.chart = chartCount - 1
				}
			}
			return m, nil
		}
	}

	if m.activePane == PaneTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// focusedInput returns the city input currently accepting keystrokes
func (m *Model) focusedInput() *textinput.Model {
	if m.focusCompare {
		return &m.compareInput
	}
	return &m.cityInput
}

// focusInputs syncs textinput focus with the focusCompare flag
func (m *Model) focusInputs() {
	if m.focusCompare {
		m.cityInput.Blur()
		m.compareInput.Focus()
	} else {
		m.compareInput.Blur()
		m.cityInput.Focus()
	}
}

func (m Model) tableHeight() int {
	h := m.height - 12
	if h < 5 {
		h = 5
	}
	return h
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateCityInput:
		return m.viewCityInput()
	case StateLoading:
		return m.viewLoading()
	case StateDashboard:
		return m.viewDashboard()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewCityInput renders the city entry view
func (m Model) viewCityInput() string {
	title := titleStyle.Render("☀ Weathertop")
	subtitle := mutedStyle.Render("Weather Analytics Dashboard")

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Width(56)

	var sections []string
	sections = append(sections, title, subtitle, "")
	sections = append(sections, labelStyle.Render("Primary City"))
	sections = append(sections, inputBox.Render(m.cityInput.View()))

	if m.compareMode {
		sections = append(sections, labelStyle.Render("Comparison City"))
		sections = append(sections, inputBox.Render(m.compareInput.View()))
	}

	if len(m.saved) > 0 {
		var names []string
		for _, c := range m.saved {
			names = append(names, c.Name)
		}
		sections = append(sections, "",
			mutedStyle.Render("Saved: "+strings.Join(names, " | ")))
	}

	if m.err != nil {
		sections = append(sections, "", errorStyle.Render("✗ "+m.err.Error()))
	}

	sections = append(sections, "",
		helpStyle.Render("Enter: Fetch • ↑/↓: Saved cities • Ctrl+T: Compare mode • Ctrl+S: Save • Ctrl+D: Unsave • Ctrl+C: Quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	target := m.city
	if m.compareMode && m.compareCity != "" {
		target += " and " + m.compareCity
	}
	return fmt.Sprintf("\n %s Fetching weather for %s...\n", m.spinner.View(), target)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	msg := "An unknown error occurred"
	if m.err != nil {
		msg = m.err.Error()
	}

	help := helpStyle.Render("Press any key to return to city entry • Ctrl+C: Quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, "", msg, "", help)
}

// viewDashboard renders the dashboard with the active pane
func (m Model) viewDashboard() string {
	header := titleStyle.Render("☀ " + m.headerCities())
	updated := mutedStyle.Render(fmt.Sprintf("Updated %s • Unit %s • Refresh every %s",
		m.lastRefresh.Format("15:04:05"), m.unit, m.refreshEvery))

	var content string
	switch m.activePane {
	case PaneMetrics:
		content = m.renderMetricsPane()
	case PaneCharts:
		content = m.renderChartsPane()
	case PaneMap:
		content = m.renderMapPane()
	case PaneTable:
		content = m.renderTablePane()
	case PaneInsights:
		content = m.renderInsightsPane()
	}

	help := helpStyle.Render("Tab/1-5: Panes • U: °C/°F • R: Refresh • S: New cities • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		updated,
		m.renderTabBar(),
		"",
		content,
		help,
	)
}

func (m Model) headerCities() string {
	if m.compareMode && m.compareCity != "" {
		return m.city + " vs " + m.compareCity
	}
	return m.city
}

// renderTabBar renders the pane selector
func (m Model) renderTabBar() string {
	var tabs []string
	for i := ActivePane(0); i < paneCount; i++ {
		label := fmt.Sprintf("%d %s", i+1, paneTitles[i])
		if i == m.activePane {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

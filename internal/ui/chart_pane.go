package ui

import (
	"fmt"
	"strings"

	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"weathertop/internal/models"
)

// chartKind selects which forecast field the chart pane plots
type chartKind int

const (
	chartTemperature chartKind = iota
	chartHumidity
	chartWind
	chartPrecip
	chartCount
)

func (k chartKind) title(unit models.TemperatureUnit) string {
	switch k {
	case chartTemperature:
		return fmt.Sprintf("Temperature Trend (%s)", unit)
	case chartHumidity:
		return "Humidity Trend (%)"
	case chartWind:
		return "Wind Speed Trend (m/s)"
	case chartPrecip:
		return "Precipitation Probability (%)"
	}
	return ""
}

func (k chartKind) value(r models.ForecastRecord) float64 {
	switch k {
	case chartTemperature:
		return r.Temperature
	case chartHumidity:
		return r.Humidity
	case chartWind:
		return r.WindSpeed
	case chartPrecip:
		return r.PrecipProb
	}
	return 0
}

// renderChartsPane renders the selected time-series chart, one braille
// dataset per city
func (m Model) renderChartsPane() string {
	if len(m.combined) == 0 {
		return mutedStyle.Render("No forecast data available")
	}

	chartWidth := m.width - 6
	if chartWidth < 40 {
		chartWidth = 40
	}
	chartHeight := m.height - 14
	if chartHeight < 8 {
		chartHeight = 8
	}

	chart := tslc.New(chartWidth, chartHeight)
	chart.XLabelFormatter = tslc.HourTimeLabelFormatter()

	cityNames := m.combined.Cities()
	for i, city := range cityNames {
		chart.SetDataSetStyle(city, seriesStyles[i%len(seriesStyles)])
		for _, r := range m.combined.ForCity(city) {
			chart.PushDataSet(city, tslc.TimePoint{Time: r.Timestamp, Value: m.chart.value(r)})
		}
	}
	chart.DrawBrailleAll()

	var legend []string
	for i, city := range cityNames {
		legend = append(legend, seriesStyles[i%len(seriesStyles)].Render("── "+city))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render(m.chart.title(m.unit)),
		chart.View(),
		strings.Join(legend, "   "),
		helpStyle.Render("←/→: Switch chart"),
	)
}

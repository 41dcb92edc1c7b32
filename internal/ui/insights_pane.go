package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weathertop/internal/models"
)

// renderInsightsPane renders the 5-day summary per city
func (m Model) renderInsightsPane() string {
	if len(m.combined) == 0 {
		return mutedStyle.Render("No forecast data available")
	}

	var blocks []string
	for _, city := range m.combined.Cities() {
		ins := models.Summarize(m.combined.ForCity(city))
		blocks = append(blocks, renderCityInsights(ins))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("5-Day Forecast Insights"),
		lipgloss.JoinHorizontal(lipgloss.Top, blocks...),
	)
}

// renderCityInsights renders one city's summary block
func renderCityInsights(ins models.Insights) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render(ins.City))
	content.WriteString("\n\n")

	line := func(label string, value string) {
		content.WriteString(labelStyle.Render(label + ": "))
		content.WriteString(valueStyle.Render(value))
		content.WriteString("\n")
	}

	line("Avg Temperature", fmt.Sprintf("%.2f %s", ins.AvgTemperature, ins.Unit))
	line("Max Temperature", fmt.Sprintf("%.2f %s", ins.MaxTemperature, ins.Unit))
	line("Min Temperature", fmt.Sprintf("%.2f %s", ins.MinTemperature, ins.Unit))
	line("Avg Wind Speed", fmt.Sprintf("%.2f m/s", ins.AvgWindSpeed))
	line("Rainy Periods (>50%)", fmt.Sprintf("%d times", ins.RainyPeriods))

	return paneStyle.Render(content.String())
}

package ui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"weathertop/internal/models"
)

// renderMetricsPane renders current conditions, side by side when comparing
func (m Model) renderMetricsPane() string {
	if m.current == nil {
		return mutedStyle.Render("No weather data available")
	}

	primary := renderCityMetrics(m.current)
	if m.compareCurrent == nil {
		return primary
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, primary, renderCityMetrics(m.compareCurrent))
}

// renderCityMetrics renders one city's current-weather block
func renderCityMetrics(obs *models.CurrentObservation) string {
	var content strings.Builder

	content.WriteString(titleStyle.Render(obs.City))
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render(fmt.Sprintf("Temperature (%s): ", obs.Unit)))
	content.WriteString(metricStyle.Render(fmt.Sprintf("%.2f", obs.Temperature)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Humidity (%): "))
	content.WriteString(metricStyle.Render(fmt.Sprintf("%.2f", obs.Humidity)))
	content.WriteString("\n\n")

	content.WriteString(labelStyle.Render("Condition: "))
	content.WriteString(valueStyle.Render(titleCase(obs.Description)))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Icon: "))
	content.WriteString(valueStyle.Render(obs.Icon))
	content.WriteString("\n")

	content.WriteString(labelStyle.Render("Updated: "))
	content.WriteString(valueStyle.Render(obs.ObservedAt.Format("Mon Jan 2 15:04")))
	content.WriteString("\n")

	return paneStyle.Render(content.String())
}

// titleCase capitalizes each word of an API condition string ("clear sky"
// becomes "Clear Sky")
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

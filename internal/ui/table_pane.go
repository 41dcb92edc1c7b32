package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"weathertop/internal/models"
)

// buildForecastTable builds the forecast data table from a (possibly merged)
// series. Values are formatted to two decimals like the metric displays.
func buildForecastTable(series models.ForecastSeries, height int) table.Model {
	columns := []table.Column{
		{Title: "Time", Width: 17},
		{Title: "City", Width: 18},
		{Title: "Temp", Width: 8},
		{Title: "Humidity", Width: 9},
		{Title: "Wind m/s", Width: 9},
		{Title: "Rain %", Width: 7},
	}

	rows := make([]table.Row, 0, len(series))
	for _, r := range series {
		rows = append(rows, table.Row{
			r.Timestamp.Format("Jan 02 15:04"),
			r.City,
			fmt.Sprintf("%.2f", r.Temperature),
			fmt.Sprintf("%.2f", r.Humidity),
			fmt.Sprintf("%.2f", r.WindSpeed),
			fmt.Sprintf("%.2f", r.PrecipProb),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(colorPrimary)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorBorder).
		Bold(false)
	t.SetStyles(s)

	return t
}

// renderTablePane renders the forecast table pane
func (m Model) renderTablePane() string {
	if len(m.combined) == 0 {
		return mutedStyle.Render("No forecast data available")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("Forecast Data Table"),
		m.table.View(),
		helpStyle.Render("↑/↓: Scroll"),
	)
}

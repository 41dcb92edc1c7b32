package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"weathertop/internal/models"
)

const (
	mapRows = 13
	mapCols = 56
	mapPad  = 2.0 // degrees of padding around plotted cities
)

// renderMapPane plots the fetched cities' coordinates on a rune grid
func (m Model) renderMapPane() string {
	if m.current == nil {
		return mutedStyle.Render("No location data available")
	}

	points := []*models.CurrentObservation{m.current}
	if m.compareCurrent != nil {
		points = append(points, m.compareCurrent)
	}

	minLat, maxLat := points[0].Lat-mapPad, points[0].Lat+mapPad
	minLon, maxLon := points[0].Lon-mapPad, points[0].Lon+mapPad
	for _, p := range points[1:] {
		minLat = min(minLat, p.Lat-mapPad)
		maxLat = max(maxLat, p.Lat+mapPad)
		minLon = min(minLon, p.Lon-mapPad)
		maxLon = max(maxLon, p.Lon+mapPad)
	}

	grid := make([][]rune, mapRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat("·", mapCols))
	}

	markers := []rune{'●', '◆'}
	for i, p := range points {
		// Rows grow downward, latitude grows upward
		row := int((maxLat - p.Lat) / (maxLat - minLat) * float64(mapRows-1))
		col := int((p.Lon - minLon) / (maxLon - minLon) * float64(mapCols-1))
		grid[row][col] = markers[i%len(markers)]
	}

	var lines []string
	for _, row := range grid {
		lines = append(lines, string(row))
	}

	box := paneStyle.Render(strings.Join(lines, "\n"))

	var legend []string
	for i, p := range points {
		legend = append(legend, seriesStyles[i%len(seriesStyles)].Render(
			fmt.Sprintf("%c %s (%.2f, %.2f)", markers[i%len(markers)], p.City, p.Lat, p.Lon)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		sectionHeaderStyle.Render("City Locations"),
		box,
		strings.Join(legend, "   "),
	)
}

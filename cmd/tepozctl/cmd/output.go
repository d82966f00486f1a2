package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"tepoz_directory/internal/content"
	"tepoz_directory/internal/domain"
)

// Color palette
var (
	colorMuted  = lipgloss.Color("#7E8C80")
	colorText   = lipgloss.Color("#D6E0D3")
	colorAccent = lipgloss.Color("#8FA082")
	colorYellow = lipgloss.Color("#f9e2af")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorMuted)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	featuredStyle = cellStyle.
			Foreground(colorYellow)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Width(14)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func renderListing(p domain.ListingPage) string {
	rows := make([][]string, 0, len(p.Items))
	for _, v := range p.Items {
		star := ""
		if v.Featured {
			star = "★"
		}
		rows = append(rows, []string{star, v.ID, v.Name, v.Category, v.PriceRange, fmt.Sprintf("%.1f", v.Rating)})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers("", "id", "name", "category", "price", "rating").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(p.Items) && p.Items[row].Featured {
				return featuredStyle
			}
			return cellStyle
		})

	footer := fmt.Sprintf("%d of %d · sort=%s · lang=%s", len(p.Items), p.Total, p.Sort, p.Locale)
	return lipgloss.JoinVertical(lipgloss.Left, t.String(), mutedStyle.Render(footer))
}

func renderDetail(v domain.BusinessView) string {
	lines := []string{titleStyle.Render(v.Name)}
	field := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value))
	}
	field("id", v.ID)
	field("kind", string(v.Kind))
	field("category", v.Category)
	field("price", v.PriceRange)
	field("rating", fmt.Sprintf("%.1f", v.Rating))
	field("description", v.Description)
	field("address", v.Address)
	field("hours", v.Hours)
	field("specialties", v.Specialties)
	field("phone", v.Phone)
	field("website", v.Website)
	field("tags", strings.Join(v.Tags, ", "))

	var flags []string
	for k, on := range v.Flags {
		if on {
			flags = append(flags, k)
		}
	}
	sort.Strings(flags)
	field("amenities", strings.Join(flags, ", "))
	field("coordinates", fmt.Sprintf("%.5f, %.5f", v.Coordinates[1], v.Coordinates[0]))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPage(p content.Page) string {
	parts := []string{titleStyle.Render(p.Title)}
	for _, s := range p.Sections {
		if s.Heading != "" {
			parts = append(parts, "", headerStyle.UnsetPadding().Render(s.Heading))
		}
		parts = append(parts, s.Body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Package render formats a combined release for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/coho/internal/meta"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a78bfa"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0c0c0"))
	discStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f1a208"))
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#585858"))
)

// Release renders a full human-readable view of the release: header fields,
// then the tracklist disc by disc.
func Release(r *meta.Release) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(headline(r)))
	sb.WriteString("\n\n")

	writeField(&sb, "Release type", r.ReleaseType)
	if r.EditionTitle != "" {
		writeField(&sb, "Edition", r.EditionTitle)
	}
	writeField(&sb, "Date", dateOrYear(r))
	if r.GroupYear != 0 && r.GroupYear != r.Year {
		writeField(&sb, "Original year", fmt.Sprintf("%d", r.GroupYear))
	}
	writeField(&sb, "Label", r.Label)
	writeField(&sb, "Catalog", r.CatNo)
	writeField(&sb, "UPC", r.UPC)
	writeField(&sb, "Genres", strings.Join(r.Genres, ", "))
	writeField(&sb, "Source", r.Source)
	for _, u := range r.URLs {
		writeField(&sb, "URL", u)
	}

	sb.WriteString("\n")
	writeTracklist(&sb, r)

	if r.Comment != "" {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(r.Comment))
		sb.WriteString("\n")
	}
	return sb.String()
}

// headline is "Artist1 & Artist2 - Title (Year)", with the artist part
// dropped when no main artists are known.
func headline(r *meta.Release) string {
	var sb strings.Builder
	if mains := r.MainArtistNames(); len(mains) > 0 {
		sb.WriteString(strings.Join(mains, " & "))
		sb.WriteString(" - ")
	}
	sb.WriteString(r.Title)
	if r.Year != 0 {
		fmt.Fprintf(&sb, " (%d)", r.Year)
	}
	return sb.String()
}

func dateOrYear(r *meta.Release) string {
	if r.Date != "" {
		return r.Date
	}
	if r.Year != 0 {
		return fmt.Sprintf("%d", r.Year)
	}
	return ""
}

func writeField(sb *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	sb.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", name)))
	sb.WriteString(valueStyle.Render(value))
	sb.WriteString("\n")
}

func writeTracklist(sb *strings.Builder, r *meta.Release) {
	discs := r.Tracks.Discs()
	for _, disc := range discs {
		if len(discs) > 1 {
			sb.WriteString(discStyle.Render("Disc " + disc))
			sb.WriteString("\n")
		}
		for _, t := range r.Tracks.DiscTracks(disc) {
			sb.WriteString(numberStyle.Render(fmt.Sprintf("%3s. ", t.Number)))
			sb.WriteString(valueStyle.Render(trackLine(t)))
			sb.WriteString("\n")
		}
	}
}

// trackLine is "Artists - Title (feat. ...)".
func trackLine(t *meta.Track) string {
	var mains, guests []string
	for _, a := range t.Artists {
		switch a.Role {
		case meta.RoleMain:
			mains = append(mains, a.Name)
		case meta.RoleGuest:
			guests = append(guests, a.Name)
		}
	}
	line := t.Title
	if len(mains) > 0 {
		line = strings.Join(mains, " & ") + " - " + line
	}
	if len(guests) > 0 {
		line += " (feat. " + strings.Join(guests, " & ") + ")"
	}
	if t.Explicit {
		line += " [E]"
	}
	return line
}

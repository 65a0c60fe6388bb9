package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/authentiq/authentiq/internal/application"
	"github.com/authentiq/authentiq/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	typeColors = map[domain.UserType]lipgloss.Color{
		domain.TypeHuman:   success,
		domain.TypeCreator: lipgloss.Color("#A3E635"), // lime
		domain.TypeEntity:  warning,
		domain.TypeBot:     danger,
		domain.TypeOther:   info,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	rowNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderDetailed draws the score card for a single profile: the headline
// label and score, the four model scores, the derived signals, and the
// applied penalty.
func RenderDetailed(d domain.Detailed) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("authentiq")
	subtitle := dimStyle.Render("Human Authenticity Score")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(typeColor(d.Result.Type)).
		Render(fmt.Sprintf("%.4f", d.Result.Score))
	labelStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(typeColor(d.Result.Type)).
		Render(string(d.Result.Type))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + labelStyled))
	b.WriteString("\n\n")

	// ── Model scores ──
	b.WriteString("  " + titleStyle.Render("Model scores") + "\n\n")
	renderSignal(&b, "person", d.PersonScore, false)
	renderSignal(&b, "bot", d.BotScore, true)
	renderSignal(&b, "creator", d.CreatorScore, false)
	renderSignal(&b, "entity", d.EntityScore, true)

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Signals ──
	b.WriteString("  " + titleStyle.Render("Signals") + "\n\n")
	f := d.Features
	renderSignal(&b, "engagement", f.Engagement, false)
	renderSignal(&b, "list credibility", f.ListCredibility, false)
	renderSignal(&b, "media ratio", f.MediaRatio, false)
	renderSignal(&b, "account age", f.AgeDecay, false)
	renderSignal(&b, "customization", f.Customization, false)
	renderSignal(&b, "safety", f.Safety, false)
	renderStat(&b, "raw ratio", fmt.Sprintf("%.2f", f.Ratio))
	renderStat(&b, "activity / day", fmt.Sprintf("%.2f", f.ActivityRate))
	renderStat(&b, "account age", fmt.Sprintf("%.0f days", f.AgeDays))

	b.WriteString("\n")

	// ── Penalty ──
	if d.Penalty < 1.0 {
		penaltyStyled := lipgloss.NewStyle().Bold(true).Foreground(warning).
			Render(fmt.Sprintf("×%.4f", d.Penalty))
		b.WriteString("  " + titleStyle.Render("Penalty") + "  " + penaltyStyled + "\n")
	} else {
		b.WriteString("  " + dimStyle.Render("No penalties applied.") + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

// RenderSummary draws the per-label counts and score histogram of a batch run.
func RenderSummary(s application.BatchSummary) string {
	var b strings.Builder

	title := headerStyle.Render("authentiq")
	subtitle := dimStyle.Render(fmt.Sprintf("Batch summary · %d profiles", s.Total))
	meanStyled := lipgloss.NewStyle().Bold(true).Foreground(accent).
		Render(fmt.Sprintf("mean %.4f", s.MeanScore))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + meanStyled))
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Labels") + "\n\n")
	for _, ut := range sortedTypes(s.Counts) {
		count := s.Counts[ut]
		share := 0.0
		if s.Total > 0 {
			share = float64(count) / float64(s.Total)
		}
		name := rowNameStyle.Render(padRight(string(ut), 20))
		bar := coloredBar(share, 20, typeColor(ut))
		fmt.Fprintf(&b, "  %s %s  %s %s\n",
			name, bar,
			lipgloss.NewStyle().Bold(true).Foreground(typeColor(ut)).Render(fmt.Sprintf("%d", count)),
			dimStyle.Render(fmt.Sprintf("%d%%", int(share*100))))
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	b.WriteString("  " + titleStyle.Render("Score distribution") + "\n\n")
	peak := int64(1)
	for _, n := range s.Histogram {
		if n > peak {
			peak = n
		}
	}
	for i, n := range s.Histogram {
		lo := float64(i) / 10
		hi := lo + 0.1
		label := rowNameStyle.Render(padRight(fmt.Sprintf("%.1f – %.1f", lo, hi), 20))
		bar := coloredBar(float64(n)/float64(peak), 20, accent)
		fmt.Fprintf(&b, "  %s %s  %s\n", label, bar, dimStyle.Render(fmt.Sprintf("%d", n)))
	}

	b.WriteString("\n")
	return b.String()
}

// renderSignal prints one [0,1] signal with a bar colored by strength.
// inverted flips the coloring for signals where high means suspicious.
func renderSignal(b *strings.Builder, name string, value float64, inverted bool) {
	shown := value
	if inverted {
		shown = 1 - value
	}
	bar := coloredBar(value, 20, strengthColor(shown))
	styled := lipgloss.NewStyle().Bold(true).Foreground(strengthColor(shown)).
		Render(fmt.Sprintf("%.4f", value))
	fmt.Fprintf(b, "  %s %s  %s\n", rowNameStyle.Render(padRight(name, 20)), bar, styled)
}

func renderStat(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %s %s\n", rowNameStyle.Render(padRight(name, 20)), dimStyle.Render(value))
}

func coloredBar(value float64, width int, color lipgloss.Color) string {
	filled := int(value * float64(width))
	filled = max(0, min(filled, width))
	empty := width - filled

	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func strengthColor(v float64) lipgloss.Color {
	switch {
	case v >= 0.8:
		return success
	case v >= 0.6:
		return lipgloss.Color("#A3E635") // lime
	case v >= 0.4:
		return warning
	default:
		return danger
	}
}

func typeColor(ut domain.UserType) lipgloss.Color {
	if c, ok := typeColors[ut]; ok {
		return c
	}
	return info
}

func sortedTypes(counts map[domain.UserType]int64) []domain.UserType {
	types := make([]domain.UserType, 0, len(counts))
	for ut := range counts {
		types = append(types, ut)
	}
	sort.Slice(types, func(i, j int) bool {
		if counts[types[i]] != counts[types[j]] {
			return counts[types[i]] > counts[types[j]]
		}
		return types[i] < types[j]
	})
	return types
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

package dashboard

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/taskgene/arena/internal/scoring"
	"github.com/taskgene/arena/internal/ui/components"
	"github.com/taskgene/arena/internal/ui/theme"
)

// Render draws the dashboard: a row of gauge cards followed by the skill
// tracker. after may be nil for the "before" view.
func Render(title string, before scoring.MetricTriple, after *scoring.MetricTriple, width int) string {
	var b strings.Builder

	b.WriteString(theme.SectionTitle.Render("📈 " + title))
	b.WriteString("\n\n")
	b.WriteString(renderGauges(Gauges(before, after), width))
	b.WriteString("\n\n")
	b.WriteString(theme.SectionTitle.Render("📊 Visual Skill Tracker"))
	b.WriteString("\n\n")
	b.WriteString(renderTracker(Breakdown(before, after), width))

	return b.String()
}

func renderGauges(gauges []Gauge, width int) string {
	cards := make([]string, len(gauges))
	for i, g := range gauges {
		value := theme.GaugeValue.Render(fmt.Sprintf("%d%%", g.Value))
		if g.HasDelta {
			style := theme.DeltaDown
			if g.Improved() {
				style = theme.DeltaUp
			}
			value += "  " + style.Render(g.DeltaText())
		}
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(g.Icon + " " + g.Label)
		cards[i] = theme.GaugeCard.Render(label + "\n" + value)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	if width > 0 && lipgloss.Width(row) > width {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return row
}

// renderTracker draws the category shares as one segmented ring strip with
// a legend, then a bar per category.
func renderTracker(slices []Slice, width int) string {
	barWidth := min(max(width-4, 20), 72)
	shares := Shares(slices)

	var strip strings.Builder
	used := 0
	for i, share := range shares {
		n := int(share*float64(barWidth) + 0.5)
		if i == len(shares)-1 {
			n = barWidth - used
		}
		n = max(n, 0)
		used += n
		strip.WriteString(lipgloss.NewStyle().
			Background(sliceColor(i)).
			Render(strings.Repeat(" ", n)))
	}

	legend := make([]string, len(slices))
	for i, s := range slices {
		legend[i] = lipgloss.NewStyle().Foreground(sliceColor(i)).Render("●") +
			" " + lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("%s %.0f%%", s.Label, shares[i]*100))
	}

	labelWidth := 0
	for _, s := range slices {
		labelWidth = max(labelWidth, lipgloss.Width(s.Label))
	}

	var bars []string
	for i, s := range slices {
		bar := components.NewProgressBar(s.Label, float64(s.Value)/100, true, barWidth)
		bar.LabelWidth = labelWidth
		bar.Fill = sliceColor(i)
		bars = append(bars, bar.View())
	}

	return strip.String() + "\n" + strings.Join(legend, "   ") + "\n\n" + strings.Join(bars, "\n")
}

func sliceColor(i int) color.Color {
	return theme.ChartPalette[i%len(theme.ChartPalette)]
}

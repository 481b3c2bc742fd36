package notifier

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"CVDScenarios/internal/calculator"
	"CVDScenarios/internal/model"
	"CVDScenarios/internal/strategy"
)

const cardWidth = 76

var (
	greenColor  = lipgloss.Color("#33cc33")
	redColor    = lipgloss.Color("#cc3300")
	orangeColor = lipgloss.Color("#ff9900")
	purpleColor = lipgloss.Color("#a855f7")
	blueColor   = lipgloss.Color("#3b82f6")
	mutedColor  = lipgloss.Color("#999999")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#0077cc")).
			Padding(0, 1)
	rowHeaderStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	cardStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(cardWidth)
	labelStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	markerStyle = lipgloss.NewStyle().Foreground(purpleColor)
	entryStyle  = lipgloss.NewStyle().Foreground(blueColor).Bold(true)
)

func colorOf(c model.Color) lipgloss.Color {
	switch c {
	case model.ColorGreen:
		return greenColor
	case model.ColorRed:
		return redColor
	}
	return orangeColor
}

var rowTitles = map[model.Direction]string{
	model.DirectionUp:       "CVD UP (Bullish)",
	model.DirectionDown:     "CVD DOWN (Bearish)",
	model.DirectionSideways: "CVD SIDEWAYS (Weak)",
}

var rowColors = map[model.Direction]model.Color{
	model.DirectionUp:       model.ColorGreen,
	model.DirectionDown:     model.ColorRed,
	model.DirectionSideways: model.ColorOrange,
}

// FormatReport renders all scenarios grouped into one row per CVD direction.
func FormatReport(scenarios []model.Scenario, clock Clock) (string, error) {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CVD Scenarios: price vs cumulative volume delta"))
	b.WriteString("\n")

	rows := strategy.GroupByCVD(scenarios)
	for _, dir := range model.Directions {
		row := rows[dir]
		if len(row) == 0 {
			continue
		}
		header := lipgloss.NewStyle().Foreground(colorOf(rowColors[dir])).Inherit(rowHeaderStyle)
		b.WriteString(header.Render("── " + rowTitles[dir] + " ──"))
		b.WriteString("\n")
		for _, s := range row {
			card, err := FormatCard(s, clock)
			if err != nil {
				return "", err
			}
			b.WriteString(card)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(FormatLegend())
	b.WriteString("\n")
	return b.String(), nil
}

// FormatCard renders one scenario card.
func FormatCard(s model.Scenario, clock Clock) (string, error) {
	accent := colorOf(s.Color)
	badge := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(accent).Padding(0, 1)

	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s  %s %s\n", s.ID, lipgloss.NewStyle().Bold(true).Render(s.Title),
		badge.Render(string(s.Action)), lipgloss.NewStyle().Foreground(accent).Render(string(s.Sentiment)))
	b.WriteString(s.Description + "\n")
	b.WriteString(labelStyle.Render("SIMPLE RULE: ") + s.Rule + "\n\n")

	priceLine, err := seriesLine("Price", s.PriceData, true)
	if err != nil {
		return "", fmt.Errorf("scenario %d price: %w", s.ID, err)
	}
	cvdLine, err := seriesLine("CVD", s.CVDData, false)
	if err != nil {
		return "", fmt.Errorf("scenario %d cvd: %w", s.ID, err)
	}
	b.WriteString(priceLine + "\n")
	b.WriteString(markerLine(s.PriceData) + "\n")
	b.WriteString(cvdLine + "\n")
	b.WriteString(markerLine(s.CVDData) + "\n")

	setup, err := setupLines(s, clock)
	if err != nil {
		return "", fmt.Errorf("scenario %d: %w", s.ID, err)
	}
	b.WriteString(setup)

	return cardStyle.BorderForeground(accent).Render(strings.TrimRight(b.String(), "\n")), nil
}

// FormatLegend explains the markers used on the cards.
func FormatLegend() string {
	return labelStyle.Render(strings.Join([]string{
		markerStyle.Render("●") + " structure point",
		"★ candle pattern",
		entryStyle.Render("▲") + " entry candle",
		"Entry / Target / Stop are price lines",
		"BREAKOUT is the CVD level that triggers the entry",
	}, "  |  "))
}

func seriesLine(name string, seq model.Sequence, withVolume bool) (string, error) {
	sum, err := calculator.Summarize(seq)
	if err != nil {
		return "", err
	}
	line := fmt.Sprintf("%-5s %s %s → %s (%s)\n      range %s..%s  RSI %.0f",
		name, Sparkline(seq.Closes()), num(sum.First), num(sum.Last), signed(sum.Change()),
		num(sum.Low), num(sum.High), sum.RSI)
	if withVolume {
		var vol float64
		for _, c := range seq {
			vol += c.Volume
		}
		line += "  vol " + humanize.Commaf(math.Round(vol))
	}
	return line, nil
}

func markerLine(seq model.Sequence) string {
	var parts []string
	for _, c := range seq {
		switch {
		case c.IsStructurePoint:
			parts = append(parts, markerStyle.Render(fmt.Sprintf("●%s@%d %s", c.StructureLabel, c.Time, num(calculator.StructureLevel(c)))))
		case c.Pattern != model.PatternNone:
			parts = append(parts, fmt.Sprintf("★%s@%d", abbreviate(c.Pattern), c.Time))
		}
	}
	if len(parts) == 0 {
		return labelStyle.Render("      no markers")
	}
	return "      " + strings.Join(parts, " ")
}

func setupLines(s model.Scenario, clock Clock) (string, error) {
	ts := s.TradeSetup
	if s.Action == model.ActionWait || !ts.HasEntry() {
		return labelStyle.Render("No trade: stay out until both charts agree."), nil
	}

	at, err := clock.At(s.PriceData, ts.EntryTime)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s on the %s candle (%s)",
		entryStyle.Render("▲ Entry"), money(ts.Entry), humanize.Ordinal(ts.EntryTime+1), at.Format("15:04"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s   ", lipgloss.NewStyle().Foreground(greenColor).Render("Target"), money(ts.Target))
	fmt.Fprintf(&b, "%s %s   ", lipgloss.NewStyle().Foreground(redColor).Render("Stop"), money(ts.StopLoss))
	fmt.Fprintf(&b, "R:R %s", ts.RiskReward)

	if trig, ok := calculator.LastStructureBefore(s.CVDData, ts.EntryTime, calculator.TriggerLookback); ok {
		fmt.Fprintf(&b, "\n%s CVD %s at %s (candle %d)", lipgloss.NewStyle().Foreground(orangeColor).Render("BREAKOUT"),
			trig.StructureLabel, num(calculator.StructureLevel(trig)), trig.Time)
	}
	return b.String(), nil
}

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

// Sparkline draws one tick per value scaled between the series extremes.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	out := make([]rune, len(values))
	for i, v := range values {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkTicks)-1))
		}
		out[i] = sparkTicks[idx]
	}
	return string(out)
}

func abbreviate(p model.Pattern) string {
	switch p {
	case model.PatternBullishEngulfing:
		return "BullEng"
	case model.PatternBearishEngulfing:
		return "BearEng"
	case model.PatternInvertedHammer:
		return "InvHammer"
	}
	return string(p)
}

func num(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func signed(v float64) string {
	if v >= 0 {
		return "+" + num(v)
	}
	return num(v)
}

func money(v float64) string {
	return "$" + num(v)
}

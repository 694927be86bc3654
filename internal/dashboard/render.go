package dashboard

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/2beens/healthdash/internal/trends"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// carried-forward points keep no height, only their place in the series
const sparkImputed = '░'

type RenderOptions struct {
	UseColors bool
}

type palette struct {
	good, bad, stable, neutral, muted, title func(...any) string
}

// newPalette maps trend kinds to colors. Dark theme uses the bright variants.
func newPalette(theme Theme, useColors bool) palette {
	if !useColors {
		return palette{
			good:    fmt.Sprint,
			bad:     fmt.Sprint,
			stable:  fmt.Sprint,
			neutral: fmt.Sprint,
			muted:   fmt.Sprint,
			title:   fmt.Sprint,
		}
	}

	if theme == ThemeDark {
		return palette{
			good:    color.New(color.FgHiGreen).SprintFunc(),
			bad:     color.New(color.FgHiRed).SprintFunc(),
			stable:  color.New(color.FgHiBlue).SprintFunc(),
			neutral: color.New(color.FgHiWhite).SprintFunc(),
			muted:   color.New(color.FgHiBlack).SprintFunc(),
			title:   color.New(color.FgHiCyan, color.Bold).SprintFunc(),
		}
	}
	return palette{
		good:    color.New(color.FgGreen).SprintFunc(),
		bad:     color.New(color.FgRed).SprintFunc(),
		stable:  color.New(color.FgBlue).SprintFunc(),
		neutral: color.New(color.FgBlack).SprintFunc(),
		muted:   color.New(color.FgYellow).SprintFunc(),
		title:   color.New(color.FgCyan, color.Bold).SprintFunc(),
	}
}

func (p palette) trend(t trends.Trend) string {
	switch t.Kind {
	case trends.KindGood:
		return p.good(t.Label)
	case trends.KindBad:
		return p.bad(t.Label)
	case trends.KindStable:
		return p.stable(t.Label)
	case trends.KindInsufficientData:
		return p.muted(t.Label)
	default:
		return p.neutral(t.Label)
	}
}

// Render writes the dashboard state as text tables, one per section.
func Render(w io.Writer, state State, opts RenderOptions) error {
	p := newPalette(state.Theme, opts.UseColors)

	if state.Loading {
		_, err := fmt.Fprintln(w, p.muted("Loading health data..."))
		return err
	}
	if state.Error != "" {
		if _, err := fmt.Fprintf(w, "%s %s\n", p.bad("Error:"), state.Error); err != nil {
			return err
		}
	}

	for _, section := range BuildSections(state.Data) {
		if _, err := fmt.Fprintf(w, "\n%s\n", p.title(section.Name)); err != nil {
			return err
		}
		if err := renderSection(w, section, p); err != nil {
			return fmt.Errorf("render section %s: %w", section.Name, err)
		}
	}

	return renderInsight(w, state, p)
}

func renderSection(w io.Writer, section Section, p palette) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Metric", "Value", "Unit", "Trend", "Last 30 days"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	data := make([][]string, 0, len(section.Cards))
	for _, card := range section.Cards {
		value := card.Value
		if card.Imputed {
			value += "*"
		}
		data = append(data, []string{
			card.Title,
			value,
			card.Unit,
			p.trend(card.Trend),
			sparkline(card.Sparkline, p.muted),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func renderInsight(w io.Writer, state State, p palette) error {
	switch {
	case state.Analyzing:
		_, err := fmt.Fprintf(w, "\n%s\n", p.muted("Analyzing..."))
		return err
	case state.Insight != nil:
		_, err := fmt.Fprintf(w, "\n%s (%s)\n%s\n",
			p.title("AI Insights"),
			state.Insight.Timestamp.Format("2006-01-02 15:04"),
			state.Insight.Response,
		)
		return err
	}
	return nil
}

// SparklineString draws the points as unicode blocks scaled between the
// series min and max. Missing points are drawn as a space, imputed ones
// as a shade block.
func SparklineString(points []trends.SparklinePoint) string {
	return sparkline(points, fmt.Sprint)
}

func sparkline(points []trends.SparklinePoint, imputedStyle func(...any) string) string {
	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, pt := range points {
		if pt.Value == nil || pt.Imputed {
			continue
		}
		minV = math.Min(minV, *pt.Value)
		maxV = math.Max(maxV, *pt.Value)
	}

	var sb strings.Builder
	for _, pt := range points {
		if pt.Value == nil {
			sb.WriteRune(' ')
			continue
		}
		if pt.Imputed {
			sb.WriteString(imputedStyle(string(sparkImputed)))
			continue
		}
		idx := 0
		if maxV > minV {
			idx = int(math.Round((*pt.Value - minV) / (maxV - minV) * float64(len(sparkBlocks)-1)))
		}
		sb.WriteRune(sparkBlocks[idx])
	}
	return sb.String()
}

// Package views renders inflammation statistics and patient records as text.
package views

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/KaramelBytes/inflammation-cli/internal/models"
)

// ViewData holds one value per day for each daily statistic.
type ViewData struct {
	Average []float64
	Max     []float64
	Min     []float64
}

// NewViewData computes the daily mean, max and min of t.
func NewViewData(t models.Table) (ViewData, error) {
	var (
		vd  ViewData
		err error
	)
	if vd.Average, err = models.DailyMean(t); err != nil {
		return ViewData{}, err
	}
	if vd.Max, err = models.DailyMax(t); err != nil {
		return ViewData{}, err
	}
	if vd.Min, err = models.DailyMin(t); err != nil {
		return ViewData{}, err
	}
	return vd, nil
}

// Options controls number formatting.
type Options struct {
	// Decimals is the number of digits printed after the decimal point.
	Decimals int
	// Sparkline appends a one-line trend chart per statistic.
	Sparkline bool
}

// DefaultOptions returns the formatting used by the CLI when not configured.
func DefaultOptions() Options {
	return Options{Decimals: 2, Sparkline: true}
}

// Visualize writes a per-day table of the statistics in vd.
func Visualize(w io.Writer, name string, vd ViewData, opt Options) error {
	var b strings.Builder
	b.WriteString("[DAILY SUMMARY]\n")
	if name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", name))
	}
	days := len(vd.Average)
	b.WriteString(fmt.Sprintf("Days: %d\n\n", days))

	b.WriteString("| day | average | max | min |\n")
	b.WriteString("|---|---|---|---|\n")
	for d := 0; d < days; d++ {
		b.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n", d,
			formatValue(vd.Average, d, opt.Decimals),
			formatValue(vd.Max, d, opt.Decimals),
			formatValue(vd.Min, d, opt.Decimals)))
	}
	if opt.Sparkline && days > 0 {
		b.WriteString("\n[TRENDS]\n")
		b.WriteString(fmt.Sprintf("average %s\n", Sparkline(vd.Average)))
		b.WriteString(fmt.Sprintf("max     %s\n", Sparkline(vd.Max)))
		b.WriteString(fmt.Sprintf("min     %s\n", Sparkline(vd.Min)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// DisplayPatientRecord writes the patient's name followed by one line per
// observation.
func DisplayPatientRecord(w io.Writer, p *models.Patient, opt Options) error {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Patient: %s\n", p))
	b.WriteString(fmt.Sprintf("Observations: %d\n", len(p.Observations)))
	for _, o := range p.Observations {
		b.WriteString(fmt.Sprintf("  day %d: %s\n", o.Day, formatFloat(o.Value, opt.Decimals)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// DisplayObservations writes a day/value table, such as doctor averages.
func DisplayObservations(w io.Writer, title string, obs []models.Observation, opt Options) error {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]\n", title))
	b.WriteString("| day | value |\n")
	b.WriteString("|---|---|\n")
	for _, o := range obs {
		b.WriteString(fmt.Sprintf("| %d | %s |\n", o.Day, formatFloat(o.Value, opt.Decimals)))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a row of block characters scaled between the
// smallest and largest non-NaN value. NaN renders as a space.
func Sparkline(values []float64) string {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	out := make([]rune, len(values))
	top := len(sparkRunes) - 1
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			out[i] = ' '
		case math.IsInf(v, 1):
			out[i] = sparkRunes[top]
		case math.IsInf(v, -1) || hi <= lo:
			out[i] = sparkRunes[0]
		default:
			idx := int(math.Round((v - lo) / (hi - lo) * float64(top)))
			out[i] = sparkRunes[idx]
		}
	}
	return string(out)
}

func formatValue(vals []float64, i int, decimals int) string {
	if i >= len(vals) {
		return "-"
	}
	return formatFloat(vals[i], decimals)
}

func formatFloat(v float64, decimals int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

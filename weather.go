package triplog

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lvillar/triplog/trip"
)

// weatherGlyphs maps the export's condition codes to short glyphs. Codes
// not listed here fall back to a humanized label.
var weatherGlyphs = map[string]string{
	"sunny":         "☀",
	"clear":         "☀",
	"partly-cloudy": "⛅",
	"cloudy":        "☁",
	"rain":          "☔",
	"snow":          "❄",
	"thunderstorm":  "⛈",
	"fog":           "🌫",
}

var conditionCaser = cases.Title(language.English)

// weatherSummary formats the compact weather line shown next to a step's
// location: condition glyph or label first, then the temperature rounded to
// the nearest whole degree. A nil observation, or one with neither
// condition nor temperature, produces no line at all.
func weatherSummary(w *trip.Weather) string {
	if w == nil {
		return ""
	}
	var parts []string
	if w.Condition != "" {
		glyph, ok := weatherGlyphs[w.Condition]
		if !ok {
			glyph = conditionLabel(w.Condition)
		}
		parts = append(parts, glyph)
	}
	if w.Temperature != nil {
		parts = append(parts, fmt.Sprintf("%d°C", int(math.Round(*w.Temperature))))
	}
	return strings.Join(parts, " ")
}

// conditionLabel turns an unmapped condition code into a readable label,
// e.g. "light-rain" into "Light Rain".
func conditionLabel(code string) string {
	label := strings.NewReplacer("-", " ", "_", " ").Replace(code)
	return conditionCaser.String(label)
}

package triplog

import (
	"testing"

	"github.com/lvillar/triplog/trip"
)

func TestWeatherSummary(t *testing.T) {
	temp := func(v float64) *float64 { return &v }

	tests := []struct {
		name string
		in   *trip.Weather
		want string
	}{
		{"nil observation", nil, ""},
		{"empty observation", &trip.Weather{}, ""},
		{"mapped condition with temperature", &trip.Weather{Condition: "cloudy", Temperature: temp(21.4)}, "☁ 21°C"},
		{"temperature rounds up", &trip.Weather{Condition: "sunny", Temperature: temp(20.5)}, "☀ 21°C"},
		{"negative temperature", &trip.Weather{Condition: "snow", Temperature: temp(-3.2)}, "❄ -3°C"},
		{"condition only", &trip.Weather{Condition: "rain"}, "☔"},
		{"temperature only", &trip.Weather{Temperature: temp(18)}, "18°C"},
		{"unmapped condition humanized", &trip.Weather{Condition: "light-rain", Temperature: temp(12)}, "Light Rain 12°C"},
	}
	for _, tc := range tests {
		if got := weatherSummary(tc.in); got != tc.want {
			t.Fatalf("%s: weatherSummary = %q, want %q", tc.name, got, tc.want)
		}
	}
}

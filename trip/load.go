package trip

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Raw export schema: the subset of the trip.json format the renderer
// consumes. Dates arrive as unix-second floats.
type rawTrip struct {
	Name           string    `json:"name"`
	StartDate      float64   `json:"start_date"`
	EndDate        float64   `json:"end_date"`
	CoverPhotoPath string    `json:"cover_photo_path"`
	AllSteps       []rawStep `json:"all_steps"`
}

type rawStep struct {
	ID                 int64        `json:"id"`
	Name               string       `json:"name"`
	DisplayName        string       `json:"display_name"`
	Description        *string      `json:"description"`
	StartTime          float64      `json:"start_time"`
	Location           rawLocation  `json:"location"`
	WeatherCondition   string       `json:"weather_condition"`
	WeatherTemperature *float64     `json:"weather_temperature"`
	Comments           []rawComment `json:"comments"`
}

type rawLocation struct {
	Name    string `json:"name"`
	Detail  string `json:"detail"`
	Country string `json:"country"`
}

type rawComment struct {
	Text string  `json:"text"`
	User rawUser `json:"user"`
}

type rawUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoadOptions configures export loading.
type LoadOptions struct {
	MaxSteps int // cap on loaded steps; 0 loads all
}

// Load reads the trip export rooted at dir: trip.json plus the per-step
// photo folders. Steps without a photo folder simply get no photos.
func Load(dir string, opts LoadOptions) (*Trip, error) {
	data, err := os.ReadFile(filepath.Join(dir, "trip.json"))
	if err != nil {
		return nil, fmt.Errorf("trip: reading export: %w", err)
	}
	t, err := Parse(data, opts)
	if err != nil {
		return nil, err
	}
	if t.CoverPhoto != "" {
		t.CoverPhoto = filepath.Join(dir, t.CoverPhoto)
	}
	if err := attachPhotos(t, dir); err != nil {
		return nil, err
	}
	return t, nil
}

// Parse decodes a trip export without touching the filesystem. CoverPhoto
// and photo paths are left as the export states them.
func Parse(data []byte, opts LoadOptions) (*Trip, error) {
	var raw rawTrip
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("trip: parsing export: %w", err)
	}

	steps := raw.AllSteps
	if opts.MaxSteps > 0 && len(steps) > opts.MaxSteps {
		steps = steps[:opts.MaxSteps]
	}

	t := &Trip{
		Name:       raw.Name,
		StartDate:  parseTimestamp(raw.StartDate),
		EndDate:    parseTimestamp(raw.EndDate),
		CoverPhoto: raw.CoverPhotoPath,
	}
	for _, rs := range steps {
		t.Steps = append(t.Steps, convertStep(rs))
	}
	return t, nil
}

func convertStep(rs rawStep) *Step {
	name := rs.DisplayName
	if name == "" {
		name = rs.Name
	}
	s := &Step{
		ID:   rs.ID,
		Name: name,
		Date: parseTimestamp(rs.StartTime),
		Location: Location{
			Name:    rs.Location.Name,
			Country: rs.Location.Country,
		},
	}
	if rs.Description != nil {
		s.Description = *rs.Description
	}
	if rs.WeatherCondition != "" || rs.WeatherTemperature != nil {
		s.Weather = &Weather{
			Condition:   rs.WeatherCondition,
			Temperature: rs.WeatherTemperature,
		}
	}
	for _, rc := range rs.Comments {
		s.Comments = append(s.Comments, Comment{
			Author: strings.TrimSpace(rc.User.FirstName + " " + rc.User.LastName),
			Text:   rc.Text,
		})
	}
	return s
}

// parseTimestamp converts an export timestamp (unix seconds, possibly with
// a fractional part) to a time.Time.
func parseTimestamp(ts float64) time.Time {
	sec, frac := math.Modf(ts)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

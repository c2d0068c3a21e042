// Package trip defines the travel-log data model and loads Polarsteps-style
// JSON exports from disk.
//
// An export directory contains a trip.json file plus one photo folder per
// step, named with the step ID as suffix:
//
//	export/
//	  trip.json
//	  amsterdam_12345678/
//	    photo_1.jpg
//	    photo_2.jpg
//	  berlin_12345679/
//	    ...
//
// Load produces a fully resolved Trip; rendering treats it as read-only.
package trip

import "time"

// Trip is one travel log to be rendered.
type Trip struct {
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	CoverPhoto string // path to the cover image; may be empty
	Steps      []*Step
}

// Step is one stop in the trip.
type Step struct {
	ID          int64
	Name        string
	Location    Location
	Date        time.Time
	Description string // may be empty
	Weather     *Weather
	Comments    []Comment
	Photos      []string // file paths in display order
}

// Location names where a step took place.
type Location struct {
	Name    string
	Country string
}

// Weather is an optional observation recorded with a step.
type Weather struct {
	Condition   string   // export condition code, e.g. "partly-cloudy"
	Temperature *float64 // degrees Celsius; nil when not recorded
}

// Comment is a follower comment on a step.
type Comment struct {
	Author string
	Text   string
}

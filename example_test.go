package triplog_test

import (
	"bytes"
	"fmt"
	"time"

	"github.com/lvillar/triplog"
	"github.com/lvillar/triplog/trip"
)

func ExampleGenerate() {
	temp := 18.5
	t := &trip.Trip{
		Name:      "Summer in Iceland",
		StartDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC),
		Steps: []*trip.Step{
			{
				Name:        "Reykjavik",
				Location:    trip.Location{Name: "Reykjavik", Country: "Iceland"},
				Date:        time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
				Description: "Arrived late in the evening, the sun barely set at all.",
				Weather:     &trip.Weather{Condition: "partly-cloudy", Temperature: &temp},
			},
			{
				Name:     "Vik",
				Location: trip.Location{Name: "Vik", Country: "Iceland"},
				Date:     time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC),
				Comments: []trip.Comment{
					{Author: "Anna", Text: "The black sand beach is stunning."},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := triplog.Generate(&buf, t,
		triplog.WithTripURL("https://example.com/trips/iceland-2024"),
	); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("Generated PDF: %d bytes\n", buf.Len())
	// Output pattern: Generated PDF: NNNN bytes
}

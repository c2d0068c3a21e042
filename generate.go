package triplog

import (
	"fmt"

	"github.com/lvillar/triplog/layout"
	"github.com/lvillar/triplog/trip"
)

// dateLayout formats dates the way the log labels them: day first.
const dateLayout = "02-01-2006"

// renderTrip sequences the whole document: title page, then each step in
// order.
func renderTrip(eng *layout.Engine, t *trip.Trip, cfg renderConfig) error {
	eng.StartDocument(t.Name)
	eng.SetStepProgress(0, len(t.Steps))

	if err := renderTitlePage(eng, t, cfg); err != nil {
		return &RenderError{Op: "RenderTitlePage", Err: err}
	}
	for i, step := range t.Steps {
		eng.SetStepProgress(i+1, len(t.Steps))
		if err := renderStep(eng, step); err != nil {
			return &RenderError{Op: "RenderStep", Err: err}
		}
	}
	return nil
}

// renderTitlePage draws the trip title, the date range, the cover photo,
// and, when configured, a QR code linking to the trip's web page.
func renderTitlePage(eng *layout.Engine, t *trip.Trip, cfg renderConfig) error {
	eng.TitleHeading(t.Name)

	dates := fmt.Sprintf("%s - %s", t.StartDate.Format(dateLayout), t.EndDate.Format(dateLayout))
	eng.ShortLine(dates, layout.ShortLineOptions{Bold: true, Centered: true})

	if t.CoverPhoto != "" {
		opts := layout.ImageOptions{Width: cfg.coverWidth, Centered: true}
		if err := eng.PlaceImage(t.CoverPhoto, opts); err != nil {
			return err
		}
	}
	if cfg.tripURL != "" {
		return drawTripQR(eng, cfg.tripURL, cfg.qrSize)
	}
	return nil
}

// renderStep draws one step: heading, location line (sharing its line with
// the weather summary when one exists), date line, description, comments,
// then the photo sequence under the pairing policy.
func renderStep(eng *layout.Engine, s *trip.Step) error {
	eng.AdvancePage()
	eng.Heading(s.Name)

	location := fmt.Sprintf("Ort: %s, %s", s.Location.Name, s.Location.Country)
	if summary := weatherSummary(s.Weather); summary != "" {
		eng.DualColumnLine(location, summary, layout.DualColumnOptions{})
	} else {
		eng.ShortLine(location, layout.ShortLineOptions{})
	}
	eng.ShortLine("Datum: "+s.Date.Format(dateLayout), layout.ShortLineOptions{})

	eng.Paragraph(s.Description)

	for _, c := range s.Comments {
		eng.ShortLine(c.Author, layout.ShortLineOptions{Bold: true})
		eng.Paragraph(c.Text)
	}

	return eng.PlacePhotos(s.Photos)
}

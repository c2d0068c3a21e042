package triplog

import "github.com/lvillar/triplog/layout"

// Option is a functional option for configuring a render via Generate.
type Option func(*renderConfig)

type renderConfig struct {
	layout           layout.Config
	fallbackFontPath string
	coverTemplate    string
	tripURL          string
	coverWidth       float64
	qrSize           float64
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		layout:     layout.DefaultConfig(),
		coverWidth: 400,
		qrSize:     120,
	}
}

// WithFallbackFont registers the TTF at path as the fallback font, used at
// the role's size whenever text contains glyphs outside the 7-bit ASCII
// range (emoji, non-Latin scripts). Without it such glyphs may render
// incorrectly in the built-in fonts.
func WithFallbackFont(path string) Option {
	return func(c *renderConfig) {
		c.fallbackFontPath = path
	}
}

// WithCoverTemplate stamps the first page of the PDF at path behind the
// title page, for pre-designed cover artwork.
func WithCoverTemplate(path string) Option {
	return func(c *renderConfig) {
		c.coverTemplate = path
	}
}

// WithTripURL adds a QR code on the title page linking back to the trip's
// web page.
func WithTripURL(url string) Option {
	return func(c *renderConfig) {
		c.tripURL = url
	}
}

// WithLayout replaces the page geometry and spacing configuration
// wholesale. Start from layout.DefaultConfig.
func WithLayout(cfg layout.Config) Option {
	return func(c *renderConfig) {
		c.layout = cfg
	}
}

// WithMargins overrides the page margins in points.
func WithMargins(left, top, right, bottom float64) Option {
	return func(c *renderConfig) {
		c.layout.MarginLeft = left
		c.layout.MarginTop = top
		c.layout.MarginRight = right
		c.layout.MarginBottom = bottom
	}
}

// WithImageSizes overrides the orientation-default image targets: the
// height portrait images scale to and the width landscape or square images
// scale to, both in points.
func WithImageSizes(portraitHeight, landscapeWidth float64) Option {
	return func(c *renderConfig) {
		c.layout.PortraitHeight = portraitHeight
		c.layout.LandscapeWidth = landscapeWidth
	}
}

// WithCoverWidth overrides the explicit width of the title-page cover
// photo.
func WithCoverWidth(width float64) Option {
	return func(c *renderConfig) {
		c.coverWidth = width
	}
}

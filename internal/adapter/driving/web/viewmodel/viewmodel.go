// Package viewmodel defines presentation-ready structs for page templates.
// View models decouple template rendering from domain model types.
package viewmodel

import "html/template"

// MetaViewModel holds the document head metadata.
type MetaViewModel struct {
	Title       string
	Description string
	Keywords    string
	SiteName    string
	URL         string
}

// LinkViewModel is a rendered anchor. External links open in a new browsing
// context with rel="noopener noreferrer".
type LinkViewModel struct {
	Label    string
	Href     string
	Icon     string
	Class    string
	External bool
}

// ImageViewModel references a static image.
type ImageViewModel struct {
	Src string
	Alt string
}

// NoteViewModel is one decorative floating musical note. Left is a percentage
// of the container width; Delay and Duration are seconds.
type NoteViewModel struct {
	Glyph    string
	Left     float64
	Delay    float64
	Duration float64
}

// SplashViewModel holds the loader view.
type SplashViewModel struct {
	Glyph   string
	Title   string
	Tagline string
	Dots    []float64 // Animation delays in seconds, one per bouncing dot.
	Notes   []NoteViewModel
}

// HeroViewModel holds the home page banner.
type HeroViewModel struct {
	Title           string
	Subtitle        string
	CTA             LinkViewModel
	BackgroundImage string
}

// AboutViewModel holds the biography section.
type AboutViewModel struct {
	Title string
	HTML  template.HTML
	Image ImageViewModel
}

// ReleaseViewModel is one tile of the discography grid.
type ReleaseViewModel struct {
	ImageViewModel
	Delay float64
}

// HomeViewModel holds presentation-ready data for the home page.
type HomeViewModel struct {
	SiteName      string
	Hero          HeroViewModel
	HeroNotes     []NoteViewModel
	About         AboutViewModel
	Discography   []ReleaseViewModel
	Socials       []LinkViewModel
	Copyright     string
	FooterTagline string
}

// GiftedViewModel holds presentation-ready data for the album page.
type GiftedViewModel struct {
	Title     string
	Cover     ImageViewModel
	QuoteHTML template.HTML
	Platforms []LinkViewModel
	Support   LinkViewModel
	Tracklist []string
	Copyright string
}

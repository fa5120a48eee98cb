package model

import (
	"errors"
	"slices"
)

// ErrInvalidContent indicates a content record is missing a required field.
var ErrInvalidContent = errors.New("invalid content")

// Link describes an outbound link rendered in a link list.
type Link struct {
	Label string
	URL   string
	Icon  string
	Style string // Style hint mapped to a CSS modifier, e.g. "youtube".
}

// Image references a static asset by path.
type Image struct {
	Src string
	Alt string
}

// SiteMeta holds document-level metadata shared by every page.
type SiteMeta struct {
	Name        string
	URL         string
	Title       string
	Description string
	Keywords    []string
	Copyright   string
}

// SplashContent describes the decorative loader shown while a page is Loading.
type SplashContent struct {
	Glyph      string
	Title      string
	Tagline    string
	Notes      int
	NoteGlyphs []string
}

// Hero is the banner at the top of the home page.
type Hero struct {
	Title           string
	Subtitle        string
	CTAText         string
	CTALink         string
	BackgroundImage string
}

// About is the home page biography section. Text is markdown.
type About struct {
	Title string
	Text  string
	Image string
}

// Release is one entry of the discography grid. An empty Image renders a placeholder tile.
type Release struct {
	Image Image
}

// HomeContent is the content record of the home page.
type HomeContent struct {
	Splash        SplashContent
	HeroNotes     int
	Hero          Hero
	About         About
	Discography   []Release
	Socials       []Link
	FooterTagline string
}

// GiftedContent is the content record of the album landing page. Quote is markdown.
type GiftedContent struct {
	Splash    SplashContent
	Title     string
	Cover     Image
	Quote     string
	Platforms []Link
	Support   Link
	Tracklist []string
}

// SiteContent bundles every page's content record.
type SiteContent struct {
	Meta   SiteMeta
	Home   HomeContent
	Gifted GiftedContent
}

// Clone returns a deep copy so callers can never mutate the loaded record.
func (c SiteContent) Clone() SiteContent {
	c.Meta.Keywords = slices.Clone(c.Meta.Keywords)
	c.Home = c.Home.Clone()
	c.Gifted = c.Gifted.Clone()
	return c
}

// Clone returns a deep copy of the home content.
func (h HomeContent) Clone() HomeContent {
	h.Splash.NoteGlyphs = slices.Clone(h.Splash.NoteGlyphs)
	h.Discography = slices.Clone(h.Discography)
	h.Socials = slices.Clone(h.Socials)
	return h
}

// Clone returns a deep copy of the gifted content.
func (g GiftedContent) Clone() GiftedContent {
	g.Splash.NoteGlyphs = slices.Clone(g.Splash.NoteGlyphs)
	g.Platforms = slices.Clone(g.Platforms)
	g.Tracklist = slices.Clone(g.Tracklist)
	return g
}

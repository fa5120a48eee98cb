// Package content implements the ContentSource port from a YAML document.
package content

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/beatzboy/site/internal/domain/model"
)

type siteDoc struct {
	Meta   metaDoc   `yaml:"meta"`
	Home   homeDoc   `yaml:"home"`
	Gifted giftedDoc `yaml:"gifted"`
}

type metaDoc struct {
	Name        string   `yaml:"name"`
	URL         string   `yaml:"url"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Copyright   string   `yaml:"copyright"`
}

type splashDoc struct {
	Glyph      string   `yaml:"glyph"`
	Title      string   `yaml:"title"`
	Tagline    string   `yaml:"tagline"`
	Notes      int      `yaml:"notes"`
	NoteGlyphs []string `yaml:"note_glyphs"`
}

type linkDoc struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon"`
	Style string `yaml:"style"`
}

type imageDoc struct {
	Image string `yaml:"image"`
	Alt   string `yaml:"alt"`
}

type homeDoc struct {
	Splash    splashDoc `yaml:"splash"`
	HeroNotes int       `yaml:"hero_notes"`
	Hero      struct {
		Title           string `yaml:"title"`
		Subtitle        string `yaml:"subtitle"`
		CTAText         string `yaml:"cta_text"`
		CTALink         string `yaml:"cta_link"`
		BackgroundImage string `yaml:"background_image"`
	} `yaml:"hero"`
	About struct {
		Title string `yaml:"title"`
		Text  string `yaml:"text"`
		Image string `yaml:"image"`
	} `yaml:"about"`
	Discography   []imageDoc `yaml:"discography"`
	Socials       []linkDoc  `yaml:"socials"`
	FooterTagline string     `yaml:"footer_tagline"`
}

type giftedDoc struct {
	Splash    splashDoc `yaml:"splash"`
	Title     string    `yaml:"title"`
	Cover     imageDoc  `yaml:"cover"`
	Quote     string    `yaml:"quote"`
	Platforms []linkDoc `yaml:"platforms"`
	Support   linkDoc   `yaml:"support"`
	Tracklist []string  `yaml:"tracklist"`
}

// Source loads site content from a YAML file, or from the embedded default
// document when no path is configured.
type Source struct {
	path string
}

// NewSource creates a Source. An empty path selects the embedded document.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads, decodes and validates the content document.
func (s *Source) Load(ctx context.Context) (*model.SiteContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := defaultSite
	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read content file %s: %w", s.path, err)
		}
		raw = data
	}

	return Parse(raw)
}

// Parse decodes a YAML content document into a validated SiteContent.
func Parse(raw []byte) (*model.SiteContent, error) {
	var doc siteDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	site := doc.toModel()
	if err := validate(site); err != nil {
		return nil, err
	}
	return site, nil
}

func (d siteDoc) toModel() *model.SiteContent {
	return &model.SiteContent{
		Meta: model.SiteMeta{
			Name:        d.Meta.Name,
			URL:         d.Meta.URL,
			Title:       d.Meta.Title,
			Description: d.Meta.Description,
			Keywords:    nonNil(d.Meta.Keywords),
			Copyright:   d.Meta.Copyright,
		},
		Home: model.HomeContent{
			Splash:    d.Home.Splash.toModel(),
			HeroNotes: d.Home.HeroNotes,
			Hero: model.Hero{
				Title:           d.Home.Hero.Title,
				Subtitle:        d.Home.Hero.Subtitle,
				CTAText:         d.Home.Hero.CTAText,
				CTALink:         d.Home.Hero.CTALink,
				BackgroundImage: d.Home.Hero.BackgroundImage,
			},
			About: model.About{
				Title: d.Home.About.Title,
				Text:  d.Home.About.Text,
				Image: d.Home.About.Image,
			},
			Discography:   toReleases(d.Home.Discography),
			Socials:       toLinks(d.Home.Socials),
			FooterTagline: d.Home.FooterTagline,
		},
		Gifted: model.GiftedContent{
			Splash:    d.Gifted.Splash.toModel(),
			Title:     d.Gifted.Title,
			Cover:     model.Image{Src: d.Gifted.Cover.Image, Alt: d.Gifted.Cover.Alt},
			Quote:     d.Gifted.Quote,
			Platforms: toLinks(d.Gifted.Platforms),
			Support:   d.Gifted.Support.toModel(),
			Tracklist: nonNil(d.Gifted.Tracklist),
		},
	}
}

func (s splashDoc) toModel() model.SplashContent {
	return model.SplashContent{
		Glyph:      s.Glyph,
		Title:      s.Title,
		Tagline:    s.Tagline,
		Notes:      s.Notes,
		NoteGlyphs: nonNil(s.NoteGlyphs),
	}
}

func (l linkDoc) toModel() model.Link {
	return model.Link{Label: l.Label, URL: l.URL, Icon: l.Icon, Style: l.Style}
}

func toLinks(docs []linkDoc) []model.Link {
	links := make([]model.Link, 0, len(docs))
	for _, d := range docs {
		links = append(links, d.toModel())
	}
	return links
}

func toReleases(docs []imageDoc) []model.Release {
	releases := make([]model.Release, 0, len(docs))
	for _, d := range docs {
		releases = append(releases, model.Release{Image: model.Image{Src: d.Image, Alt: d.Alt}})
	}
	return releases
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

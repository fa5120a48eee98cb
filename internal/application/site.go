// Package application contains use-case orchestration services.
package application

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/beatzboy/site/internal/domain/model"
	"github.com/beatzboy/site/internal/domain/port/driven"
)

// DefaultPages returns the site's two pages with the given splash delays.
func DefaultPages(homeDelay, giftedDelay time.Duration) []model.Page {
	return []model.Page{
		{Name: model.PageHome, Route: "/", SplashDelay: homeDelay},
		{Name: model.PageGifted, Route: "/gifted", SplashDelay: giftedDelay},
	}
}

// Site holds the immutable content loaded at startup together with the page
// definitions. Every accessor returns a copy.
type Site struct {
	content  model.SiteContent
	pages    []model.Page
	clock    Clock
	loadedAt time.Time
}

// LoadSite reads content from src once and returns the Site serving it.
// A nil clock selects SystemClock for the gates the Site creates.
func LoadSite(ctx context.Context, src driven.ContentSource, pages []model.Page, clock Clock) (*Site, error) {
	content, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load site content: %w", err)
	}
	if clock == nil {
		clock = SystemClock
	}

	return &Site{
		content:  content.Clone(),
		pages:    slices.Clone(pages),
		clock:    clock,
		loadedAt: time.Now(),
	}, nil
}

// Meta returns the document metadata.
func (s *Site) Meta() model.SiteMeta {
	meta := s.content.Meta
	meta.Keywords = slices.Clone(meta.Keywords)
	return meta
}

// Home returns the home page content record.
func (s *Site) Home() model.HomeContent {
	return s.content.Home.Clone()
}

// Gifted returns the album page content record.
func (s *Site) Gifted() model.GiftedContent {
	return s.content.Gifted.Clone()
}

// Pages returns the page definitions in registration order.
func (s *Site) Pages() []model.Page {
	return slices.Clone(s.pages)
}

// Page looks up a page definition by name.
func (s *Site) Page(name model.PageName) (model.Page, bool) {
	for _, p := range s.pages {
		if p.Name == name {
			return p, true
		}
	}
	return model.Page{}, false
}

// NewGate creates a fresh splash gate for one activation of the named page.
func (s *Site) NewGate(name model.PageName) (*SplashGate, error) {
	p, ok := s.Page(name)
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	return NewSplashGate(p.SplashDelay, s.clock), nil
}

// LoadedAt reports when the content was loaded.
func (s *Site) LoadedAt() time.Time {
	return s.loadedAt
}

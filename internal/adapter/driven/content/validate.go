package content

import (
	"fmt"

	"github.com/beatzboy/site/internal/domain/model"
)

// validate checks that every record carries the fields the views need.
// URLs are not checked beyond being present.
func validate(site *model.SiteContent) error {
	required := []struct {
		field string
		value string
	}{
		{"meta.title", site.Meta.Title},
		{"home.hero.title", site.Home.Hero.Title},
		{"home.hero.cta_link", site.Home.Hero.CTALink},
		{"home.about.title", site.Home.About.Title},
		{"gifted.title", site.Gifted.Title},
		{"gifted.support.url", site.Gifted.Support.URL},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s is required", model.ErrInvalidContent, r.field)
		}
	}

	if err := validateLinks("home.socials", site.Home.Socials); err != nil {
		return err
	}
	if err := validateLinks("gifted.platforms", site.Gifted.Platforms); err != nil {
		return err
	}

	for _, s := range []struct {
		field  string
		splash model.SplashContent
	}{
		{"home.splash", site.Home.Splash},
		{"gifted.splash", site.Gifted.Splash},
	} {
		if s.splash.Notes < 0 {
			return fmt.Errorf("%w: %s.notes must not be negative", model.ErrInvalidContent, s.field)
		}
		if s.splash.Notes > 0 && len(s.splash.NoteGlyphs) == 0 {
			return fmt.Errorf("%w: %s.note_glyphs is required when notes > 0", model.ErrInvalidContent, s.field)
		}
	}
	if site.Home.HeroNotes < 0 {
		return fmt.Errorf("%w: home.hero_notes must not be negative", model.ErrInvalidContent)
	}

	return nil
}

func validateLinks(field string, links []model.Link) error {
	for i, l := range links {
		if l.Label == "" || l.URL == "" {
			return fmt.Errorf("%w: %s[%d] needs label and url", model.ErrInvalidContent, field, i)
		}
	}
	return nil
}

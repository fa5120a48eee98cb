package web

import (
	"strings"

	vm "github.com/beatzboy/site/internal/adapter/driving/web/viewmodel"
	"github.com/beatzboy/site/internal/domain/model"
)

const (
	heroNoteGlyph     = "♪"
	releaseStagger    = 0.1
	linkClassSocial   = "link link--social"
	linkClassPlatform = "link link--platform"
	linkClassSupport  = "button button--support"
	linkClassCTA      = "button button--cta"
)

// toMetaViewModel converts site metadata into head tags.
func toMetaViewModel(meta model.SiteMeta) vm.MetaViewModel {
	return vm.MetaViewModel{
		Title:       meta.Title,
		Description: meta.Description,
		Keywords:    strings.Join(meta.Keywords, ", "),
		SiteName:    meta.Name,
		URL:         meta.URL,
	}
}

// toSplashViewModel converts a loader record, placing its notes at random.
func toSplashViewModel(s model.SplashContent, random func() float64) vm.SplashViewModel {
	return vm.SplashViewModel{
		Glyph:   s.Glyph,
		Title:   s.Title,
		Tagline: s.Tagline,
		Dots:    splashDotDelays,
		Notes:   newNotes(s.Notes, s.NoteGlyphs, splashNoteMotion, random),
	}
}

// toLinkViewModel converts a link descriptor. Any absolute http(s) URL is
// treated as external.
func toLinkViewModel(l model.Link, class string) vm.LinkViewModel {
	if l.Style != "" {
		class += " link--" + l.Style
	}
	return vm.LinkViewModel{
		Label:    l.Label,
		Href:     l.URL,
		Icon:     l.Icon,
		Class:    class,
		External: isExternal(l.URL),
	}
}

func toLinkViewModels(links []model.Link, class string) []vm.LinkViewModel {
	vms := make([]vm.LinkViewModel, 0, len(links))
	for _, l := range links {
		vms = append(vms, toLinkViewModel(l, class))
	}
	return vms
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "https://") || strings.HasPrefix(href, "http://")
}

// toHomeViewModel converts the home content record.
func toHomeViewModel(meta model.SiteMeta, home model.HomeContent, random func() float64) vm.HomeViewModel {
	releases := make([]vm.ReleaseViewModel, 0, len(home.Discography))
	for i, r := range home.Discography {
		releases = append(releases, vm.ReleaseViewModel{
			ImageViewModel: vm.ImageViewModel{Src: r.Image.Src, Alt: r.Image.Alt},
			Delay:          float64(i) * releaseStagger,
		})
	}

	return vm.HomeViewModel{
		SiteName: meta.Name,
		Hero: vm.HeroViewModel{
			Title:    home.Hero.Title,
			Subtitle: home.Hero.Subtitle,
			CTA: toLinkViewModel(model.Link{
				Label: home.Hero.CTAText,
				URL:   home.Hero.CTALink,
			}, linkClassCTA),
			BackgroundImage: home.Hero.BackgroundImage,
		},
		HeroNotes: newNotes(home.HeroNotes, []string{heroNoteGlyph}, heroNoteMotion, random),
		About: vm.AboutViewModel{
			Title: home.About.Title,
			HTML:  copyHTML(home.About.Text),
			Image: vm.ImageViewModel{Src: home.About.Image, Alt: home.About.Title},
		},
		Discography:   releases,
		Socials:       toLinkViewModels(home.Socials, linkClassSocial),
		Copyright:     meta.Copyright,
		FooterTagline: home.FooterTagline,
	}
}

// toGiftedViewModel converts the album content record.
func toGiftedViewModel(meta model.SiteMeta, gifted model.GiftedContent) vm.GiftedViewModel {
	tracks := gifted.Tracklist
	if tracks == nil {
		tracks = []string{}
	}

	return vm.GiftedViewModel{
		Title:     gifted.Title,
		Cover:     vm.ImageViewModel{Src: gifted.Cover.Src, Alt: gifted.Cover.Alt},
		QuoteHTML: copyHTML(gifted.Quote),
		Platforms: toLinkViewModels(gifted.Platforms, linkClassPlatform),
		Support:   toLinkViewModel(gifted.Support, linkClassSupport),
		Tracklist: tracks,
		Copyright: meta.Copyright,
	}
}

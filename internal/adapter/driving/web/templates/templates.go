// Package templates provides the page components. Markup lives in embedded
// html/template files and is exposed as templ components so pages compose
// with the layout and the splash gate.
package templates

import (
	"context"
	"embed"
	"html/template"
	"io"

	"github.com/a-h/templ"

	vm "github.com/beatzboy/site/internal/adapter/driving/web/viewmodel"
)

//go:embed *.gohtml
var files embed.FS

var pages = template.Must(template.New("pages").ParseFS(files, "*.gohtml"))

func component(name string, data any) templ.Component {
	return templ.FromGoHTML(pages.Lookup(name), data)
}

// Layout wraps body in the HTML document shell. body is rendered straight to
// the layout's writer so that it can flush partial output.
func Layout(meta vm.MetaViewModel, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := component("layout-open", meta).Render(ctx, w); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		return component("layout-close", meta).Render(ctx, w)
	})
}

// Splash renders the decorative loader.
func Splash(v vm.SplashViewModel) templ.Component {
	return component("splash", v)
}

// SplashDismiss hides a previously streamed loader.
func SplashDismiss() templ.Component {
	return component("splash-dismiss", nil)
}

// Home renders the home page content view.
func Home(v vm.HomeViewModel) templ.Component {
	return component("home", v)
}

// Gifted renders the album page content view.
func Gifted(v vm.GiftedViewModel) templ.Component {
	return component("gifted", v)
}

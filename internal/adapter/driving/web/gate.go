package web

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/beatzboy/site/internal/adapter/driving/web/templates"
	"github.com/beatzboy/site/internal/application"
)

// gatedBody streams the splash view, holds the response until gate is Ready,
// then streams the content view and hides the splash. If the client goes away
// first, the gate is deactivated and nothing more is written. When the
// response cannot be flushed the content view is rendered without a splash.
func gatedBody(gate *application.SplashGate, splash, content templ.Component, flush func() error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := flush(); err != nil {
			if errors.Is(err, http.ErrNotSupported) {
				return content.Render(ctx, w)
			}
			return err
		}

		if err := splash.Render(ctx, w); err != nil {
			return err
		}
		if err := flush(); err != nil {
			return err
		}

		if err := gate.Activate(); err != nil {
			return err
		}
		defer gate.Deactivate()

		if err := gate.Wait(ctx); err != nil {
			return err
		}

		if err := templates.SplashDismiss().Render(ctx, w); err != nil {
			return err
		}
		return content.Render(ctx, w)
	})
}

package driven

import (
	"context"

	"github.com/beatzboy/site/internal/domain/model"
)

// ContentSource defines the driven port that supplies the site's content records.
// Load returns an error wrapping model.ErrInvalidContent when a record is incomplete.
type ContentSource interface {
	Load(ctx context.Context) (*model.SiteContent, error)
}

package model

import "time"

// PageName identifies one of the site's pages.
type PageName string

const (
	PageHome   PageName = "home"
	PageGifted PageName = "gifted"
)

// Default splash delays per page.
const (
	DefaultHomeSplashDelay   = 2000 * time.Millisecond
	DefaultGiftedSplashDelay = 1500 * time.Millisecond
)

// Page binds a page to its route and splash delay.
type Page struct {
	Name        PageName
	Route       string
	SplashDelay time.Duration
}

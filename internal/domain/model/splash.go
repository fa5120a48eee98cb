package model

// SplashState is the loading state of a single page activation.
type SplashState int

const (
	// SplashLoading is the initial state: the loader is shown.
	SplashLoading SplashState = iota
	// SplashReady is terminal: the content view replaced the loader.
	SplashReady
)

// String returns a human-readable name for the state.
func (s SplashState) String() string {
	switch s {
	case SplashLoading:
		return "loading"
	case SplashReady:
		return "ready"
	default:
		return "unknown"
	}
}

package web

import (
	vm "github.com/beatzboy/site/internal/adapter/driving/web/viewmodel"
)

// noteMotion bounds the random animation parameters of a note field.
type noteMotion struct {
	baseDuration float64
	jitter       float64
	maxDelay     float64
}

var (
	splashNoteMotion = noteMotion{baseDuration: 8, jitter: 4, maxDelay: 3}
	heroNoteMotion   = noteMotion{baseDuration: 10, jitter: 5, maxDelay: 5}
)

// splashDotDelays staggers the three bouncing loader dots.
var splashDotDelays = []float64{0, 0.2, 0.4}

// newNotes places n notes at random positions. random returns values in [0, 1).
// Positions are not reproducible between renders.
func newNotes(n int, glyphs []string, motion noteMotion, random func() float64) []vm.NoteViewModel {
	if n <= 0 || len(glyphs) == 0 {
		return []vm.NoteViewModel{}
	}

	notes := make([]vm.NoteViewModel, 0, n)
	for range n {
		idx := int(random() * float64(len(glyphs)))
		if idx >= len(glyphs) {
			idx = len(glyphs) - 1
		}
		notes = append(notes, vm.NoteViewModel{
			Glyph:    glyphs[idx],
			Left:     random() * 100,
			Delay:    random() * motion.maxDelay,
			Duration: motion.baseDuration + random()*motion.jitter,
		})
	}
	return notes
}

package viewer

import (
	"context"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/amaze/internal/render"
	"github.com/samdwyer/amaze/internal/rng"
)

// Action is a viewer command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionRandom
	ActionNextSeed
	ActionPrevSeed
	ActionWider
	ActionNarrower
	ActionTaller
	ActionShorter
	ActionCycleStyle
)

// KeyAction maps a key press to an action.
func KeyAction(key tcell.Key, ch rune) Action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionPanUp
	case tcell.KeyDown:
		return ActionPanDown
	case tcell.KeyLeft:
		return ActionPanLeft
	case tcell.KeyRight:
		return ActionPanRight
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return ActionQuit
		case 'k':
			return ActionPanUp
		case 'j':
			return ActionPanDown
		case 'h':
			return ActionPanLeft
		case 'l':
			return ActionPanRight
		case 'r', 'R':
			return ActionRandom
		case 'n':
			return ActionNextSeed
		case 'p':
			return ActionPrevSeed
		case '+', '=':
			return ActionWider
		case '-', '_':
			return ActionNarrower
		case ']':
			return ActionTaller
		case '[':
			return ActionShorter
		case 's', 'S':
			return ActionCycleStyle
		}
	}
	return ActionNone
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.display.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.apply(ctx, KeyAction(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		v.display.Sync()
		v.mu.Lock()
		v.clampOffsetLocked()
		v.mu.Unlock()
	case nil:
		// The screen was finalized.
		v.running = false
	}
}

// apply performs an action. Errors from regeneration are logged and the
// previous maze stays on screen.
func (v *Viewer) apply(ctx context.Context, a Action) {
	regenerate := false

	v.mu.Lock()
	switch a {
	case ActionQuit:
		v.running = false
	case ActionPanUp:
		v.offsetY--
	case ActionPanDown:
		v.offsetY++
	case ActionPanLeft:
		v.offsetX--
	case ActionPanRight:
		v.offsetX++
	case ActionRandom:
		seed, err := rng.EntropySeed()
		if err != nil {
			v.log.WithError(err).Warn("could not pick a random seed")
			break
		}
		v.seed = seed
		regenerate = true
	case ActionNextSeed:
		v.seed = stepSeed(v.seed, 1)
		regenerate = true
	case ActionPrevSeed:
		v.seed = stepSeed(v.seed, -1)
		regenerate = true
	case ActionWider:
		regenerate = v.resizeLocked(1, 0)
	case ActionNarrower:
		regenerate = v.resizeLocked(-1, 0)
	case ActionTaller:
		regenerate = v.resizeLocked(0, 1)
	case ActionShorter:
		regenerate = v.resizeLocked(0, -1)
	case ActionCycleStyle:
		v.style = nextTextStyle(v.style)
	}
	v.clampOffsetLocked()
	v.mu.Unlock()

	if regenerate {
		if err := v.regenerate(ctx); err != nil {
			v.log.WithError(err).Error("regeneration failed")
		}
	}
}

// resizeLocked changes the maze size within the limits and reports whether
// anything changed.
func (v *Viewer) resizeLocked(dw, dh int) bool {
	w, h := clampSide(v.width+dw), clampSide(v.height+dh)
	if w == v.width && h == v.height {
		return false
	}
	v.width, v.height = w, h
	return true
}

// stepSeed moves to the neighbouring seed, skipping the reserved 0.
func stepSeed(seed uint64, delta int) uint64 {
	if delta > 0 {
		seed++
	} else {
		seed--
	}
	if seed == 0 {
		return stepSeed(seed, delta)
	}
	return seed
}

func nextTextStyle(s render.Style) render.Style {
	styles := render.TextStyles()
	i := slices.Index(styles, s)
	return styles[(i+1)%len(styles)]
}

package viewport

import (
	"github.com/MikeBiancalana/datespan/internal/geom"
	"github.com/MikeBiancalana/datespan/internal/logger"
)

// Engine recomputes popover styles from measured geometry
type Engine struct {
	cfg    Config
	styles Styles
}

// NewEngine creates an engine with neutral styles
func NewEngine(cfg Config) *Engine {
	e := &Engine{cfg: cfg}
	e.Reset()
	return e
}

// Styles returns the last computed styles
func (e *Engine) Styles() Styles {
	return e.styles
}

// Reset returns to neutral styles
func (e *Engine) Reset() {
	e.styles = Styles{Anchor: e.cfg.Anchor}
}

// Recompute derives fresh styles from the current geometry. It always starts
// from neutral, so repeated calls with the same geometry agree.
func (e *Engine) Recompute(m Measurer) Styles {
	e.Reset()
	if e.cfg.Portal() || m == nil {
		return e.styles
	}

	g := m.Measure()
	natural := Placement(e.cfg, e.styles, g)

	edge := natural.Left()
	if e.cfg.Anchor == AnchorLeft {
		edge = natural.Right()
	}

	styles := Styles{
		Anchor: e.cfg.Anchor,
		Offset: ResponsiveOffset(e.cfg.Anchor, e.styles.Offset, edge, g.Window.Width, e.cfg.HorizontalMargin),
	}
	if e.cfg.AppendToBody {
		d := DetachedOffsets(e.cfg.OpenDirection, e.cfg.Anchor, g.Container, g.Window)
		styles.Detached = &d
	}
	e.styles = styles

	logger.Debug("viewport: recomputed",
		"anchor", e.cfg.Anchor.String(),
		"offset", styles.Offset,
		"detached", styles.Detached != nil)
	return e.styles
}

// Place returns the absolute popover rect for the current styles
func (e *Engine) Place(g Geometry) geom.Rect {
	return Placement(e.cfg, e.styles, g)
}

// WantsScrollLock reports whether ancestors are locked while open
func (e *Engine) WantsScrollLock() bool {
	return e.cfg.AppendToBody || e.cfg.DisableScroll
}

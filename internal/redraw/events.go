package redraw

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qgrid/internal/grid"
)

// Event is a semantic redraw instruction understood by Handler.
type Event interface {
	apply(h *Handler)
}

// Resize changes the grid shape and resets the scroll region.
type Resize struct {
	Rows    int
	Columns int
}

// Clear blanks the whole grid with the default background.
type Clear struct{}

// EolClear clears from the cursor to the end of its row.
type EolClear struct{}

// CursorGoto moves the write cursor.
type CursorGoto struct {
	Row int
	Col int
}

// HighlightDefine registers a style under an id for later HighlightSet.
type HighlightDefine struct {
	ID    int
	Style grid.Style
}

// HighlightSet selects the style used by subsequent Put events.
// ID 0 is the default style.
type HighlightSet struct {
	ID int
}

// DefaultColors sets the colors used for unset style colors and clears.
type DefaultColors struct {
	Fg      tcell.Color
	Bg      tcell.Color
	Special tcell.Color
}

// Put writes text at the cursor and advances it.
type Put struct {
	Text string
}

// SetScrollRegion restricts Scroll to [Top,Bottom] x [Left,Right], inclusive.
type SetScrollRegion struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Scroll shifts the scroll region by Count rows. Positive moves content up.
type Scroll struct {
	Count int
}

// ClearRegion blanks [Row0,Row1) x [Col0,Col1) with the default background.
type ClearRegion struct {
	Row0, Col0 int
	Row1, Col1 int
}

func (e Resize) apply(h *Handler) { h.resize(e.Rows, e.Columns) }
func (Clear) apply(h *Handler) { h.grid.ClearAll(h.defaults.Bg) }
func (EolClear) apply(h *Handler) { h.grid.ClearRow(h.cursor.Row, h.cursor.Col) }
func (e CursorGoto) apply(h *Handler) { h.cursor = Cursor{Row: e.Row, Col: e.Col} }
func (e HighlightDefine) apply(h *Handler) { h.highlights[e.ID] = e.Style }
func (e HighlightSet) apply(h *Handler) { h.setHighlight(e.ID) }
func (e DefaultColors) apply(h *Handler) { h.setDefaults(e) }
func (e Put) apply(h *Handler) { h.put(e.Text) }
func (e SetScrollRegion) apply(h *Handler) { h.region = scrollRegion(e) }
func (e Scroll) apply(h *Handler) { h.scroll(e.Count) }
func (e ClearRegion) apply(h *Handler) {
	h.grid.ClearRegion(e.Row0, e.Col0, e.Row1, e.Col1, h.defaults.Bg)
}

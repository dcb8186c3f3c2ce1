package redraw

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qgrid/internal/grid"
	"github.com/kobzarvs/qgrid/internal/logger"
)

type Cursor struct {
	Row int
	Col int
}

// scrollRegion is inclusive on both ends, like the events that set it.
type scrollRegion struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Handler translates redraw events into Grid mutations. It owns the state the
// grid does not: cursor, highlight table, default colors and scroll region.
// Like Grid it expects a single caller at a time.
type Handler struct {
	grid       *grid.Grid
	cursor     Cursor
	highlights map[int]grid.Style
	current    grid.Style
	defaults   DefaultColors
	region     scrollRegion
}

func NewHandler(g *grid.Grid) *Handler {
	h := &Handler{
		grid:       g,
		highlights: make(map[int]grid.Style),
	}
	h.resetRegion()
	return h
}

func (h *Handler) Grid() *grid.Grid { return h.grid }

func (h *Handler) Cursor() Cursor { return h.cursor }

// Apply handles events in order.
func (h *Handler) Apply(events ...Event) {
	for _, ev := range events {
		if ev == nil {
			continue
		}
		ev.apply(h)
	}
}

func (h *Handler) resetRegion() {
	h.region = scrollRegion{
		Top:    0,
		Bottom: h.grid.Rows() - 1,
		Left:   0,
		Right:  h.grid.Columns() - 1,
	}
}

func (h *Handler) resize(rows, columns int) {
	if rows <= 0 || columns <= 0 {
		logger.Debug("ignoring resize", "rows", rows, "columns", columns)
		return
	}
	h.grid.Resize(rows, columns)
	h.resetRegion()
	h.cursor.Row = min(h.cursor.Row, rows-1)
	h.cursor.Col = min(h.cursor.Col, columns-1)
}

func (h *Handler) setHighlight(id int) {
	if id == 0 {
		h.current = grid.Style{}
		return
	}
	st, ok := h.highlights[id]
	if !ok {
		logger.Debug("unknown highlight id", "id", id)
		st = grid.Style{}
	}
	h.current = st
}

func (h *Handler) setDefaults(d DefaultColors) {
	h.defaults = d
}

// resolve fills unset colors of the current style from the defaults.
func (h *Handler) resolve() grid.Style {
	st := h.current
	if st.Fg == tcell.ColorDefault {
		st.Fg = h.defaults.Fg
	}
	if st.Bg == tcell.ColorDefault {
		st.Bg = h.defaults.Bg
	}
	if st.Special == tcell.ColorDefault {
		st.Special = h.defaults.Special
	}
	return st
}

func (h *Handler) put(text string) {
	n := h.grid.Put(text, h.cursor.Row, h.cursor.Col, h.resolve())
	h.cursor.Col += n
}

func (h *Handler) scroll(count int) {
	r := h.region
	h.grid.ScrollRegion(r.Top, r.Bottom+1, r.Left, r.Right+1, count)
}

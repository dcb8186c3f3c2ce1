package grid

import "github.com/gdamore/tcell/v2"

// Attr is a set of paint flags carried by a cell.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrItalic
	AttrUnderline
	AttrUndercurl
	AttrReverse
	AttrStrikethrough
)

func (a Attr) Has(flag Attr) bool { return a&flag != 0 }

// Style is the paint state of a cell. tcell.ColorDefault means unset.
type Style struct {
	Fg      tcell.Color
	Bg      tcell.Color
	Special tcell.Color
	Attrs   Attr
}

// TcellStyle converts the style for a tcell screen. Special is used as the
// underline color when an underline flag is set.
func (s Style) TcellStyle() tcell.Style {
	st := tcell.StyleDefault.
		Foreground(s.Fg).
		Background(s.Bg).
		Bold(s.Attrs.Has(AttrBold)).
		Italic(s.Attrs.Has(AttrItalic)).
		Reverse(s.Attrs.Has(AttrReverse)).
		StrikeThrough(s.Attrs.Has(AttrStrikethrough))
	switch {
	case s.Attrs.Has(AttrUndercurl):
		st = st.Underline(tcell.UnderlineStyleCurly, s.Special)
	case s.Attrs.Has(AttrUnderline):
		st = st.Underline(tcell.UnderlineStyleSolid, s.Special)
	}
	return st
}

// Cell is one grid position. The zero value is the default cell: no glyph,
// unset colors, no flags.
type Cell struct {
	Rune  rune
	Style Style

	wide    bool
	invalid bool
}

// DefaultCell returns the empty cell.
func DefaultCell() Cell { return Cell{} }

// NewCell builds a cell for r; wideness comes from RuneWidth.
func NewCell(r rune, st Style) Cell {
	return Cell{Rune: r, Style: st, wide: RuneWidth(r) == 2}
}

// Blank returns an empty cell painted with bg.
func Blank(bg tcell.Color) Cell {
	return Cell{Style: Style{Bg: bg}}
}

// InvalidCell is returned for coordinates outside the grid.
func InvalidCell() Cell { return Cell{invalid: true} }

func (c Cell) Valid() bool { return !c.invalid }

// Wide reports whether the glyph occupies two columns.
func (c Cell) Wide() bool { return c.wide }

func (c Cell) Empty() bool { return c.Rune == 0 }

func (c Cell) String() string {
	if c.Rune == 0 {
		return " "
	}
	return string(c.Rune)
}

// continuation is the placeholder written to the column after a wide glyph.
func continuation(head Cell) Cell {
	return Cell{Style: Style{Bg: head.Style.Bg}}
}

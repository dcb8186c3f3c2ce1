package redraw

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qgrid/internal/config"
	"github.com/kobzarvs/qgrid/internal/grid"
)

// ScriptEvent is one [[event]] table of a redraw script. Which fields are
// read depends on Kind.
type ScriptEvent struct {
	Kind string `toml:"kind"`

	Row     int    `toml:"row"`
	Col     int    `toml:"col"`
	Rows    int    `toml:"rows"`
	Columns int    `toml:"columns"`
	Text    string `toml:"text"`
	ID      int    `toml:"id"`
	Count   int    `toml:"count"`

	Top    int `toml:"top"`
	Bottom int `toml:"bottom"`
	Left   int `toml:"left"`
	Right  int `toml:"right"`
	Row1   int `toml:"row1"`
	Col1   int `toml:"col1"`

	Fg            string `toml:"fg"`
	Bg            string `toml:"bg"`
	Sp            string `toml:"sp"`
	Bold          bool   `toml:"bold"`
	Italic        bool   `toml:"italic"`
	Underline     bool   `toml:"underline"`
	Undercurl     bool   `toml:"undercurl"`
	Reverse       bool   `toml:"reverse"`
	Strikethrough bool   `toml:"strikethrough"`
}

// Script is a recorded sequence of redraw events, used to replay a surface
// offline.
type Script struct {
	Rows    int           `toml:"rows"`
	Columns int           `toml:"columns"`
	Event   []ScriptEvent `toml:"event"`
}

func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	s, err := ParseScript(data)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func ParseScript(data []byte) (Script, error) {
	var s Script
	if _, err := toml.Decode(string(data), &s); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Events converts the script into typed events. An unknown kind is an error
// naming the offending entry.
func (s Script) Events() ([]Event, error) {
	out := make([]Event, 0, len(s.Event)+1)
	if s.Rows > 0 && s.Columns > 0 {
		out = append(out, Resize{Rows: s.Rows, Columns: s.Columns})
	}
	for i, se := range s.Event {
		ev, err := se.event()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out = append(out, ev)
	}
	return out, nil
}

func (se ScriptEvent) style() grid.Style {
	st := grid.Style{
		Fg:      config.ParseColor(se.Fg, tcell.ColorDefault),
		Bg:      config.ParseColor(se.Bg, tcell.ColorDefault),
		Special: config.ParseColor(se.Sp, tcell.ColorDefault),
	}
	for _, f := range []struct {
		on   bool
		attr grid.Attr
	}{
		{se.Bold, grid.AttrBold},
		{se.Italic, grid.AttrItalic},
		{se.Underline, grid.AttrUnderline},
		{se.Undercurl, grid.AttrUndercurl},
		{se.Reverse, grid.AttrReverse},
		{se.Strikethrough, grid.AttrStrikethrough},
	} {
		if f.on {
			st.Attrs |= f.attr
		}
	}
	return st
}

func (se ScriptEvent) event() (Event, error) {
	switch se.Kind {
	case "resize":
		return Resize{Rows: se.Rows, Columns: se.Columns}, nil
	case "clear":
		return Clear{}, nil
	case "eol_clear":
		return EolClear{}, nil
	case "cursor_goto":
		return CursorGoto{Row: se.Row, Col: se.Col}, nil
	case "hl_define":
		return HighlightDefine{ID: se.ID, Style: se.style()}, nil
	case "hl_set":
		return HighlightSet{ID: se.ID}, nil
	case "default_colors":
		st := se.style()
		return DefaultColors{Fg: st.Fg, Bg: st.Bg, Special: st.Special}, nil
	case "put":
		return Put{Text: se.Text}, nil
	case "set_scroll_region":
		return SetScrollRegion{Top: se.Top, Bottom: se.Bottom, Left: se.Left, Right: se.Right}, nil
	case "scroll":
		return Scroll{Count: se.Count}, nil
	case "clear_region":
		return ClearRegion{Row0: se.Row, Col0: se.Col, Row1: se.Row1, Col1: se.Col1}, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", se.Kind)
	}
}

// Replay builds a grid from the script.
func (s Script) Replay() (*grid.Grid, error) {
	events, err := s.Events()
	if err != nil {
		return nil, err
	}
	h := NewHandler(grid.New(0, 0))
	h.Apply(events...)
	return h.Grid(), nil
}

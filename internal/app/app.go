package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kobzarvs/qgrid/internal/config"
	"github.com/kobzarvs/qgrid/internal/grid"
	"github.com/kobzarvs/qgrid/internal/logger"
	"github.com/kobzarvs/qgrid/internal/redraw"
)

var errUsage = errors.New("usage: qgrid FILE | qgrid --script SCRIPT.toml")

// App is the top-level runtime for qgrid. It materializes a grid from a
// text file or a redraw script and dumps it as text.
type App struct {
	args []string
	out  io.Writer
}

func New(args []string) *App {
	return &App{args: args, out: os.Stdout}
}

func (a *App) Run() error {
	var scriptPath, textPath string
	switch {
	case len(a.args) == 2 && a.args[0] == "--script":
		scriptPath = a.args[1]
	case len(a.args) == 1 && a.args[0] != "--script":
		textPath = a.args[0]
	default:
		return errUsage
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Log.Debug); err != nil {
		return err
	}
	defer logger.Close()

	var g *grid.Grid
	if scriptPath != "" {
		g, err = replay(cfg, scriptPath)
	} else {
		g, err = grid.FromFile(textPath)
	}
	if err != nil {
		return err
	}
	logger.Info("grid built", "rows", g.Rows(), "columns", g.Columns())

	_, err = fmt.Fprintln(a.out, g.String())
	return err
}

// replay runs a redraw script on a grid sized by the script, or by the
// config when the script leaves the size out, painted with the theme colors.
func replay(cfg config.Config, path string) (*grid.Grid, error) {
	s, err := redraw.LoadScript(path)
	if err != nil {
		return nil, err
	}
	events, err := s.Events()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rows, cols := cfg.Grid.Rows, cfg.Grid.Columns
	if s.Rows > 0 && s.Columns > 0 {
		rows, cols = s.Rows, s.Columns
	}
	fg, bg, sp := cfg.Theme.Colors()
	h := redraw.NewHandler(grid.New(rows, cols))
	h.Apply(redraw.DefaultColors{Fg: fg, Bg: bg, Special: sp}, redraw.Clear{})
	h.Apply(events...)
	logger.Debug("script replayed", "path", path, "events", len(events))
	return h.Grid(), nil
}

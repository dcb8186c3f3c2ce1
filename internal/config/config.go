package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

type GridOptions struct {
	Rows    int `toml:"rows"`
	Columns int `toml:"columns"`
}

type Theme struct {
	Theme      string `toml:"theme"`
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
	Special    string `toml:"special"`
}

type LogOptions struct {
	Debug bool `toml:"debug"`
}

type Config struct {
	Grid  GridOptions `toml:"grid"`
	Theme Theme       `toml:"theme"`
	Log   LogOptions  `toml:"log"`
}

func Default() Config {
	return Config{
		Grid: GridOptions{
			Rows:    24,
			Columns: 80,
		},
		Theme: Theme{
			Foreground: "#B3B1AD",
			Background: "#0A0E14",
			Special:    "#FF3333",
		},
	}
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.Grid.Rows > 0 {
		cfg.Grid.Rows = userCfg.Grid.Rows
	}
	if userCfg.Grid.Columns > 0 {
		cfg.Grid.Columns = userCfg.Grid.Columns
	}
	if userCfg.Log.Debug {
		cfg.Log.Debug = true
	}
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			return cfg, err
		}
		mergeTheme(&cfg.Theme, theme)
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)

	return cfg, nil
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.Special != "" {
		dst.Special = src.Special
	}
}

// Colors resolves the theme into tcell colors; unparsable entries are unset.
func (t Theme) Colors() (fg, bg, sp tcell.Color) {
	return ParseColor(t.Foreground, tcell.ColorDefault),
		ParseColor(t.Background, tcell.ColorDefault),
		ParseColor(t.Special, tcell.ColorDefault)
}

// ParseColor accepts "#rrggbb", a color name known to tcell, or "default".
func ParseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err == nil && t != (Theme{}) {
		return t, nil
	}
	var wrap struct {
		Theme Theme `toml:"theme"`
	}
	if _, err := toml.Decode(string(data), &wrap); err != nil {
		return Theme{}, err
	}
	return wrap.Theme, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("QGRID_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "qgrid"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "qgrid"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

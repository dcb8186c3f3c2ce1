package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// FromLines builds a grid with one row per line, as wide as the widest line.
func FromLines(lines []string) *Grid {
	trimmed := make([]string, len(lines))
	columns := 0
	for i, line := range lines {
		trimmed[i] = strings.TrimRight(line, "\r\n")
		columns = max(columns, StringWidth(trimmed[i]))
	}
	g := New(len(trimmed), columns)
	for row, line := range trimmed {
		g.Put(line, row, 0, Style{})
	}
	return g
}

// FromReader reads line-oriented text into a grid.
func FromReader(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromLines(lines), nil
}

// FromFile builds a grid from the file at path, one row per line.
func FromFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return g, nil
}

// Lines renders every row as plain text. Continuation cells are skipped,
// empty cells become spaces and trailing spaces are trimmed.
func (g *Grid) Lines() []string {
	out := make([]string, 0, len(g.cells))
	var b strings.Builder
	for _, line := range g.cells {
		b.Reset()
		for j := 0; j < len(line); j++ {
			b.WriteString(line[j].String())
			if line[j].wide {
				j++
			}
		}
		out = append(out, strings.TrimRight(b.String(), " "))
	}
	return out
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

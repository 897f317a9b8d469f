package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	initialLineBuf = 64 * 1024
	// maxLineLen caps a single row; wider rows fail with bufio.ErrTooLong.
	maxLineLen = math.MaxInt32
)

// Parse reads a grid with one row per line. opts.Active marks an active cell,
// opts.Inactive an empty one. Carriage returns and trailing blank lines are
// ignored; a blank line between rows makes the grid non-rectangular.
//
// Errors: ErrSameRunes, ErrEmptyGrid, ErrNonRectangular, ErrBadCell (wrapped
// with line and column), or the reader's own error.
func Parse(r io.Reader, opts GridOptions) (*Grid, error) {
	opts, err := resolveRunes(opts)
	if err != nil {
		return nil, err
	}

	var rows [][]bool
	pendingBlank := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBuf), maxLineLen)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			pendingBlank++
			continue
		}
		if pendingBlank > 0 && len(rows) > 0 {
			return nil, fmt.Errorf("%w: blank line before line %d", ErrNonRectangular, line)
		}
		pendingBlank = 0

		row := make([]bool, 0, len(text))
		col := 0
		for _, c := range text {
			col++
			switch c {
			case opts.Active:
				row = append(row, true)
			case opts.Inactive:
				row = append(row, false)
			default:
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadCell, c, line, col)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, line, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}

	return NewGrid(rows, opts)
}

// ParseString is Parse over a string.
func ParseString(s string, opts GridOptions) (*Grid, error) {
	return Parse(strings.NewReader(s), opts)
}

// String renders the grid with one line per row, each terminated by '\n'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[g.index(x, y)] {
				sb.WriteRune(g.active)
			} else {
				sb.WriteRune(g.inactive)
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

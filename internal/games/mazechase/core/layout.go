package core

import (
	"fmt"
	"strings"
)

// Layout characters understood by ParseLayout.
const (
	LayoutWall    = '#'
	LayoutCommon  = '.'
	LayoutSpecial = 'o'
	LayoutEmpty   = '-'
	LayoutSeeker  = 'S'
	LayoutPursuer = 'P'
)

// ParseLayout builds a maze from an ASCII picture, one string per row.
//
//	'#' wall
//	'.' open cell holding a common collectible
//	'o' open cell holding a special collectible
//	'-' or ' ' open empty cell
//	'S' seeker spawn (open, empty)
//	'P' pursuer spawn (open, empty), numbered in reading order
//
// The grid is taken as drawn: borders are not added and collectibles are not
// reseeded. The sanctuary defaults to DefaultSanctuary for the layout size.
func ParseLayout(lines []string) (*Maze, error) {
	if len(lines) == 0 {
		return nil, ValidationError{Code: "EMPTY_LAYOUT", Message: "layout has no rows"}
	}
	rows, cols := len(lines), len(lines[0])
	if cols == 0 {
		return nil, ValidationError{Code: "EMPTY_LAYOUT", Message: "layout has no columns"}
	}

	m := &Maze{
		Grid:      NewGrid(rows, cols),
		Common:    NewLayer(rows, cols),
		Special:   NewLayer(rows, cols),
		Sanctuary: DefaultSanctuary(rows, cols),
	}
	seekers := 0

	for r, line := range lines {
		if len(line) != cols {
			return nil, ValidationError{
				Code:    "RAGGED_LAYOUT",
				Message: fmt.Sprintf("row %d has %d columns, want %d", r, len(line), cols),
			}
		}
		for c, ch := range line {
			p := At(r, c)
			switch ch {
			case LayoutWall:
				m.Grid.Set(p, Wall)
			case LayoutCommon:
				m.Common.Set(p, true)
			case LayoutSpecial:
				m.Special.Set(p, true)
			case LayoutEmpty, ' ':
			case LayoutSeeker:
				m.SeekerSpawn = p
				seekers++
			case LayoutPursuer:
				m.PursuerSpawns = append(m.PursuerSpawns, p)
			default:
				return nil, ValidationError{
					Code:    "UNKNOWN_CHAR",
					Message: fmt.Sprintf("unknown layout character %q at %s", ch, p),
				}
			}
		}
	}

	if seekers != 1 {
		return nil, ValidationError{
			Code:    "SEEKER_SPAWN",
			Message: fmt.Sprintf("layout needs exactly one seeker spawn, found %d", seekers),
		}
	}

	return m, nil
}

// MustParseLayout is like ParseLayout but panics on error.
func MustParseLayout(lines ...string) *Maze {
	m, err := ParseLayout(lines)
	if err != nil {
		panic(err)
	}
	return m
}

// FormatLayout renders a maze back into ParseLayout's notation.
func FormatLayout(m *Maze) []string {
	spawnChar := make(map[CellPos]rune, 1+len(m.PursuerSpawns))
	for _, p := range m.PursuerSpawns {
		spawnChar[p] = LayoutPursuer
	}
	spawnChar[m.SeekerSpawn] = LayoutSeeker

	out := make([]string, m.Grid.Rows)
	for r := 0; r < m.Grid.Rows; r++ {
		var sb strings.Builder
		for c := 0; c < m.Grid.Cols; c++ {
			p := At(r, c)
			switch {
			case m.Grid.At(p) == Wall:
				sb.WriteRune(LayoutWall)
			case m.Special.Get(p):
				sb.WriteRune(LayoutSpecial)
			case m.Common.Get(p):
				sb.WriteRune(LayoutCommon)
			case spawnChar[p] != 0:
				sb.WriteRune(spawnChar[p])
			default:
				sb.WriteRune(LayoutEmpty)
			}
		}
		out[r] = sb.String()
	}
	return out
}

package mines

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	GlyphHidden   = "#"
	GlyphFlagged  = "F"
	GlyphExploded = "*"
	GlyphZero     = "."
)

func (c Cell) Glyph() string {
	switch {
	case c.Status == Flagged:
		return GlyphFlagged
	case c.Status == Hidden:
		return GlyphHidden
	case c.Kind == Mine:
		return GlyphExploded
	case c.AdjacentMines == 0:
		return GlyphZero
	default:
		return strconv.Itoa(c.AdjacentMines)
	}
}

type Grid []Cell

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, g[y*width+x].Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

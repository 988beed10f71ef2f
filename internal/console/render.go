package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/sweeper/internal/session"
)

// Render writes the mine counter, status glyph, elapsed time and the grid.
func Render(w io.Writer, snap session.Snapshot, elapsed int64) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%03d %s %03d\n", snap.MinesLeft, snap.Status.Glyph(), elapsed)
	b.WriteString(snap.String())
	_, err := io.WriteString(w, b.String())
	return err
}

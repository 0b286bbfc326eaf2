package boardengine

import (
	"fmt"
	"strings"
)

// renderLook builds the textual snapshot described in spec §4.2. It
// must only be called from the actor goroutine.
func (b *Board) renderLook(player string) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d\n", b.height, b.width)
	for i := range b.cells {
		cell := &b.cells[i]
		switch {
		case cell.Absent():
			sb.WriteString("none\n")
		case !cell.FaceUp:
			sb.WriteString("down\n")
		case cell.Controller == player:
			fmt.Fprintf(&sb, "my %s\n", cell.Card)
		default:
			fmt.Fprintf(&sb, "up %s\n", cell.Card)
		}
	}
	return sb.String(), nil
}

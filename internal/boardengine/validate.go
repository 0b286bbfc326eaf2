package boardengine

import (
	"fmt"
	"regexp"
)

var playerIDPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func validatePlayer(player string) error {
	if !playerIDPattern.MatchString(player) {
		return newError(InvalidPlayer, fmt.Sprintf("invalid player id: %q", player))
	}
	return nil
}

func (b *Board) validateBounds(row, col int) error {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return newError(OutOfBounds, fmt.Sprintf("row=%d col=%d out of bounds for %dx%d board", row, col, b.height, b.width))
	}
	return nil
}

func (b *Board) index(row, col int) int {
	return row*b.width + col
}

package boardengine

import "memoryscramble/internal/storage"

// LoadBoard reads a board file (spec §4.7) and constructs a running
// board from it.
func LoadBoard(path string) (*Board, error) {
	bf, err := storage.LoadBoardFile(path)
	if err != nil {
		return nil, newError(ParseErrorKind, err.Error())
	}
	return NewBoard(bf.Height, bf.Width, bf.Cards), nil
}

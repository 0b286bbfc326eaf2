// Package boardengine implements the Memory-Scramble concurrent board: a
// single mutable grid of cards mediating contention between many
// players.
//
// All state lives behind one goroutine (the "actor"). Every operation —
// Flip, Look, Watch, and the per-value commit steps Map uses — is
// submitted to that goroutine as a closure over the ops channel and
// runs to completion before the next one starts. This gives the whole
// package its mutual exclusion for free: there is no board-wide mutex
// anywhere in this file. A first-card acquisition that cannot proceed
// immediately does not block the actor goroutine — it parks the
// caller's request on the target cell's waiter queue (see waiter.go)
// and the actor moves on; the calling goroutine blocks on its own
// private response channel until a later release grants it the cell
// (or fails it, if the card was removed).
package boardengine

import (
	"memoryscramble/internal/model"
)

// Board is the shared, observable Memory-Scramble grid.
type Board struct {
	height, width int
	cells         []model.Cell
	players       map[string]*model.PlayerState
	version       int
	watchers      []pendingWatch

	ops    chan func()
	done   chan struct{}
	region *regionTable
}

// NewBoard constructs a board from a row-major slice of card labels;
// len(cards) must equal height*width. All cells start face-down,
// unowned. The returned board owns a background goroutine; call Close
// when it is no longer needed.
func NewBoard(height, width int, cards []string) *Board {
	cells := make([]model.Cell, height*width)
	for i, c := range cards {
		cells[i] = model.Cell{Card: c}
	}
	b := &Board{
		height:  height,
		width:   width,
		cells:   cells,
		players: make(map[string]*model.PlayerState),
		ops:     make(chan func()),
		done:    make(chan struct{}),
		region:  newRegionTable(),
	}
	go b.run()
	return b
}

// Dimensions reports the board's height and width.
func (b *Board) Dimensions() (int, int) { return b.height, b.width }

func (b *Board) run() {
	for {
		select {
		case f := <-b.ops:
			f()
		case <-b.done:
			return
		}
	}
}

// Close stops the board's actor goroutine. Any operation submitted
// after Close returns will block forever; callers must not use the
// board once it is closed.
func (b *Board) Close() {
	close(b.done)
}

// submit runs f on the actor goroutine and waits for it to finish.
func (b *Board) submit(f func()) {
	done := make(chan struct{})
	b.ops <- func() {
		f()
		close(done)
	}
	<-done
}

func (b *Board) playerState(player string) *model.PlayerState {
	ps, ok := b.players[player]
	if !ok {
		ps = model.NewPlayerState()
		b.players[player] = ps
	}
	return ps
}

func (b *Board) bumpVersion() {
	b.version++
	b.notifyWatchers()
}

// Flip implements the flip operation (spec §4.3/§4.4): first-card
// attempts may suspend the caller on contention; second-card attempts
// never do.
func (b *Board) Flip(player string, row, col int) (string, error) {
	if err := validatePlayer(player); err != nil {
		return "", err
	}
	if err := b.validateBounds(row, col); err != nil {
		return "", err
	}
	resp := make(chan model.FlipResult, 1)
	req := &model.FlipRequest{Player: player, Row: row, Col: col, Resp: resp}
	b.ops <- func() { b.doFlip(req) }
	res := <-resp
	return res.View, res.Err
}

// Look returns a textual snapshot of the board from player's point of
// view. It has no side effects.
func (b *Board) Look(player string) (string, error) {
	if err := validatePlayer(player); err != nil {
		return "", err
	}
	var view string
	b.submit(func() {
		view, _ = b.renderLook(player)
	})
	return view, nil
}

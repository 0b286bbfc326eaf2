package boardengine

import (
	"fmt"

	"memoryscramble/internal/model"
)

// acquireOrQueue implements the first-card acquisition protocol (spec
// §4.4) for a single attempt: acquire immediately, fail if the card is
// gone, or park on the cell's FIFO waiter queue on contention.
func (b *Board) acquireOrQueue(idx int, req *model.FlipRequest) {
	cell := &b.cells[idx]
	if cell.Absent() {
		req.Resp <- model.FlipResult{Err: newError(NoCard, fmt.Sprintf("no card at %d,%d", req.Row, req.Col))}
		return
	}
	if cell.Controller == "" && len(cell.Waiters) == 0 {
		b.grantFirstCard(idx, req)
		return
	}
	cell.Waiters = append(cell.Waiters, req)
}

// grantFirstCard hands cell idx to req.Player unconditionally. Callers
// must have already established that the cell is available.
func (b *Board) grantFirstCard(idx int, req *model.FlipRequest) {
	cell := &b.cells[idx]
	cell.FaceUp = true
	cell.Controller = req.Player
	ps := b.playerState(req.Player)
	ps.Controlled = append(ps.Controlled, idx)
	b.bumpVersion()
	view, _ := b.renderLook(req.Player)
	req.Resp <- model.FlipResult{View: view}
}

// releaseAndSignal is called whenever cell idx's controller is
// released (rules 2-A, 2-B, 2-E, or turn-start cleanup's rule 3-A). It
// wakes exactly the head of the FIFO waiter queue — a newly arrived
// contender can never jump ahead of an already-queued one. If the
// card was removed while waiters queued, every waiter fails with
// NoCard at once, since a removed card never comes back.
func (b *Board) releaseAndSignal(idx int) {
	cell := &b.cells[idx]
	if len(cell.Waiters) == 0 {
		return
	}
	if cell.Absent() {
		for _, w := range cell.Waiters {
			w.Resp <- model.FlipResult{Err: newError(NoCard, fmt.Sprintf("no card at %d,%d", w.Row, w.Col))}
		}
		cell.Waiters = nil
		return
	}
	head := cell.Waiters[0]
	cell.Waiters = cell.Waiters[1:]
	// The head already won its place in line; grant directly rather
	// than re-running acquireOrQueue, whose "waiters empty" check is
	// for first arrivals and would otherwise push the head back onto
	// the tail of its own queue.
	b.grantFirstCard(idx, head)
}

// releaseControlled drops player ps's control of cell idx without
// touching its face or card; the cell keeps whatever card/face state
// it had, only the controller is cleared.
func (b *Board) releaseControlled(idx int, ps *model.PlayerState) {
	b.cells[idx].Controller = ""
	ps.Controlled = removeIndex(ps.Controlled, idx)
}

func removeIndex(s []int, idx int) []int {
	out := s[:0]
	for _, v := range s {
		if v != idx {
			out = append(out, v)
		}
	}
	return out
}

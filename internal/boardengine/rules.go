package boardengine

import (
	"fmt"

	"memoryscramble/internal/model"
)

// doFlip runs the full flip decision tree (spec §4.3) for req. It must
// only be called from the actor goroutine. It either resolves
// req.Resp before returning, or parks req on a cell's waiter queue to
// be resolved later by releaseAndSignal.
func (b *Board) doFlip(req *model.FlipRequest) {
	idx := b.index(req.Row, req.Col)
	ps := b.playerState(req.Player)

	// Turn-start cleanup runs at the top of every first-card attempt —
	// i.e. whenever the player isn't mid-turn holding exactly one card.
	if len(ps.Controlled) != 1 {
		b.cleanupTurnStart(ps)
	}

	switch len(ps.Controlled) {
	case 1:
		b.secondCard(idx, req, ps)
	default:
		b.firstCard(idx, req)
	}
}

// cleanupTurnStart implements rules 3-A and 3-B.
func (b *Board) cleanupTurnStart(ps *model.PlayerState) {
	if ps.HasPending {
		i, j := ps.PendingMatch[0], ps.PendingMatch[1]
		b.removeCard(i)
		b.removeCard(j)
		ps.HasPending = false
		ps.Controlled = nil
		b.bumpVersion()
		b.releaseAndSignal(i)
		b.releaseAndSignal(j)
		return
	}
	if len(ps.LastRevealed) == 0 {
		return
	}
	changed := false
	for idx := range ps.LastRevealed {
		cell := &b.cells[idx]
		if !cell.Absent() && cell.FaceUp && cell.Controller == "" {
			cell.FaceUp = false
			changed = true
		}
	}
	ps.LastRevealed = make(map[int]bool)
	if changed {
		b.bumpVersion()
	}
}

func (b *Board) removeCard(idx int) {
	cell := &b.cells[idx]
	cell.Card = ""
	cell.FaceUp = false
	cell.Controller = ""
}

// firstCard implements rule 1-A plus the acquisition protocol.
func (b *Board) firstCard(idx int, req *model.FlipRequest) {
	b.acquireOrQueue(idx, req)
}

// secondCard implements rules 2-A through 2-E. ps.Controlled has
// exactly one entry on entry.
func (b *Board) secondCard(idx int, req *model.FlipRequest, ps *model.PlayerState) {
	first := ps.Controlled[0]
	target := &b.cells[idx]
	firstCell := &b.cells[first]

	if target.Absent() {
		// 2-A
		b.releaseControlled(first, ps)
		ps.LastRevealed[first] = true
		b.bumpVersion()
		b.releaseAndSignal(first)
		req.Resp <- model.FlipResult{Err: newError(NoCard, fmt.Sprintf("no card at %d,%d", req.Row, req.Col))}
		return
	}

	if target.FaceUp && target.Controller != "" {
		// 2-B: covers the player re-flipping their own first card too.
		b.releaseControlled(first, ps)
		ps.LastRevealed[first] = true
		b.bumpVersion()
		b.releaseAndSignal(first)
		req.Resp <- model.FlipResult{Err: newError(SecondControlled, "second card already controlled")}
		return
	}

	if !target.FaceUp {
		// 2-C
		target.FaceUp = true
	}

	if target.Card == firstCell.Card {
		// 2-D
		target.Controller = req.Player
		ps.Controlled = append(ps.Controlled, idx)
		ps.HasPending = true
		ps.PendingMatch = [2]int{first, idx}
		b.bumpVersion()
		view, _ := b.renderLook(req.Player)
		req.Resp <- model.FlipResult{View: view}
		return
	}

	// 2-E: mismatch, not an error.
	b.releaseControlled(first, ps)
	ps.LastRevealed[first] = true
	ps.LastRevealed[idx] = true
	b.bumpVersion()
	b.releaseAndSignal(first)
	view, _ := b.renderLook(req.Player)
	req.Resp <- model.FlipResult{View: view}
}

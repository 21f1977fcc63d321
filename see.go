package chess

// seeValues holds the classical piece values Static Exchange Evaluation
// swaps against. They are deliberately simple (not tuned) since SEE is used
// for move ordering and pruning decisions, not as a positional evaluation.
var seeValues = [7]int{
	Pawn:        100,
	Knight:      300,
	Bishop:      300,
	Rook:        500,
	Queen:       900,
	King:        99999,
	NoPieceType: 0,
}

func seeValue(t PieceType) int { return seeValues[t] }

// SEE performs Static Exchange Evaluation of mov: the net material gain, in
// centipawn-ish seeValues units, after every profitable recapture on the
// destination square has been played out by both sides. alpha/beta bound the
// search the same way they would a negamax call, and the result is clamped
// fail-hard to that window; SeeAtLeast is the cheaper common case of asking
// whether the result clears a single threshold.
//
// The swap sequence is recomputed from the board's actual occupancy at each
// step (rather than incrementally maintaining a "remaining attackers"
// bitboard with explicit xray bookkeeping): removing an attacker's square
// from a working occupancy copy and re-querying slider attacks on the target
// square naturally reveals any piece it was blocking, at the cost of a few
// redundant bitboard ANDs nobody will notice outside a hot search loop.
func (pos *Position) SEE(mov Move, alpha, beta int) int {
	dst := mov.Dst()
	color := pos.sideToMove
	movingType := pos.PieceAt(mov.Src()).Type()
	ourVictim := pos.PieceAt(dst).Type()
	occWorking := pos.Occupied()

	if mov.IsEnPassant() {
		capSq := NewSquare(dst.File(), mov.Src().Rank())
		ourVictim = Pawn
		occWorking &^= capSq.Bb()
	}

	theirVictim := movingType
	if mov.IsPromotion() {
		theirVictim = mov.PromoPiece()
	}

	// Early-out: if even losing the moving piece outright still clears beta,
	// skip building the swap chain -- unless the opponent has a pawn that can
	// recapture on the back rank, where the recapture's own promotion value
	// could push the final score back up past this shortcut.
	if seeValue(ourVictim)-seeValue(movingType) >= beta {
		recapturesWithPromo := dst.IsBackRank() && PawnAttacks(color, dst)&pos.ColorPieceBB(color.Other(), Pawn) != 0
		if !recapturesWithPromo {
			return beta
		}
	}

	eval := seeValue(ourVictim)
	switch {
	case mov.IsPromotion():
		eval += seeValue(mov.PromoPiece()) - seeValue(Pawn)
	case mov.IsCastle():
		return min(max(0, alpha), beta)
	}
	occWorking &^= mov.Src().Bb()

	for {
		color = color.Other()
		alpha, beta = -beta, -alpha
		eval = -eval
		ourVictim, theirVictim = theirVictim, ourVictim

		if eval >= beta {
			if color == pos.sideToMove {
				return beta
			}
			return -beta
		}
		if eval > alpha {
			alpha = eval
		}

		piece, sq, ok := pos.cheapestAttacker(color, dst, occWorking)
		if !ok {
			if color == pos.sideToMove {
				return max(eval, alpha)
			}
			return -max(eval, alpha)
		}
		occWorking &^= sq.Bb()

		captureVal := seeValue(ourVictim)
		nextPiece := piece
		if piece == Pawn && dst.IsBackRank() {
			captureVal += seeValue(Queen) - seeValue(Pawn)
			nextPiece = Queen
		}
		eval += captureVal
		theirVictim = nextPiece
	}
}

// SeeAtLeast reports whether SEE(mov) would be at least threshold, computed
// with a single-point [threshold-1, threshold] window so the fail-hard
// result can be compared directly against threshold.
func (pos *Position) SeeAtLeast(mov Move, threshold int) bool {
	return pos.SEE(mov, threshold-1, threshold) >= threshold
}

// cheapestAttacker finds the least valuable piece of color that attacks sq
// given occupancy occ, returning its type and square.
func (pos *Position) cheapestAttacker(color Color, sq Square, occ bitboard) (PieceType, Square, bool) {
	attackers := pos.allAttackersTo(sq, occ) & pos.ColorBB(color)
	for _, t := range allPieceTypes {
		mask := attackers & pos.byType[t]
		if mask != 0 {
			return t, mask.LSB(), true
		}
	}
	return NoPieceType, NoSquare, false
}

package chess

// MakeMove applies mov to pos and returns the resulting position together
// with whether the move was legal. A move is legal iff the moving side's
// king is not left in check -- pseudolegal generation plus this
// after-the-fact check test is cheaper overall than filtering illegal moves
// out of movegen itself, since most positions aren't in check and most
// pseudolegal moves don't expose the king.
func (pos *Position) MakeMove(mov Move) (*Position, bool) {
	next := pos.Clone()
	mover := pos.sideToMove
	src, dst := mov.Src(), mov.Dst()
	piece := pos.mailbox[src]

	if pos.epSquare != NoSquare {
		next.hash ^= zobristTable.epFile[pos.epSquare.File()]
	}
	next.epSquare = NoSquare
	if piece.Type() == Pawn || (pos.mailbox[dst] != NoPiece && !mov.IsCastle()) || mov.IsEnPassant() {
		next.ply100Ctr = 0
	} else {
		next.ply100Ctr = pos.ply100Ctr + 1
	}
	next.ply = pos.ply + 1

	switch {
	case mov.IsCastle():
		if pos.castleThroughCheck(mover, src, dst) {
			return next, false
		}
		next.applyCastle(mover, src, dst)
	case mov.IsEnPassant():
		next.applyEnPassant(mover, src, dst)
	default:
		next.applyNormal(mover, piece, src, dst, mov)
	}

	next.updateCastlingRights(piece, src, dst)

	if piece.Type() == Pawn {
		if dst == src.North().North() && mover == White {
			next.setEpSquare(src.North(), mover)
		} else if int(src) == int(dst)+2*numOfSquaresInRow && mover == Black {
			next.setEpSquare(src.South(), mover)
		}
	}

	next.sideToMove = mover.Other()
	next.hash ^= zobristTable.sideToMove

	if next.IsAttacked(next.KingSquare(mover), mover.Other()) {
		return next, false
	}
	return next, true
}

// setEpSquare records the en passant target only if an enemy pawn could
// actually capture there; this keeps the Zobrist hash from depending on an
// en passant square that can never be played, a common source of false
// position-equality mismatches.
func (next *Position) setEpSquare(target Square, justMoved Color) {
	enemyPawns := next.ColorPieceBB(justMoved.Other(), Pawn)
	if PawnAttacks(justMoved, target)&enemyPawns != 0 {
		next.epSquare = target
		next.hash ^= zobristTable.epFile[target.File()]
	}
}

func (next *Position) applyNormal(mover Color, piece Piece, src, dst Square, mov Move) {
	captured := next.mailbox[dst]
	if captured != NoPiece {
		next.hash ^= pieceKey(captured.Type(), captured.Color(), dst)
		next.clearPiece(dst)
	}
	next.clearPiece(src)
	placed := piece
	if mov.IsPromotion() {
		placed = NewPiece(mov.PromoPiece(), mover)
	}
	next.setPiece(placed, dst)
	next.hash ^= pieceKey(piece.Type(), piece.Color(), src)
	next.hash ^= pieceKey(placed.Type(), placed.Color(), dst)
}

func (next *Position) applyEnPassant(mover Color, src, dst Square) {
	captureSq := NewSquare(dst.File(), src.Rank())
	captured := next.mailbox[captureSq]
	next.hash ^= pieceKey(captured.Type(), captured.Color(), captureSq)
	next.clearPiece(captureSq)
	next.clearPiece(src)
	next.setPiece(NewPiece(Pawn, mover), dst)
	next.hash ^= pieceKey(Pawn, mover, src)
	next.hash ^= pieceKey(Pawn, mover, dst)
}

// castleThroughCheck reports whether any square the king traverses while
// castling -- from kingSrc to its destination, inclusive of both ends -- is
// attacked by the opponent in pos. Per spec, this is a legality check that
// belongs to MakeMove, not a pseudolegality filter in movegen: a castling
// move rejected here is pseudolegal (the squares-between test already
// passed) but illegal, exactly like any other move that would leave the
// king in check.
func (pos *Position) castleThroughCheck(mover Color, kingSrc, rookSrc Square) bool {
	them := mover.Other()
	kingDst := NewSquare(FileG, kingSrc.Rank())
	if rookSrc < kingSrc {
		kingDst = NewSquare(FileC, kingSrc.Rank())
	}
	lo, hi := kingSrc, kingDst
	if lo > hi {
		lo, hi = hi, lo
	}
	for sq := lo; sq <= hi; sq++ {
		if pos.IsAttacked(sq, them) {
			return true
		}
	}
	return false
}

// applyCastle moves the king and rook. dst is the castling rook's square
// (per the "king captures own rook" convention), which also correctly
// supports Chess960/DFRC starting layouts where the rook is not on the a-
// or h-file.
func (next *Position) applyCastle(mover Color, kingSrc, rookSrc Square) {
	side := Kingside
	if rookSrc < kingSrc {
		side = Queenside
	}
	kingDst := NewSquare(FileG, kingSrc.Rank())
	rookDst := NewSquare(FileF, kingSrc.Rank())
	if side == Queenside {
		kingDst = NewSquare(FileC, kingSrc.Rank())
		rookDst = NewSquare(FileD, kingSrc.Rank())
	}

	next.clearPiece(kingSrc)
	next.clearPiece(rookSrc)
	next.setPiece(NewPiece(King, mover), kingDst)
	next.setPiece(NewPiece(Rook, mover), rookDst)
	next.hash ^= pieceKey(King, mover, kingSrc)
	next.hash ^= pieceKey(King, mover, kingDst)
	next.hash ^= pieceKey(Rook, mover, rookSrc)
	next.hash ^= pieceKey(Rook, mover, rookDst)
}

func (next *Position) updateCastlingRights(piece Piece, src, dst Square) {
	old := next.castling
	if piece.Type() == King {
		next.castling = next.castling.WithoutColor(piece.Color())
	}
	for _, c := range [2]Color{White, Black} {
		for _, s := range [2]CastleSide{Kingside, Queenside} {
			if !next.castling.HasRight(c, s) {
				continue
			}
			rookSq := NewSquare(next.castling.RookFile(c, s), backRank(c))
			if src == rookSq || dst == rookSq {
				next.castling = next.castling.WithoutRight(c, s)
			}
		}
	}
	if old != next.castling {
		next.hash ^= zobristTable.castle[old.AllowedMask()]
		next.hash ^= zobristTable.castle[next.castling.AllowedMask()]
	}
}

func backRank(c Color) Rank {
	if c == White {
		return Rank1
	}
	return Rank8
}

// MakeNullMove returns the position after a side passes its turn: side to
// move flips, the en passant square is cleared, but no piece moves. It is
// always legal as long as the side to move isn't already in check (callers
// are expected to check that themselves, as null moves inside search are
// never tried while in check).
func (pos *Position) MakeNullMove() *Position {
	next := pos.Clone()
	next.sideToMove = pos.sideToMove.Other()
	next.ply++
	next.ply100Ctr++
	if pos.epSquare != NoSquare {
		next.hash ^= zobristTable.epFile[pos.epSquare.File()]
	}
	next.epSquare = NoSquare
	next.hash ^= zobristTable.sideToMove
	return next
}

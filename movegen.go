package chess

// GeneratePseudoLegal appends every pseudolegal move (movements that obey
// each piece's rules but may leave the mover's own king in check) to list.
// Legality is established separately, by attempting MakeMove and checking
// its returned bool -- see LegalMoves.
func (pos *Position) GeneratePseudoLegal(list *MoveList) {
	pos.generatePawnMoves(list, false)
	pos.generatePieceMoves(list, false)
	pos.generateCastles(list)
}

// GenerateNoisy appends only captures, en passant captures, and promotions
// (the moves a quiescence search would examine) to list.
func (pos *Position) GenerateNoisy(list *MoveList) {
	pos.generatePawnMoves(list, true)
	pos.generatePieceMoves(list, true)
}

// LegalMoves returns every legal move from pos. It is a convenience
// wrapper around GeneratePseudoLegal + MakeMove filtering, named to match
// the "legal_moves_slow" style helper used for tests and perft in the
// reference this package's semantics were checked against; production move
// ordering code should call GeneratePseudoLegal directly and filter lazily.
func (pos *Position) LegalMoves() []Move {
	var pl MoveList
	pos.GeneratePseudoLegal(&pl)
	out := make([]Move, 0, pl.Len())
	for i := 0; i < pl.Len(); i++ {
		m := pl.At(i)
		if _, ok := pos.MakeMove(m); ok {
			out = append(out, m)
		}
	}
	return out
}

// IsMovePseudolegal reports whether mov appears in GeneratePseudoLegal's
// output for pos. Search collaborators use this to validate a move pulled
// from an external source (a transposition table entry, a killer-move
// slot) before trying to play it, without paying for a full move-list
// allocation and comparison on every such check... except that's exactly
// what this does; a hot-path caller that validates many moves per position
// should generate the list once and scan it directly instead.
func (pos *Position) IsMovePseudolegal(mov Move) bool {
	var pl MoveList
	pos.GeneratePseudoLegal(&pl)
	for i := 0; i < pl.Len(); i++ {
		if pl.At(i) == mov {
			return true
		}
	}
	return false
}

// IsMoveLegal reports whether mov is pseudolegal in pos and playing it would
// not leave the mover's own king in check.
func (pos *Position) IsMoveLegal(mov Move) bool {
	if !pos.IsMovePseudolegal(mov) {
		return false
	}
	_, ok := pos.MakeMove(mov)
	return ok
}

func (pos *Position) generatePieceMoves(list *MoveList, noisyOnly bool) {
	us := pos.sideToMove
	own := pos.ColorBB(us)
	occ := pos.Occupied()
	enemy := pos.ColorBB(us.Other())

	addTargets := func(src Square, targets bitboard) {
		if noisyOnly {
			targets &= enemy
		}
		for targets != 0 {
			dst := targets.PopLSB()
			list.Add(NewMove(src, dst))
		}
	}

	for bb := pos.ColorPieceBB(us, Knight); bb != 0; {
		sq := bb.PopLSB()
		addTargets(sq, KnightAttacks(sq)&^own)
	}
	for bb := pos.ColorPieceBB(us, Bishop); bb != 0; {
		sq := bb.PopLSB()
		addTargets(sq, BishopAttacks(occ, sq)&^own)
	}
	for bb := pos.ColorPieceBB(us, Rook); bb != 0; {
		sq := bb.PopLSB()
		addTargets(sq, RookAttacks(occ, sq)&^own)
	}
	for bb := pos.ColorPieceBB(us, Queen); bb != 0; {
		sq := bb.PopLSB()
		addTargets(sq, QueenAttacks(occ, sq)&^own)
	}
	sq := pos.KingSquare(us)
	addTargets(sq, KingAttacks(sq)&^own)
}

func (pos *Position) generatePawnMoves(list *MoveList, noisyOnly bool) {
	us := pos.sideToMove
	occ := pos.Occupied()
	enemy := pos.ColorBB(us.Other())
	pawns := pos.ColorPieceBB(us, Pawn)

	promoRank := Rank8
	startRank := Rank2
	forward := func(sq Square) Square { return sq.North() }
	if us == Black {
		promoRank = Rank1
		startRank = Rank7
		forward = func(sq Square) Square { return sq.South() }
	}

	// addPawnMove emits a quiet push or a capture landing on dst. On the
	// promotion rank a capture always emits all four promotion pieces (it's
	// already noisy), but a quiet push restricts to the two tactically
	// relevant ones -- queen and knight -- when only noisy moves are wanted.
	addPawnMove := func(src, dst Square, isCapture bool) {
		if dst.Rank() == promoRank {
			list.Add(NewPromotion(src, dst, Queen))
			list.Add(NewPromotion(src, dst, Knight))
			if isCapture || !noisyOnly {
				list.Add(NewPromotion(src, dst, Rook))
				list.Add(NewPromotion(src, dst, Bishop))
			}
			return
		}
		list.Add(NewMove(src, dst))
	}

	for bb := pawns; bb != 0; {
		src := bb.PopLSB()
		one := forward(src)
		if !occ.Occupied(one) {
			if !noisyOnly || one.Rank() == promoRank {
				addPawnMove(src, one, false)
			}
			if src.Rank() == startRank && !noisyOnly {
				two := forward(one)
				if !occ.Occupied(two) {
					list.Add(NewMove(src, two))
				}
			}
		}
		captures := PawnAttacks(us, src) & enemy
		for captures != 0 {
			dst := captures.PopLSB()
			addPawnMove(src, dst, true)
		}
		if pos.epSquare != NoSquare && PawnAttacks(us, src).Occupied(pos.epSquare) {
			list.Add(NewMoveFlag(src, pos.epSquare, MoveEnPassant))
		}
	}
}

func (pos *Position) generateCastles(list *MoveList) {
	us := pos.sideToMove
	occ := pos.Occupied()
	kingStart := pos.KingSquare(us)
	rank := backRank(us)

	for _, side := range [2]CastleSide{Kingside, Queenside} {
		if !pos.castling.HasRight(us, side) {
			continue
		}
		rookStart := NewSquare(pos.castling.RookFile(us, side), rank)
		kingEnd := NewSquare(FileG, rank)
		rookEnd := NewSquare(FileF, rank)
		if side == Queenside {
			kingEnd = NewSquare(FileC, rank)
			rookEnd = NewSquare(FileD, rank)
		}

		mustBeEmpty := Line(kingStart, kingEnd) | Line(rookStart, rookEnd)
		mustBeEmpty &^= kingStart.Bb() | rookStart.Bb()
		if occ&^(kingStart.Bb()|rookStart.Bb())&mustBeEmpty != 0 {
			continue
		}

		// Whether the king passes through an attacked square is a legality
		// question, not a pseudolegality one -- MakeMove checks it via
		// castleThroughCheck, the same place every other move's in-check filtering
		// happens. Movegen only needs the squares-between emptiness test.
		list.Add(NewMoveFlag(kingStart, rookStart, MoveCastle))
	}
}

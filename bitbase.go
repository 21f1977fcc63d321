package chess

import "sync"

// KPK (king and pawn vs king) endgame bitbase, built by retrograde analysis:
// starting from the known-won positions with the pawn already on the eighth
// rank, repeatedly propagate "won for white" backward one ply at a time
// until a fixed point is reached. Based on Bob Hyatt and Tim Mann's KPK
// generator as adapted by Marcel van Kervinck (github.com/kervinck/pfkpk).
//
// Only pawns on the a-d files are stored; e-h file positions are queried by
// mirroring left-right, since a KPK position and its horizontal mirror image
// share the same result.
const (
	numCompleteBitbaseEntries = numOfSquaresInBoard * numOfSquaresInBoard / 2
	numRelevantBitbaseEntries = numCompleteBitbaseEntries - numOfSquaresInBoard*8/2*2
	bitbaseOffset             = (numCompleteBitbaseEntries - numRelevantBitbaseEntries) / 2
)

// idxFull indexes a table covering every white king square for each of the
// 32 (pawn rank, pawn file<4) combinations.
func idxFull(whitePawn, whiteKing Square) int {
	return (int(whitePawn.Rank())*4+int(whitePawn.File()))*numOfSquaresInBoard + int(whiteKing)
}

func idxCompact(whitePawn, whiteKing Square) int {
	return idxFull(whitePawn, whiteKing) - bitbaseOffset
}

// fullPawnVKingTable is indexed [sideToMove][idxFull(...)] and holds, for
// each (pawn, white king) configuration, the bitboard of black king squares
// that make the position won for white from that side to move.
type fullPawnVKingTable [2][numCompleteBitbaseEntries]bitboard

// CompactBitbase is the a-d-file-only table actually kept around at runtime.
type CompactBitbase [2][numRelevantBitbaseEntries]bitboard

// moore returns the union of the king-move neighborhoods of every square set
// in bb. A square of bb is in the result only if it neighbors another square
// of bb, since a king's attack set never includes its own square.
func moore(bb bitboard) bitboard {
	var out bitboard
	for bb != 0 {
		out |= KingAttacks(bb.PopLSB())
	}
	return out
}

func calcPawnVKingFull() fullPawnVKingTable {
	var invalid [numCompleteBitbaseEntries]bitboard
	for wp := Square(0); wp < numOfSquaresInBoard; wp++ {
		if wp.File() >= 4 {
			continue
		}
		for wk := Square(0); wk < numOfSquaresInBoard; wk++ {
			invalid[idxFull(wp, wk)] = PawnAttacks(White, wp) | KingAttacks(wk) | wk.Bb()
		}
	}

	var res fullPawnVKingTable

	// Base case: the white pawn already stands on the eighth rank (a8..d8).
	// This is won for white unless black can immediately capture it; it's
	// never stalemate since white could always promote to a rook instead of
	// a queen.
	for wpIdx := numOfSquaresInBoard - 8; wpIdx < numOfSquaresInBoard-4; wpIdx++ {
		wp := Square(wpIdx)
		for wk := Square(0); wk < numOfSquaresInBoard; wk++ {
			ourKingDist := supDistance(wp, wk)
			var promoSafe bitboard
			if ourKingDist == 1 {
				promoSafe = ^bitboard(0)
			} else {
				promoSafe = ^KingAttacks(wp)
			}
			res[Black][idxFull(wp, wk)] = promoSafe &^ KingAttacks(wk) &^ wk.Bb() &^ wp.Bb()
		}
	}

	for wpIdx := numOfSquaresInBoard - 1; wpIdx >= 0; wpIdx-- {
		wp := Square(wpIdx)
		if wp.IsBackRank() || wp.File() >= 4 {
			continue
		}
		for {
			for wk := Square(0); wk < numOfSquaresInBoard; wk++ {
				var won bitboard
				for to := KingAttacks(wk) &^ wp.Bb(); to != 0; {
					toSq := to.PopLSB()
					won |= res[Black][idxFull(wp, toSq)] &^ KingAttacks(toSq)
				}
				pawnPush := wp.North()
				if pawnPush != wk {
					won |= res[Black][idxFull(pawnPush, wk)]
					if wp.Rank() == Rank2 && pawnPush.North() != wk {
						doublePush := pawnPush.North()
						won |= res[Black][idxFull(doublePush, wk)] &^ pawnPush.Bb()
					}
				}
				i := idxFull(wp, wk)
				res[White][i] = won &^ wp.Bb() &^ invalid[i]
			}

			changed := false
			for wk := Square(0); wk < numOfSquaresInBoard; wk++ {
				i := idxFull(wp, wk)
				noDrawWtm := res[White][i] | invalid[i]
				drawBtm := moore(^noDrawWtm)
				hasMovesBtm := moore(^invalid[i])
				whiteWinBtm := hasMovesBtm &^ drawBtm &^ wp.Bb()
				if res[Black][i] != whiteWinBtm {
					changed = true
				}
				res[Black][i] = whiteWinBtm
			}
			if !changed {
				break
			}
		}
	}
	return res
}

func calcPawnVKing() *CompactBitbase {
	full := calcPawnVKingFull()
	res := &CompactBitbase{}
	copy(res[White][:], full[White][bitbaseOffset:bitbaseOffset+numRelevantBitbaseEntries])
	copy(res[Black][:], full[Black][bitbaseOffset:bitbaseOffset+numRelevantBitbaseEntries])
	return res
}

var pawnVKingTableOnce = sync.OnceValue(calcPawnVKing)

// ForceInitBitbase eagerly builds the KPK bitbase. Building it takes a
// perceptible moment, so callers that care about consistent per-call search
// latency (short time-control test suites, say) can call this once up front
// rather than paying the cost inside the first real QueryBitbase call.
func ForceInitBitbase() {
	pawnVKingTableOnce()
}

// BitbaseResult is the outcome QueryBitbase reports for a KPK position.
type BitbaseResult int

const (
	BitbaseDraw BitbaseResult = iota
	BitbaseWin
	BitbaseLoss
)

// QueryBitbase looks up pos in the KPK bitbase, returning its result and
// true if pos has exactly the three pieces (one pawn, two kings) the
// bitbase covers, or false otherwise.
func (pos *Position) QueryBitbase() (BitbaseResult, bool) {
	if pos.Occupied().PopCount() != 3 {
		return BitbaseDraw, false
	}
	pawns := pos.byType[Pawn]
	if pawns.PopCount() != 1 {
		return BitbaseDraw, false
	}
	pawnSq := pawns.LSB()
	flip := pos.ColorPieceBB(White, Pawn) == 0

	var wp, wk, bk Square
	if flip {
		wp = pawnSq.Flip()
		wk = pos.KingSquare(Black).Flip()
		bk = pos.KingSquare(White).Flip()
	} else {
		wp = pawnSq
		wk = pos.KingSquare(White)
		bk = pos.KingSquare(Black)
	}
	isBlack := flip != (pos.sideToMove == Black)
	return queryPawnVKing(wp, wk, bk, isBlack), true
}

func queryPawnVKing(wp, wk, bk Square, isBlack bool) BitbaseResult {
	if wp.File() >= 4 {
		wp = wp.FlipLeftRight()
		wk = wk.FlipLeftRight()
		bk = bk.FlipLeftRight()
	}
	table := pawnVKingTableOnce()
	i := idxCompact(wp, wk)
	if isBlack {
		if table[Black][i].Occupied(bk) {
			return BitbaseLoss
		}
		return BitbaseDraw
	}
	if table[White][i].Occupied(bk) {
		return BitbaseWin
	}
	return BitbaseDraw
}

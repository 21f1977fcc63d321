package chess

import "testing"

func TestQueryBitbaseRejectsWrongPieceCount(t *testing.T) {
	pos := StartingPosition()
	if _, ok := pos.QueryBitbase(); ok {
		t.Fatalf("a 32-piece position should not be in the bitbase's domain")
	}
}

func TestQueryBitbaseScenario(t *testing.T) {
	pos := mustParseFEN(t, "1K1k4/1P6/8/8/8/8/8/8 b - - 0 1")
	result, ok := pos.QueryBitbase()
	if !ok {
		t.Fatalf("expected this KPK position to be in the bitbase's domain")
	}
	if result != BitbaseLoss {
		t.Fatalf("black to move should be a loss for black, got %v", result)
	}

	flipped := mustParseFEN(t, "1K1k4/1P6/8/8/8/8/8/8 w - - 0 1")
	flippedResult, ok := flipped.QueryBitbase()
	if !ok {
		t.Fatalf("expected the side-to-move-flipped position to be in the bitbase's domain")
	}
	if flippedResult != BitbaseWin {
		t.Fatalf("white to move should be a win for white, got %v", flippedResult)
	}
}

// TestKPKBitbaseCounts reproduces the published Steven J. Edwards (1996)
// KPK position counts, following the exact enumeration and legality
// filtering the reference implementation's own count_test uses: a white
// king, a white pawn never on a back rank, and a black king, with kings
// never adjacent; a white-to-move position is only legal when black (the
// side not to move) is not already in check from the pawn.
func TestKPKBitbaseCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive KPK enumeration is expensive; skipping under -short")
	}
	var totalWhite, totalBlack, winsWhite, winsBlack int

	for pawnSq := Square(0); pawnSq < numOfSquaresInBoard; pawnSq++ {
		if pawnSq.IsBackRank() {
			continue
		}
		for wk := Square(0); wk < numOfSquaresInBoard; wk++ {
			if wk == pawnSq {
				continue
			}
			for bk := Square(0); bk < numOfSquaresInBoard; bk++ {
				if bk == pawnSq || supDistance(wk, bk) <= 1 {
					continue
				}
				blackInCheck := PawnAttacks(White, pawnSq).Occupied(bk)

				if !blackInCheck {
					totalWhite++
					pos := buildKPKPosition(t, pawnSq, wk, bk, White)
					result, ok := pos.QueryBitbase()
					if !ok {
						t.Fatalf("a 3-piece position must be in the bitbase's domain")
					}
					if result == BitbaseWin {
						winsWhite++
					}
				}

				totalBlack++
				pos := buildKPKPosition(t, pawnSq, wk, bk, Black)
				result, ok := pos.QueryBitbase()
				if !ok {
					t.Fatalf("a 3-piece position must be in the bitbase's domain")
				}
				// With black to move, the query is answered from black's
				// perspective: a loss for black is a win for white.
				if result == BitbaseLoss {
					winsBlack++
				}
			}
		}
	}

	if totalWhite != 163328 {
		t.Errorf("total legal KPK positions with white to move = %d, want 163328", totalWhite)
	}
	if totalBlack != 168024 {
		t.Errorf("total legal KPK positions with black to move = %d, want 168024", totalBlack)
	}
	if winsWhite != 124960 {
		t.Errorf("white-to-move wins for white = %d, want 124960", winsWhite)
	}
	if winsBlack != 97604 {
		t.Errorf("black-to-move wins for white = %d, want 97604", winsBlack)
	}
}

// buildKPKPosition assembles a Position directly from bitboards rather than
// through FEN parsing. The sweep in the test above already skips the
// positions ParseFEN's StrictFEN legality check would reject for the side
// not to move being in check: adjacent kings, and, with white to move, a
// black king attacked by the pawn.
func buildKPKPosition(t *testing.T, pawnSq, wk, bk Square, stm Color) *Position {
	t.Helper()
	pos := NewEmptyPosition()
	pos.setPiece(WhitePawn, pawnSq)
	pos.setPiece(WhiteKing, wk)
	pos.setPiece(BlackKing, bk)
	pos.sideToMove = stm
	pos.epSquare = NoSquare
	pos.hash = pos.ComputeZobrist()
	return pos
}

package chess

import "testing"

func TestIsAttackedByPawn(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/3p4/8/8/8/4K3 b - - 0 1")
	if !pos.IsAttacked(NewSquare(FileC, Rank4), Black) {
		t.Errorf("c4 should be attacked by the black pawn on d5")
	}
	if pos.IsAttacked(NewSquare(FileC, Rank5), Black) {
		t.Errorf("c5 should not be attacked by a pawn standing on d5")
	}
}

func TestIsAttackedBySlider(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if !pos.IsAttacked(NewSquare(FileD, Rank1), White) {
		t.Errorf("d1 should be attacked by the rook on a1")
	}
	if pos.IsAttacked(NewSquare(FileD, Rank1), Black) {
		t.Errorf("d1 should not be attacked by black, whose only piece is the king on e8")
	}
}

func TestInCheck(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	if !pos.InCheck() {
		t.Errorf("white king on e1 should be in check from the rook on e2")
	}
}

func TestHasSufficientMaterialBareKings(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if pos.HasSufficientMaterial() {
		t.Errorf("bare kings should be insufficient material")
	}
}

func TestHasSufficientMaterialKingAndMinor(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/8/3NK3 w - - 0 1")
	if pos.HasSufficientMaterial() {
		t.Errorf("king and knight vs king should be insufficient material")
	}
}

func TestHasSufficientMaterialOppositeColorBishops(t *testing.T) {
	// a8 is a light square, c1 is a dark square: with opposite-colored
	// bishops, one per side, a checkmate can still arise from legal moves.
	pos := mustParseFEN(t, "b3k3/8/8/8/8/8/8/2B1K3 w - - 0 1")
	if !pos.HasSufficientMaterial() {
		t.Errorf("opposite-colored bishops, one per side, should be sufficient material")
	}
}

func TestHasSufficientMaterialSameColorBishops(t *testing.T) {
	// f8 and c1 are both dark squares: with same-colored bishops no
	// checkmate is possible at all.
	pos := mustParseFEN(t, "5bk1/8/8/8/8/8/8/2B1K3 w - - 0 1")
	if pos.HasSufficientMaterial() {
		t.Errorf("same-colored bishops, one per side, should be insufficient material")
	}
}

func TestHasSufficientMaterialWithRook(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if !pos.HasSufficientMaterial() {
		t.Errorf("a lone rook should be sufficient material")
	}
}

func TestKingSquare(t *testing.T) {
	pos := StartingPosition()
	if pos.KingSquare(White) != NewSquare(FileE, Rank1) {
		t.Errorf("white king should start on e1")
	}
	if pos.KingSquare(Black) != NewSquare(FileE, Rank8) {
		t.Errorf("black king should start on e8")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	pos := StartingPosition()
	cp := pos.Clone()
	mov := NewMove(NewSquare(FileE, Rank2), NewSquare(FileE, Rank4))
	next, ok := pos.MakeMove(mov)
	if !ok {
		t.Fatalf("e2e4 should be legal")
	}
	if cp.PieceAt(NewSquare(FileE, Rank2)).IsEmpty() {
		t.Errorf("the clone should be unaffected by a move made on the original")
	}
	if next.PieceAt(NewSquare(FileE, Rank4)) != WhitePawn {
		t.Errorf("the new position from MakeMove should reflect the move")
	}
}

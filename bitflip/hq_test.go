package bitflip

import "testing"

func TestRookAttacksEmptyBoard(t *testing.T) {
	sq := 27 // d4, rank*8+file = 3*8+3
	got := RookAttacks(sqBit(sq), sq)
	want := (fileMasks[3] | rankMasks[3]) &^ sqBit(sq)
	if got != want {
		t.Errorf("rook attacks from d4 on empty board:\ngot  %064b\nwant %064b", got, want)
	}
}

func TestBishopAttacksBlocked(t *testing.T) {
	// d4 bishop, blocker on f6 (rank 5, file 5 -> sq 45) should stop the
	// north-east ray at f6 and not see further squares like g7/h8.
	d4 := 27
	f6 := 5*8 + 5
	occ := sqBit(d4) | sqBit(f6)
	got := BishopAttacks(occ, d4)
	g7 := 6*8 + 6
	if got&sqBit(g7) != 0 {
		t.Errorf("bishop attack should not see past a blocker on f6")
	}
	if got&sqBit(f6) == 0 {
		t.Errorf("bishop attack should include the blocking square f6")
	}
}

func TestQueenAttacksIsUnionOfRookAndBishop(t *testing.T) {
	sq := 0
	occ := sqBit(sq) | sqBit(9) | sqBit(16)
	got := QueenAttacks(occ, sq)
	want := RookAttacks(occ, sq) | BishopAttacks(occ, sq)
	if got != want {
		t.Errorf("queen attacks should equal rook | bishop attacks")
	}
}

func TestRayExclusive(t *testing.T) {
	a1, h8 := 0, 63
	got := RayExclusive(a1, h8)
	for _, sq := range []int{9, 18, 27, 36, 45, 54} {
		if got&sqBit(sq) == 0 {
			t.Errorf("expected square %d on the a1-h8 diagonal to be in the exclusive ray", sq)
		}
	}
	if got&sqBit(a1) != 0 || got&sqBit(h8) != 0 {
		t.Errorf("exclusive ray must not contain either endpoint")
	}
}

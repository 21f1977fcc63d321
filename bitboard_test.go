package chess

import "testing"

func TestBitboardPopCount(t *testing.T) {
	var b bitboard
	if b.PopCount() != 0 {
		t.Fatalf("empty bitboard PopCount = %d, want 0", b.PopCount())
	}
	b |= NewSquare(FileC, Rank3).Bb()
	b |= NewSquare(FileF, Rank6).Bb()
	if b.PopCount() != 2 {
		t.Fatalf("PopCount = %d, want 2", b.PopCount())
	}
}

func TestBitboardBasics(t *testing.T) {
	var b bitboard
	if !b.IsEmpty() || b.HasSetBit() {
		t.Fatalf("zero bitboard should be empty")
	}

	b |= NewSquare(FileA, Rank1).Bb()
	b |= NewSquare(FileH, Rank8).Bb()
	if b.PopCount() != 2 {
		t.Fatalf("PopCount = %d, want 2", b.PopCount())
	}
	if b.IsEmpty() || !b.HasSetBit() {
		t.Fatalf("non-zero bitboard reported empty")
	}
	if !b.Occupied(NewSquare(FileA, Rank1)) {
		t.Fatalf("a1 should be occupied")
	}
	if b.Occupied(NewSquare(FileB, Rank1)) {
		t.Fatalf("b1 should not be occupied")
	}

	first := b.LSB()
	if first != NewSquare(FileA, Rank1) {
		t.Fatalf("LSB = %v, want a1", first)
	}
	sq := b.PopLSB()
	if sq != NewSquare(FileA, Rank1) {
		t.Fatalf("PopLSB returned %v, want a1", sq)
	}
	if b.PopCount() != 1 {
		t.Fatalf("after PopLSB, PopCount = %d, want 1", b.PopCount())
	}
}

func TestBitboardSquares(t *testing.T) {
	var b bitboard
	want := []Square{NewSquare(FileB, Rank2), NewSquare(FileD, Rank4), NewSquare(FileG, Rank7)}
	for _, sq := range want {
		b |= sq.Bb()
	}
	got := b.Squares()
	if len(got) != len(want) {
		t.Fatalf("Squares() returned %d squares, want %d", len(got), len(want))
	}
	for i, sq := range want {
		if got[i] != sq {
			t.Fatalf("Squares()[%d] = %v, want %v", i, got[i], sq)
		}
	}
}

func TestBitboardStringLength(t *testing.T) {
	var b bitboard = 1
	s := b.String()
	if len(s) != numOfSquaresInBoard {
		t.Fatalf("String() length = %d, want %d", len(s), numOfSquaresInBoard)
	}
	if s[len(s)-1] != '1' {
		t.Fatalf("String() = %q, want last char '1'", s)
	}
}

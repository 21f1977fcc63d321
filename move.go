package chess

// Move packs a chess move into 16 bits: bits 0-5 are the source square,
// bits 6-11 the destination square, and bits 12-15 a flag describing
// anything the squares alone don't say: en passant, castling, or the
// promotion piece. This replaces the struct-based move of earlier
// revisions.
type Move uint16

// MoveFlag occupies the top 4 bits of a Move. Is_promo(flag) iff
// flag >= MovePromoKnight; the promotion piece type is then
// Knight + (flag - MovePromoKnight).
type MoveFlag uint8

const (
	MoveNormal MoveFlag = iota
	MoveEnPassant
	MoveCastle
	MovePromoKnight
	MovePromoBishop
	MovePromoRook
	MovePromoQueen
)

const (
	moveSrcShift  = 0
	moveDstShift  = 6
	moveFlagShift = 12
	moveSqMask    = 0x3F
	moveFlagMask  = 0xF
)

// NoMove is the zero value, used as a null/sentinel move. It is
// indistinguishable from "a1a1" as a normal move, which never arises since
// movegen never produces a zero-length move.
const NoMove Move = 0

// NewMove builds a move with MoveNormal semantics.
func NewMove(src, dst Square) Move {
	return NewMoveFlag(src, dst, MoveNormal)
}

// NewMoveFlag builds a move with an explicit flag.
func NewMoveFlag(src, dst Square, flag MoveFlag) Move {
	return Move(uint16(src)<<moveSrcShift | uint16(dst)<<moveDstShift | uint16(flag)<<moveFlagShift)
}

// NewPromotion builds a promotion move; promo must be one of
// Knight/Bishop/Rook/Queen.
func NewPromotion(src, dst Square, promo PieceType) Move {
	flag := MovePromoKnight + MoveFlag(promo-Knight)
	return NewMoveFlag(src, dst, flag)
}

// Src returns the move's source square.
func (m Move) Src() Square {
	return Square((uint16(m) >> moveSrcShift) & moveSqMask)
}

// Dst returns the move's destination square. For a castling move this is
// the castling rook's square (the "king captures own rook" convention),
// not the king's final square, so Chess960/DFRC castles need no special
// destination encoding.
func (m Move) Dst() Square {
	return Square((uint16(m) >> moveDstShift) & moveSqMask)
}

// Flag returns the move's flag.
func (m Move) Flag() MoveFlag {
	return MoveFlag((uint16(m) >> moveFlagShift) & moveFlagMask)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag() >= MovePromoKnight
}

// PromoPiece returns the promotion piece type. Only meaningful when
// IsPromotion reports true.
func (m Move) PromoPiece() PieceType {
	return Knight + PieceType(m.Flag()-MovePromoKnight)
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == MoveEnPassant
}

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flag() == MoveCastle
}

// String returns UCI-ish long algebraic notation, e.g. "e2e4" or "e7e8q".
// It does not consult a Position, so it cannot render SAN; see notation.go
// for that.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.Src().String() + m.Dst().String()
	if m.IsPromotion() {
		s += m.PromoPiece().String()
	}
	return s
}

// maxMoves is the fixed capacity of a MoveList. 218 is the maximum number of
// legal moves known to exist in any reachable chess position (the
// "R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w" position); 256 keeps margin
// above that so an overflow is a bug, not a boundary case.
const maxMoves = 256

// MoveList is a fixed-capacity move buffer, avoiding a heap allocation per
// move-generation call in the common case.
type MoveList struct {
	moves [maxMoves]Move
	n     int
}

// Add appends a move to the list. Exceeding maxMoves is a bug in movegen,
// not a reachable chess position, so it panics rather than silently
// truncating.
func (l *MoveList) Add(m Move) {
	if l.n >= maxMoves {
		panic("chess: move list overflow")
	}
	l.moves[l.n] = m
	l.n++
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int {
	return l.n
}

// At returns the i-th move.
func (l *MoveList) At(i int) Move {
	return l.moves[i]
}

// Slice returns the stored moves as a slice sharing the list's backing
// array; callers must not retain it past the list's next reuse.
func (l *MoveList) Slice() []Move {
	return l.moves[:l.n]
}

// Package bitflip computes sliding-piece attack sets using the hyperbola
// quintessence technique: for an occupancy mask restricted to a ray through
// the slider, `(occ&ray) - 2*slider_bit` and its bit-reversed mirror combine
// to produce the attacked squares in both directions with no branching.
//
// Square indices here match the parent package's convention: index =
// rank*8 + file, a1 = 0, h8 = 63.
package bitflip

import "math/bits"

// sqBit returns the single-bit mask for a square index.
func sqBit(sq int) uint64 {
	return uint64(1) << uint(sq)
}

var (
	fileMasks        [8]uint64
	rankMasks        [8]uint64
	diagonalMasks    [64]uint64
	antiDiagMasks    [64]uint64
)

func init() {
	for f := 0; f < 8; f++ {
		var m uint64
		for r := 0; r < 8; r++ {
			m |= sqBit(r*8 + f)
		}
		fileMasks[f] = m
	}
	for r := 0; r < 8; r++ {
		var m uint64
		for f := 0; f < 8; f++ {
			m |= sqBit(r*8 + f)
		}
		rankMasks[r] = m
	}
	for sq := 0; sq < 64; sq++ {
		rank, file := sq/8, sq%8
		var diag, anti uint64
		for sq2 := 0; sq2 < 64; sq2++ {
			r2, f2 := sq2/8, sq2%8
			if r2-f2 == rank-file {
				diag |= sqBit(sq2)
			}
			if r2+f2 == rank+file {
				anti |= sqBit(sq2)
			}
		}
		diagonalMasks[sq] = diag
		antiDiagMasks[sq] = anti
	}
}

// FileMask returns the full file bitboard containing sq.
func FileMask(sq int) uint64 { return fileMasks[sq%8] }

// RankMask returns the full rank bitboard containing sq.
func RankMask(sq int) uint64 { return rankMasks[sq/8] }

// DiagonalMask returns the a1-h8-direction diagonal through sq.
func DiagonalMask(sq int) uint64 { return diagonalMasks[sq] }

// AntiDiagonalMask returns the a8-h1-direction diagonal through sq.
func AntiDiagonalMask(sq int) uint64 { return antiDiagMasks[sq] }

// LineAttack computes the hyperbola quintessence attack set of a slider at
// pos (a single-bit mask) along the ray described by mask, given the full
// board occupancy.
func LineAttack(occupied, pos, mask uint64) uint64 {
	oInMask := occupied & mask
	forward := oInMask - 2*pos
	reversedOcc := bits.Reverse64(oInMask)
	reversedPos := bits.Reverse64(pos)
	backward := bits.Reverse64(reversedOcc - 2*reversedPos)
	return (forward ^ backward) & mask
}

// DiagAttack returns the combined diagonal and anti-diagonal attack set of a
// bishop-like slider standing on sq.
func DiagAttack(occupied uint64, sq int) uint64 {
	pos := sqBit(sq)
	return LineAttack(occupied, pos, diagonalMasks[sq]) | LineAttack(occupied, pos, antiDiagMasks[sq])
}

// HVAttack returns the combined horizontal and vertical attack set of a
// rook-like slider standing on sq.
func HVAttack(occupied uint64, sq int) uint64 {
	pos := sqBit(sq)
	return LineAttack(occupied, pos, rankMasks[sq/8]) | LineAttack(occupied, pos, fileMasks[sq%8])
}

// BishopAttacks is an alias of DiagAttack kept for callers that name pieces
// explicitly.
func BishopAttacks(occupied uint64, sq int) uint64 { return DiagAttack(occupied, sq) }

// RookAttacks is an alias of HVAttack kept for callers that name pieces
// explicitly.
func RookAttacks(occupied uint64, sq int) uint64 { return HVAttack(occupied, sq) }

// QueenAttacks returns the union of bishop and rook attacks from sq.
func QueenAttacks(occupied uint64, sq int) uint64 {
	return DiagAttack(occupied, sq) | HVAttack(occupied, sq)
}

// RayExclusive returns the squares strictly between a and b if they share a
// rank, file, or diagonal; otherwise it returns 0. The parent package builds
// its Between and Line tables from it.
func RayExclusive(a, b int) uint64 {
	for _, mask := range []uint64{fileMasks[a%8], rankMasks[a/8], diagonalMasks[a], antiDiagMasks[a]} {
		if mask&sqBit(b) == 0 {
			continue
		}
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		between := LineAttack(sqBit(hi), sqBit(lo), mask)
		// The attack set from lo also runs away from hi; keep only the
		// squares above lo and below hi.
		return between & (sqBit(hi) - sqBit(lo)<<1)
	}
	return 0
}

package chess

import "math/bits"

// Zobrist hashing uses a deterministic pseudo-random generator (rather than
// math/rand) so the keys -- and therefore every hash this package ever
// computes -- are reproducible across platforms, Go versions, and rebuilds.
// The generator is PCG-XSL-RR 128/64 ("pcg64_oneseq"), ported bit-for-bit
// from the reference implementation's const-evaluated Rust generator. Go
// lacks a native 128-bit integer type, so the state is carried as a
// (hi, lo) pair of uint64s and multiplied/added with math/bits' 64x64->128
// primitives.

type uint128 struct {
	hi, lo uint64
}

var (
	pcgMultiplier = uint128{hi: 2549297995355413924, lo: 4865540595714422341}
	pcgIncrement  = uint128{hi: 6364136223846793005, lo: 1442695040888963407}
)

func u128Add(a, b uint128) uint128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, carry)
	return uint128{hi: hi, lo: lo}
}

func u128Mul(a, b uint128) uint128 {
	hi, lo := bits.Mul64(a.lo, b.lo)
	hi += a.hi*b.lo + a.lo*b.hi
	return uint128{hi: hi, lo: lo}
}

// pcgState is the PCG-XSL-RR 128/64 "oneseq" generator state.
type pcgState struct {
	state uint128
}

func newPcgXslRr128_64(seed uint64) pcgState {
	s := u128Add(uint128{hi: 0, lo: seed}, pcgIncrement)
	s = u128Mul(s, pcgMultiplier)
	s = u128Add(s, pcgIncrement)
	return pcgState{state: s}
}

// next advances the generator and returns the next 64-bit output.
func (g *pcgState) next() uint64 {
	g.state = u128Add(u128Mul(g.state, pcgMultiplier), pcgIncrement)
	upper := g.state.hi
	xored := upper ^ g.state.lo
	shift := upper >> 58 // (122 - 64)
	return bits.RotateLeft64(xored, -int(shift))
}

// zobristKeys holds every pseudo-random key the hash function draws on.
// Indices: pieceSquare[sq*12 + pieceType*2 + color], castle[allowedMask
// 0..15], epFile[file 0..7], plus a single side-to-move key.
type zobristKeys struct {
	pieceSquare [64 * 6 * 2]uint64
	castle      [16]uint64
	epFile      [8]uint64
	sideToMove  uint64
}

var zobristTable = computeZobristKeys()

func computeZobristKeys() zobristKeys {
	var keys zobristKeys
	gen := newPcgXslRr128_64(0x42)
	for i := range keys.pieceSquare {
		keys.pieceSquare[i] = gen.next()
	}
	for i := range keys.castle {
		keys.castle[i] = gen.next()
	}
	for i := range keys.epFile {
		keys.epFile[i] = gen.next()
	}
	keys.sideToMove = gen.next()
	return keys
}

func pieceKey(t PieceType, c Color, sq Square) uint64 {
	return zobristTable.pieceSquare[int(sq)*12+int(t)*2+int(c)]
}

// ComputeZobrist recomputes the hash of pos from scratch. It is used to seed
// a freshly parsed position and, in tests, to check that incremental updates
// performed by MakeMove never drift from the from-scratch value.
func (pos *Position) ComputeZobrist() uint64 {
	var h uint64
	for _, c := range [2]Color{White, Black} {
		for _, t := range allPieceTypes {
			bb := pos.ColorPieceBB(c, t)
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= pieceKey(t, c, sq)
			}
		}
	}
	if pos.epSquare != NoSquare {
		h ^= zobristTable.epFile[pos.epSquare.File()]
	}
	h ^= zobristTable.castle[pos.castling.AllowedMask()]
	if pos.sideToMove == Black {
		h ^= zobristTable.sideToMove
	}
	return h
}

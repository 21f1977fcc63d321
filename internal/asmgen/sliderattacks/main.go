// Command sliderattacksgen emits an SSE2/AVX implementation of
// bitflip.HVAttack/DiagAttack, computing rank+file and diagonal+anti-diagonal
// attacks for a slider in one fused pair of lane operations instead of four
// sequential calls to LineAttack. It is a `go run` code generator, not part
// of the build; the engine's hot path stays on the portable Go
// implementation in bitflip/hq.go until the generated output is checked in
// and benchmarked against it.
package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

const loNibbleShuf = 0x0001020304050607
const hiNibbleShuf = 0x08090a0b0c0d0e0f

var nibbleMask = []uint64{0x0f0f0f0f0f0f0f0f, 0x0f0f0f0f0f0f0f0f}
var loShufLE = []uint64{0x0f070b030d050901, 0x0e060a020c040800}
var hiShufLE = []uint64{0xf070b030d0509010, 0xe060a020c0408000}

func reverseQuad(data reg.VecVirtual, rev [3]reg.VecVirtual, shuf reg.VecVirtual) {
	reverseBits(data, rev)
	VPSHUFB(shuf, data, data)
}

func reverseBits(data reg.VecVirtual, rev [3]reg.VecVirtual) {
	tmp := XMM()
	VPAND(rev[0], data, tmp)
	VPANDN(data, rev[0], data)
	VPSRLD(U8(0x4), data, data)
	VPSHUFB(tmp, rev[2], tmp)
	VPSHUFB(data, rev[1], data)
	VPOR(data, tmp, data)
}

func main() {
	consts := GLOBL("sliderConsts", RODATA|NOPTR)
	DATA(0, U64(nibbleMask[0]))
	DATA(8, U64(nibbleMask[1]))
	DATA(16, U64(loShufLE[1]))
	DATA(24, U64(loShufLE[0]))
	DATA(32, U64(hiShufLE[1]))
	DATA(40, U64(hiShufLE[0]))
	DATA(48, U64(loNibbleShuf))
	DATA(56, U64(hiNibbleShuf))

	// lanes: diagonal|rank in one 128-bit register, anti-diagonal|file in
	// the other, so the OR of both holds diagonal attacks in the low lane and
	// orthogonal attacks in the high lane; returns (orthogonal attacks,
	// diagonal attacks).
	TEXT("SliderAttacksAVX", NOSPLIT, "func(occupied uint64, location uint64, rays [4]uint64) (uint64, uint64)")
	occ := Load(Param("occupied"), GP64())
	pos := Load(Param("location"), GP64())
	rank := Load(Param("rays").Index(0), GP64())
	file := Load(Param("rays").Index(1), GP64())
	diag := Load(Param("rays").Index(2), GP64())
	antidiag := Load(Param("rays").Index(3), GP64())
	constsPtr := Mem{Base: GP64()}
	LEAQ(consts, constsPtr.Base)
	shuf := XMM()
	rev := [3]reg.VecVirtual{XMM(), XMM(), XMM()}
	orthoMask, diagMask := XMM(), XMM()
	Comment("load constants")
	MOVAPD(constsPtr.Offset(0), rev[0])
	MOVAPD(constsPtr.Offset(16), rev[1])
	MOVAPD(constsPtr.Offset(32), rev[2])
	MOVAPD(constsPtr.Offset(48), shuf)
	Comment("pack ray masks into lanes")
	MOVQ(diag, diagMask)
	MOVQ(antidiag, orthoMask)
	tmpOrtho, tmpDiag := XMM(), XMM()
	MOVQ(rank, tmpOrtho)
	MOVQ(file, tmpDiag)
	SHUFPD(U8(0), tmpOrtho, diagMask)
	SHUFPD(U8(0), tmpDiag, orthoMask)
	dataOrtho, dataDiag := XMM(), XMM()
	nonrevOrtho, nonrevDiag := XMM(), XMM()
	posX, posShift := XMM(), XMM()
	Comment("position vector")
	MOVQ(pos, posX)
	MOVDDUP(posX, posX)
	MOVAPD(posX, posShift)
	PSLLQ(U8(1), posShift)
	Comment("occupancy vector")
	MOVQ(occ, dataOrtho)
	MOVDDUP(dataOrtho, dataOrtho)
	MOVAPD(dataOrtho, dataDiag)
	PAND(diagMask, dataOrtho)
	PAND(orthoMask, dataDiag)
	Comment("forward subtraction")
	VPSUBQ(posShift, dataOrtho, nonrevOrtho)
	VPSUBQ(posShift, dataDiag, nonrevDiag)
	Comment("reverse position")
	reverseQuad(posX, rev, shuf)
	PSLLQ(U8(1), posX)
	Comment("reverse occupancy lanes")
	reverseQuad(dataOrtho, rev, shuf)
	reverseQuad(dataDiag, rev, shuf)
	Comment("backward subtraction")
	VPSUBQ(posX, dataOrtho, dataOrtho)
	VPSUBQ(posX, dataDiag, dataDiag)
	Comment("unreverse")
	reverseQuad(dataOrtho, rev, shuf)
	reverseQuad(dataDiag, rev, shuf)
	Comment("xor and mask")
	PXOR(nonrevOrtho, dataOrtho)
	PXOR(nonrevDiag, dataDiag)
	PAND(diagMask, dataOrtho)
	PAND(orthoMask, dataDiag)
	out := XMM()
	PXOR(out, out)
	POR(dataOrtho, out)
	POR(dataDiag, out)
	Comment("extract lanes")
	outOrtho, outDiag := GP64(), GP64()
	PEXTRQ(U8(1), out, outOrtho)
	MOVQ(out, outDiag)
	Store(outOrtho, ReturnIndex(0))
	Store(outDiag, ReturnIndex(1))
	RET()
	Generate()
}

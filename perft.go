package chess

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal-move tree rooted at pos, to the
// given depth. It is the primary correctness/performance test for movegen
// and MakeMove: any discrepancy against a published node count almost
// always traces back to a missed edge case in castling, en passant, or
// promotion handling.
func Perft(pos *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	if depth == 1 {
		// Fast path: count legal moves directly rather than recursing into
		// each child position.
		var pl MoveList
		pos.GeneratePseudoLegal(&pl)
		var n uint64
		for i := 0; i < pl.Len(); i++ {
			if _, ok := pos.MakeMove(pl.At(i)); ok {
				n++
			}
		}
		return n
	}
	var pl MoveList
	pos.GeneratePseudoLegal(&pl)
	var sum uint64
	for i := 0; i < pl.Len(); i++ {
		child, ok := pos.MakeMove(pl.At(i))
		if !ok {
			continue
		}
		sum += Perft(child, depth-1)
	}
	return sum
}

// PerftCase names one published perft scenario: a starting FEN, a search
// depth, and the expected leaf count.
type PerftCase struct {
	Name       string
	FEN        string
	Strictness FenStrictness
	Depth      int
	Want       uint64
}

// PerftCaseResult reports the outcome of running a single PerftCase.
type PerftCaseResult struct {
	Case PerftCase
	Got  uint64
	Err  error
}

// Passed reports whether the case's computed node count matched Want.
func (r PerftCaseResult) Passed() bool {
	return r.Err == nil && r.Got == r.Case.Want
}

// RunPerftSuite runs every case in cases concurrently across a worker pool
// sized to the available CPUs, the same fan-out-over-a-channel shape the
// teacher's PGN scanner used for parsing game chunks in parallel -- useful
// here because the bundled perft suite is dominated by a handful of
// expensive deep cases (startpos to depth 6, Kiwipete to depth 5) that
// benefit from running alongside the cheap ones instead of after them.
func RunPerftSuite(cases []PerftCase) []PerftCaseResult {
	results := make([]PerftCaseResult, len(cases))
	work := make(chan int)

	workers := runtime.NumCPU()
	if workers > len(cases) {
		workers = len(cases)
	}
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range work {
				results[i] = runPerftCase(cases[i])
			}
			return nil
		})
	}
	for i := range cases {
		work <- i
	}
	close(work)
	g.Wait() // no worker returns an error; a bad FEN is reported per-case in Err, not propagated

	return results
}

func runPerftCase(c PerftCase) PerftCaseResult {
	pos, err := ParseFEN(c.FEN, c.Strictness)
	if err != nil {
		return PerftCaseResult{Case: c, Err: err}
	}
	return PerftCaseResult{Case: c, Got: Perft(pos, c.Depth)}
}

// StandardPerftSuite is the set of perft scenarios this package's semantics
// are checked against, spanning standard chess, Chess960/DFRC, and the
// trickiest en passant and double-check edge cases.
func StandardPerftSuite() []PerftCase {
	return []PerftCase{
		{
			Name:  "startpos-depth5",
			FEN:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			Depth: 5,
			Want:  4865609,
		},
		{
			Name:  "startpos-depth6",
			FEN:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			Depth: 6,
			Want:  119060324,
		},
		{
			Name:  "kiwipete-depth4",
			FEN:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			Depth: 4,
			Want:  4085603,
		},
		{
			Name:  "kiwipete-depth5",
			FEN:   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			Depth: 5,
			Want:  193690690,
		},
		{
			Name:  "ep-double-check-depth2",
			FEN:   "4k3/2rn4/8/2K1pP2/8/8/8/8 w - e6 0 1",
			Depth: 2,
			Want:  75,
		},
		{
			Name:  "max-moves-depth1",
			FEN:   "R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - - 0 1",
			Depth: 1,
			Want:  218,
		},
		{
			Name:  "chess960-depth4",
			FEN:   "r1q1k1rn/1p1ppp1p/1npb2b1/p1N3p1/8/1BP4P/PP1PPPP1/1RQ1KRBN w BFag - 0 9",
			Depth: 4,
			Want:  1187103,
		},
		{
			Name:  "ep-pin-depth5",
			FEN:   "8/8/8/KPp4r/1R3p1k/8/4P1P1/8 w - c6 0 1",
			Depth: 5,
			Want:  11030083,
		},
	}
}

package chess

// MatchResult is the outcome of a position, combining every automatic
// game-over condition the chess core is responsible for recognizing.
// Adjudicated results (resignation, draw offers, a human arbiter's ruling)
// are the UGI/match-orchestration collaborator's concern, not this
// package's -- see the teacher's Outcome/Method split in game.go, which
// this type collapses down to the four states the core itself can derive
// from a position and its history.
type MatchResult int

const (
	Ongoing MatchResult = iota
	WhiteWins
	BlackWins
	Draw
)

func (r MatchResult) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// MatchResultSlow determines whether pos is game-over, checking checkmate
// and stalemate first (the only results that depend on whether the side to
// move has a legal move at all), then the three automatic draws: the fifty
// move rule, threefold repetition against history (most recent position
// last, not including pos itself), and insufficient material. It is "slow"
// because it enumerates legal moves and rescans history rather than relying
// on any incrementally maintained state.
func (pos *Position) MatchResultSlow(history []uint64) MatchResult {
	if len(pos.LegalMoves()) == 0 {
		if pos.InCheck() {
			if pos.sideToMove == White {
				return BlackWins
			}
			return WhiteWins
		}
		return Draw
	}
	if pos.ply100Ctr >= 100 {
		return Draw
	}
	if pos.isThreefoldRepetition(history) {
		return Draw
	}
	if !pos.HasSufficientMaterial() {
		return Draw
	}
	return Ongoing
}

// isThreefoldRepetition reports whether pos's hash has already occurred (in
// history, which should include every prior position back to the game
// start or the last irreversible move) at least twice, making pos itself
// the third occurrence. Per the open question in the source this spec was
// distilled from, this uses the faster approximation that does not
// distinguish positions by whether an en passant capture was pseudolegal
// but illegal there; see DESIGN.md.
func (pos *Position) isThreefoldRepetition(history []uint64) bool {
	n := len(history)
	limit := pos.ply100Ctr
	if n < limit {
		limit = n
	}
	count := 1 // pos itself
	for i := 2; i <= limit; i += 2 {
		if history[n-i] == pos.hash {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

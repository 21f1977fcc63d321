package chess

import (
	"fmt"
	"strings"
)

// EncodeUCI renders mov in UCI's long algebraic notation: source square,
// destination square, and (for promotions) a lowercase promotion letter.
// For castling moves in standard chess, dst is expressed as the king's own
// destination square rather than the "captures own rook" square Move.Dst
// stores internally, matching what UCI-speaking GUIs expect to see; in
// Chess960 the rook square is kept.
func EncodeUCI(pos *Position, mov Move) string {
	dst := mov.Dst()
	if mov.IsCastle() {
		rank := mov.Src().Rank()
		if mov.Dst() > mov.Src() {
			dst = NewSquare(FileG, rank)
		} else {
			dst = NewSquare(FileC, rank)
		}
		if pos.chess960 {
			dst = mov.Dst()
		}
	}
	s := mov.Src().String() + dst.String()
	if mov.IsPromotion() {
		s += mov.PromoPiece().String()
	}
	return s
}

// DecodeUCI parses a UCI move string against pos, returning the matching
// pseudolegal Move. It matches against the actual move list rather than
// reconstructing flags from the string directly, so "e1g1" decodes to the
// castle move in standard chess, and a Chess960 castle is matched by its
// king-to-rook text.
func DecodeUCI(pos *Position, s string) (Move, error) {
	if len(s) < 4 {
		return NoMove, fmt.Errorf("chess: invalid UCI move %q", s)
	}
	src, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, err
	}
	dst, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, err
	}
	var promo PieceType = NoPieceType
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return NoMove, fmt.Errorf("chess: invalid UCI promotion letter %q", s)
		}
	}

	var list MoveList
	pos.GeneratePseudoLegal(&list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.Src() != src {
			continue
		}
		candidateDst := m.Dst()
		if m.IsCastle() && !pos.chess960 {
			rank := m.Src().Rank()
			if m.Dst() > m.Src() {
				candidateDst = NewSquare(FileG, rank)
			} else {
				candidateDst = NewSquare(FileC, rank)
			}
		}
		if candidateDst != dst {
			continue
		}
		if m.IsPromotion() {
			if promo != m.PromoPiece() {
				continue
			}
		} else if promo != NoPieceType {
			continue
		}
		return m, nil
	}
	return NoMove, fmt.Errorf("chess: %q is not a legal move in this position", s)
}

// EncodeSAN renders mov in Standard Algebraic Notation, including +/# check
// and checkmate suffixes and full disambiguation when more than one like
// piece can reach the same destination.
func EncodeSAN(pos *Position, mov Move) string {
	if mov.IsCastle() {
		s := "O-O"
		if mov.Dst() < mov.Src() {
			s = "O-O-O"
		}
		return s + checkSuffix(pos, mov)
	}

	piece := pos.PieceAt(mov.Src())
	isCapture := !pos.PieceAt(mov.Dst()).IsEmpty() || mov.IsEnPassant()

	var sb strings.Builder
	if piece.Type() == Pawn {
		if isCapture {
			sb.WriteString(mov.Src().File().String())
		}
	} else {
		sb.WriteString(strings.ToUpper(piece.Type().String()))
		sb.WriteString(disambiguator(pos, mov))
	}
	if isCapture {
		sb.WriteString("x")
	}
	sb.WriteString(mov.Dst().String())
	if mov.IsPromotion() {
		sb.WriteString("=")
		sb.WriteString(strings.ToUpper(mov.PromoPiece().String()))
	}
	sb.WriteString(checkSuffix(pos, mov))
	return sb.String()
}

func checkSuffix(pos *Position, mov Move) string {
	next, ok := pos.MakeMove(mov)
	if !ok || !next.InCheck() {
		return ""
	}
	if len(next.LegalMoves()) == 0 {
		return "#"
	}
	return "+"
}

// disambiguator returns the minimal file/rank/square prefix needed to tell
// mov's source square apart from any other like piece that could also
// legally reach mov's destination.
func disambiguator(pos *Position, mov Move) string {
	piece := pos.PieceAt(mov.Src())
	var sameFile, sameRank, any bool
	var list MoveList
	pos.GeneratePseudoLegal(&list)
	for i := 0; i < list.Len(); i++ {
		other := list.At(i)
		if other.Src() == mov.Src() || other.Dst() != mov.Dst() {
			continue
		}
		if pos.PieceAt(other.Src()) != piece {
			continue
		}
		if _, ok := pos.MakeMove(other); !ok {
			continue
		}
		any = true
		if other.Src().File() == mov.Src().File() {
			sameFile = true
		}
		if other.Src().Rank() == mov.Src().Rank() {
			sameRank = true
		}
	}
	switch {
	case !any:
		return ""
	case !sameFile:
		return mov.Src().File().String()
	case !sameRank:
		return mov.Src().Rank().String()
	default:
		return mov.Src().String()
	}
}

// annotationSuffixes lists trailing tokens DecodeSAN tolerates and discards:
// NAG-style move annotations and evaluation symbols a PGN viewer might have
// appended, plus the "e.p." marker some tools write after an en passant
// capture.
var annotationSuffixes = []string{
	"e.p.", "!!", "??", "!?", "?!", "!", "?", "+", "#",
	"‼", "⁇", "⁉", "⁈", "⩲", "⩱", "±", "∓", "+/-", "-/+",
}

// germanPieceLetters maps German-language SAN piece letters (as used by
// German-language PGN tools) to their English equivalents: S(pringer)=N,
// L(äufer)=B, T(urm)=R, D(ame)=Q. King ("König") already starts with K in
// both languages.
var germanPieceLetters = map[byte]byte{'S': 'N', 'L': 'B', 'T': 'R', 'D': 'Q'}

// unicodePieceLetters maps the Unicode chess glyphs to their ASCII piece
// letters; color doesn't matter for parsing since SAN only ever names the
// moving side's own piece.
var unicodePieceLetters = map[string]byte{
	"♔": 'K', "♕": 'Q', "♖": 'R', "♗": 'B', "♘": 'N',
	"♚": 'K', "♛": 'Q', "♜": 'R', "♝": 'B', "♞": 'N',
}

// cleanSAN strips annotation suffixes, normalizes capture indicators and
// German/Unicode piece letters, and drops the "e.p." marker, all in whatever
// order they appear, to tolerate the looser SAN variants real PGN files
// contain.
func cleanSAN(san string) string {
	s := san
	for {
		trimmed := false
		for _, suf := range annotationSuffixes {
			if strings.HasSuffix(s, suf) {
				s = strings.TrimSuffix(s, suf)
				trimmed = true
			}
		}
		if !trimmed {
			break
		}
	}
	s = strings.TrimSpace(s)
	for glyph, letter := range unicodePieceLetters {
		if strings.HasPrefix(s, glyph) {
			s = string(letter) + s[len(glyph):]
			break
		}
	}
	s = strings.ReplaceAll(s, ":", "x")
	s = strings.ReplaceAll(s, "×", "x")
	if len(s) > 0 {
		if repl, ok := germanPieceLetters[s[0]]; ok {
			s = string(repl) + s[1:]
		}
	}
	return s
}

// DecodeSAN parses a SAN move string against pos. It tolerates trailing
// annotation suffixes, German and Unicode piece letters, ":"/"×" as capture
// markers, and both "O-O"/"0-0" castling spellings. An input matching more
// than one legal move (e.g. a missing disambiguator that was actually
// needed) is an error naming both candidates rather than guessing.
func DecodeSAN(pos *Position, san string) (Move, error) {
	san = cleanSAN(san)
	if san == "O-O" || san == "0-0" {
		return findCastle(pos, Kingside)
	}
	if san == "O-O-O" || san == "0-0-0" {
		return findCastle(pos, Queenside)
	}

	legal := pos.LegalMoves()
	for _, m := range legal {
		if EncodeSAN(pos, m) == san {
			return m, nil
		}
	}
	// Fall back to a looser match ignoring disambiguation/check suffixes,
	// which tolerates SAN text with superfluous or missing disambiguators.
	target, promo, pieceType, destFile, destRank, srcFile, srcRank, isCapture, err := parseLooseSAN(san)
	if err != nil {
		return NoMove, err
	}
	_ = target
	var candidates []Move
	for _, m := range legal {
		if m.Dst().File() != destFile || m.Dst().Rank() != destRank {
			continue
		}
		if pos.PieceAt(m.Src()).Type() != pieceType {
			continue
		}
		if srcFile != NoFile && m.Src().File() != srcFile {
			continue
		}
		if srcRank != NoRank && m.Src().Rank() != srcRank {
			continue
		}
		if m.IsPromotion() && m.PromoPiece() != promo {
			continue
		}
		if !m.IsPromotion() && promo != NoPieceType {
			continue
		}
		captured := !pos.PieceAt(m.Dst()).IsEmpty() || m.IsEnPassant()
		if isCapture != captured {
			continue
		}
		candidates = append(candidates, m)
	}
	switch len(candidates) {
	case 0:
		return NoMove, fmt.Errorf("chess: %q is not a legal move in this position", san)
	case 1:
		return candidates[0], nil
	default:
		return NoMove, fmt.Errorf("chess: %q is ambiguous between %s and %s", san,
			EncodeUCI(pos, candidates[0]), EncodeUCI(pos, candidates[1]))
	}
}

// DecodeMoveText parses s as either compact UCI text or extended SAN text,
// trying UCI first since it is unambiguous and cheap to rule out.
func DecodeMoveText(pos *Position, s string) (Move, error) {
	if m, err := DecodeUCI(pos, s); err == nil {
		return m, nil
	}
	return DecodeSAN(pos, s)
}

func findCastle(pos *Position, side CastleSide) (Move, error) {
	var list MoveList
	pos.GeneratePseudoLegal(&list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if !m.IsCastle() {
			continue
		}
		s := Kingside
		if m.Dst() < m.Src() {
			s = Queenside
		}
		if s == side {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("chess: no legal castle of that side")
}

// NoFile/NoRank mark an absent disambiguator in parseLooseSAN.
const (
	NoFile File = 0xFF
	NoRank Rank = 0xFF
)

func parseLooseSAN(san string) (target string, promo PieceType, pieceType PieceType, destFile File, destRank Rank, srcFile File, srcRank Rank, isCapture bool, err error) {
	s := san
	srcFile, srcRank = NoFile, NoRank
	promo = NoPieceType
	pieceType = Pawn
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		switch s[idx+1] {
		case 'Q':
			promo = Queen
		case 'R':
			promo = Rook
		case 'B':
			promo = Bishop
		case 'N':
			promo = Knight
		}
		s = s[:idx]
	}
	if len(s) > 0 {
		switch s[0] {
		case 'N':
			pieceType, s = Knight, s[1:]
		case 'B':
			pieceType, s = Bishop, s[1:]
		case 'R':
			pieceType, s = Rook, s[1:]
		case 'Q':
			pieceType, s = Queen, s[1:]
		case 'K':
			pieceType, s = King, s[1:]
		}
	}
	if idx := strings.IndexByte(s, 'x'); idx >= 0 {
		isCapture = true
		s = s[:idx] + s[idx+1:]
	}
	if len(s) < 2 {
		return "", 0, 0, 0, 0, 0, 0, false, fmt.Errorf("chess: invalid SAN move %q", san)
	}
	destStr := s[len(s)-2:]
	prefix := s[:len(s)-2]
	destSq, err := ParseSquare(destStr)
	if err != nil {
		return "", 0, 0, 0, 0, 0, 0, false, fmt.Errorf("chess: invalid SAN move %q: %w", san, err)
	}
	destFile, destRank = destSq.File(), destSq.Rank()
	for _, ch := range prefix {
		switch {
		case ch >= 'a' && ch <= 'h':
			srcFile = File(ch - 'a')
		case ch >= '1' && ch <= '8':
			srcRank = Rank(ch - '1')
		}
	}
	return san, promo, pieceType, destFile, destRank, srcFile, srcRank, isCapture, nil
}

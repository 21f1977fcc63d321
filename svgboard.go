package chess

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// squarePixels is the edge length, in SVG user units, of one board square.
const squarePixels = 60

// WriteSVG renders pos as an 8x8 diagram, writing a self-contained SVG
// document to w. It complements the text-based Draw helpers on bitboard and
// Position with a form suitable for embedding in reports or a browser tab.
func (pos *Position) WriteSVG(w io.Writer) {
	side := squarePixels * numOfSquaresInRow
	canvas := svg.New(w)
	canvas.Start(side, side)
	defer canvas.End()

	for r := 0; r < numOfSquaresInRow; r++ {
		for f := 0; f < numOfSquaresInRow; f++ {
			x := f * squarePixels
			// rank 8 is drawn at the top of the image.
			y := (numOfSquaresInRow - 1 - r) * squarePixels
			fill := "#eeeed2"
			if (r+f)%2 == 0 {
				fill = "#769656"
			}
			canvas.Rect(x, y, squarePixels, squarePixels, "fill:"+fill)

			sq := NewSquare(File(f), Rank(r))
			piece := pos.PieceAt(sq)
			if piece.IsEmpty() {
				continue
			}
			textColor := "#000000"
			if piece.Color() == Black {
				textColor = "#202020"
			}
			canvas.Text(x+squarePixels/2, y+squarePixels*2/3, piece.Unicode(),
				"text-anchor:middle;font-size:36px;fill:"+textColor)
		}
	}
}

// Command board renders a FEN position, either as plain text to stdout
// (in the same layout the teacher package's perft debug driver used) or
// as an SVG diagram written to a file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo"

	chesscore "github.com/lucidchess/core"
	"github.com/lucidchess/core/fen"
)

const squareSize = 60

func main() {
	fenFlag := flag.String("fen", "", "FEN of the position to render (default: standard starting position)")
	listMoves := flag.Bool("moves", false, "also print every legal move in SAN")
	svgOut := flag.String("svg", "", "write an SVG diagram to this path instead of printing text")
	flag.Parse()

	f := *fenFlag
	if f == "" {
		f = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	}

	situation, err := fen.Parse(f, chesscore.Standard{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *svgOut != "" {
		if err := writeSVG(*svgOut, &situation.Board); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		printText(&situation.Board)
	}

	fmt.Printf("side to move: %s\n", situation.SideToMove)
	if situation.InCheck() {
		fmt.Println("in check")
	}
	if *listMoves {
		printLegalMoves(situation)
	}
}

// printText renders the board the way the teacher's perft debug driver
// did: one rank per line, files lettered below, a '.' for empty squares.
func printText(b *chesscore.Board) {
	var out strings.Builder
	for rank := 7; rank >= 0; rank-- {
		out.WriteByte(byte(rank) + '1')
		out.WriteString("  ")
		for file := 0; file < 8; file++ {
			p, ok := b.PieceAt(chesscore.SquareAt(file, rank))
			symbol := byte('.')
			if ok {
				symbol = p.Letter()
			}
			out.WriteByte(symbol)
			out.WriteString("  ")
		}
		out.WriteByte('\n')
	}
	out.WriteString("   a  b  c  d  e  f  g  h\n")
	fmt.Print(out.String())
}

// writeSVG draws b as an 8x8 diagram: alternating square fills, and each
// occupied square labeled with its FEN letter (a placeholder for real
// piece artwork, which this module does not ship).
func writeSVG(path string, b *chesscore.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating svg file: %w", err)
	}
	defer f.Close()

	canvas := svg.New(f)
	dim := squareSize * 8
	canvas.Start(dim, dim)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x := file * squareSize
			y := (7 - rank) * squareSize
			fill := "#f0d9b5"
			if (file+rank)%2 == 0 {
				fill = "#b58863"
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+fill)

			p, ok := b.PieceAt(chesscore.SquareAt(file, rank))
			if !ok {
				continue
			}
			textColor := "#000000"
			if p.Color == chesscore.White {
				textColor = "#ffffff"
			}
			canvas.Text(x+squareSize/2, y+squareSize/2+8, string(p.Letter()),
				fmt.Sprintf("text-anchor:middle;font-size:28px;fill:%s", textColor))
		}
	}
	return nil
}

func printLegalMoves(s *chesscore.Situation) {
	legal := s.LegalMoves()
	sans := make([]string, 0, legal.Len())
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		next := s.ApplyMove(m)
		nextLegal := next.LegalMoves()
		sans = append(sans, chesscore.SAN(m, s, legal, next.InCheck(), nextLegal.Len() == 0))
	}
	fmt.Printf("legal moves (%d): %s\n", len(sans), strings.Join(sans, " "))
}

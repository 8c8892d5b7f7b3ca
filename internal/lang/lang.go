//
// Moderato - a chess problem solver in Go
//
// MIT License
//
// Copyright (c) 2021-2026 Moderato contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package lang holds the locale-dependent vocabulary format-A input is
// written in (spec.md §6: "three locales: English, French, German") and
// the piece-letter tables the solution formatter needs to print
// long-algebraic notation in the problem's own locale.
package lang

import (
	"strings"

	"github.com/frankkopp/moderato/internal/piece"
)

// Locale names one of the three vocabularies format-A input may be
// written in.
type Locale int

const (
	English Locale = iota
	French
	German
	localeLength
)

var localeNames = [localeLength]string{"English", "French", "German"}

func (l Locale) String() string {
	if l < 0 || l >= localeLength {
		return "-"
	}
	return localeNames[l]
}

// ParseLocale maps a case-insensitive locale name (as it would appear in
// a batch config or -loglvl-style flag) to a Locale.
func ParseLocale(s string) (Locale, bool) {
	for l, name := range localeNames {
		if strings.EqualFold(name, s) {
			return Locale(l), true
		}
	}
	return English, false
}

// Keywords is the set of command and option words format-A's tokenizer
// matches against, one table per locale. Every field is the exact
// token parseproblem looks for, case-sensitively, the way the original
// solver's keyword tables are laid out.
type Keywords struct {
	BeginProblem, EndProblem, NextProblem string
	Remark, Condition, Option, Stipulation, Pieces string
	White, Black string
	Circe string

	Try, Defence, SetPlay, NullMoves, WhiteToPlay, Variation string
	MoveNumbers, NoThreat, EnPassant, NoBoard, NoShortVariations string
	HalfDuplex, NoCastling string
}

var keywordTables = [localeLength]Keywords{
	English: {
		BeginProblem: "BeginProblem", EndProblem: "EndProblem", NextProblem: "NextProblem",
		Remark: "Remark", Condition: "Condition", Option: "Option", Stipulation: "Stipulation", Pieces: "Pieces",
		White: "White", Black: "Black", Circe: "Circe",
		Try: "Try", Defence: "Defence", SetPlay: "SetPlay", NullMoves: "NullMoves", WhiteToPlay: "WhiteToPlay",
		Variation: "Variation", MoveNumbers: "MoveNumbers", NoThreat: "NoThreat", EnPassant: "EnPassant",
		NoBoard: "NoBoard", NoShortVariations: "NoShortVariations", HalfDuplex: "HalfDuplex", NoCastling: "NoCastling",
	},
	French: {
		BeginProblem: "DebutProbleme", EndProblem: "FinProbleme", NextProblem: "ProblemeSuivant",
		Remark: "Remarque", Condition: "Condition", Option: "Option", Stipulation: "Stipulation", Pieces: "Pieces",
		White: "Blanc", Black: "Noir", Circe: "Circe",
		Try: "Essai", Defence: "Defense", SetPlay: "Apparent", NullMoves: "CoupsNuls", WhiteToPlay: "BlancAJouer",
		Variation: "Variante", MoveNumbers: "NumeroterLesCoups", NoThreat: "SansMenace", EnPassant: "EnPassant",
		NoBoard: "SansEchiquier", NoShortVariations: "SansVariantesCourtes", HalfDuplex: "DemiDuplex", NoCastling: "SansRoquer",
	},
	German: {
		BeginProblem: "BeginProblem", EndProblem: "EndProblem", NextProblem: "NextProblem",
		Remark: "Bemerkung", Condition: "Bedingung", Option: "Option", Stipulation: "Forderung", Pieces: "Steine",
		White: "Weiss", Black: "Schwarz", Circe: "Circe",
		Try: "Verfuehrung", Defence: "Verteidigung", SetPlay: "Satzspiel", NullMoves: "NullZuege", WhiteToPlay: "WeissZiehtAn",
		Variation: "Variante", MoveNumbers: "ZugNummern", NoThreat: "OhneDrohung", EnPassant: "EnPassant",
		NoBoard: "OhneBrett", NoShortVariations: "OhneKurzVarianten", HalfDuplex: "HalbDuplex", NoCastling: "KeineRochade",
	},
}

// Table returns the keyword vocabulary for l.
func Table(l Locale) Keywords {
	if l < 0 || l >= localeLength {
		l = English
	}
	return keywordTables[l]
}

// PieceLetters is the locale's one-or-two-letter code for each piece
// kind, spec.md §6's "Kind codes: K,Q,R,B,S,P for orthodox; G, N, AM for
// fairy", the letter used both when reading format-A's Pieces command
// and when the solution formatter writes moves.
type PieceLetters [10]string

var pieceLetterTables = [localeLength]PieceLetters{
	English: lettersFor("K", "Q", "R", "B", "S", "", "G", "N", "AM"),
	French:  lettersFor("R", "D", "T", "F", "C", "", "G", "N", "AM"),
	German:  lettersFor("K", "D", "T", "L", "S", "", "G", "N", "AM"),
}

// pieceCodeTables mirrors pieceLetterTables but fills in the Pawn code
// spec.md §6 lists ("K,Q,R,B,S,P for orthodox"): format-A's Pieces
// command needs a pawn letter even though long-algebraic notation
// conventionally omits one, so input parsing (KindForLetter) and move
// formatting (Letters/Letter) intentionally disagree on that one kind.
var pieceCodeTables = [localeLength]PieceLetters{
	English: lettersFor("K", "Q", "R", "B", "S", "P", "G", "N", "AM"),
	French:  lettersFor("R", "D", "T", "F", "C", "P", "G", "N", "AM"),
	German:  lettersFor("K", "D", "T", "L", "S", "B", "G", "N", "AM"),
}

func lettersFor(king, queen, rook, bishop, knight, pawn, grasshopper, nightrider, amazon string) PieceLetters {
	var pl PieceLetters
	pl[piece.King] = king
	pl[piece.Queen] = queen
	pl[piece.Rook] = rook
	pl[piece.Bishop] = bishop
	pl[piece.Knight] = knight
	pl[piece.Pawn] = pawn
	pl[piece.Grasshopper] = grasshopper
	pl[piece.Nightrider] = nightrider
	pl[piece.Amazon] = amazon
	return pl
}

// Letters returns the piece-letter table for l.
func Letters(l Locale) PieceLetters {
	if l < 0 || l >= localeLength {
		l = English
	}
	return pieceLetterTables[l]
}

// Letter is the single-kind lookup the formatter (search.Namer) calls
// per move.
func (pl PieceLetters) Letter(k piece.Kind) string {
	if k < 0 || int(k) >= len(pl) {
		return ""
	}
	return pl[k]
}

// KindForLetter resolves a Pieces-command token back to a Kind, used by
// parseproblem when reading a Pieces White/Black line.
func (l Locale) KindForLetter(letter string) (piece.Kind, bool) {
	if letter == "" {
		return piece.KindNone, false
	}
	if l < 0 || l >= localeLength {
		l = English
	}
	letters := pieceCodeTables[l]
	for k := piece.King; k <= piece.Amazon; k++ {
		if letters.Letter(k) == letter {
			return k, true
		}
	}
	return piece.KindNone, false
}

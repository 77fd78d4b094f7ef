package arith

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// TokenType classifies a Token.
type TokenType int

const (
	TokEnd TokenType = iota
	TokPlus
	TokMinus
	TokMult
	TokDivide
	TokOParen
	TokCParen
	TokNumber
)

var tokenNames = map[TokenType]string{
	TokEnd:    "end of input",
	TokPlus:   "'+'",
	TokMinus:  "'-'",
	TokMult:   "'*'",
	TokDivide: "'/'",
	TokOParen: "'('",
	TokCParen: "')'",
	TokNumber: "number",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok == true {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// A Token is a lexical unit. Value is only meaningful when Type is
// TokNumber. Pos is the byte offset of the token in the input.
type Token struct {
	Type  TokenType
	Value float64
	Pos   int
}

func (t Token) String() string {
	if t.Type == TokNumber {
		return "number " + strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Type.String()
}

const eof rune = -1

// A Lexer splits an input string into tokens on demand. It always
// holds exactly one current Token, and Next replaces it by the
// following one.
//
// A Lexer carries mutable state and must not be shared between
// goroutines.
type Lexer struct {
	input string
	// pos is the offset of the byte after ch
	pos int
	ch  rune
	tok Token
	// set when the last number stopped on its second '.'
	strayDot bool
}

// NewLexer creates a Lexer primed with input.
func NewLexer(input string) (*Lexer, error) {
	l := &Lexer{}
	if err := l.Prime(input); err != nil {
		return nil, err
	}
	return l, nil
}

// Prime resets the Lexer on input and scans its first token.
func (l *Lexer) Prime(input string) error {
	l.input = input
	l.pos = 0
	l.tok = Token{}
	l.strayDot = false
	l.advance()
	return l.Next()
}

// Token returns the current token.
func (l *Lexer) Token() Token {
	return l.tok
}

// Next scans the token starting at the current character. On error
// the current token is left unchanged.
func (l *Lexer) Next() error {
	if l.strayDot == true {
		return l.errorAt(l.offset())
	}

	for l.ch == ' ' {
		l.advance()
	}

	start := l.offset()

	if l.ch == eof {
		l.tok = Token{Type: TokEnd, Pos: start}
		return nil
	}

	if t, ok := runeToken[l.ch]; ok == true {
		l.advance()
		l.tok = Token{Type: t, Pos: start}
		return nil
	}

	if isDigit(l.ch) || l.ch == '.' {
		return l.lexNumber(start)
	}

	return l.errorAt(start)
}

// lexNumber consumes a run of digits holding at most one '.'.
func (l *Lexer) lexNumber(start int) error {
	dot := false
	for isDigit(l.ch) || (l.ch == '.' && dot == false) {
		if l.ch == '.' {
			dot = true
		}
		l.advance()
	}
	l.strayDot = l.ch == '.'

	value, err := strconv.ParseFloat(l.input[start:l.offset()], 64)
	if err != nil && errors.Is(err, strconv.ErrRange) == false {
		return l.errorAt(start)
	}

	l.tok = Token{Type: TokNumber, Value: value, Pos: start}
	return nil
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		l.ch = eof
		l.pos = len(l.input) + 1
		return
	}
	l.ch = rune(l.input[l.pos])
	l.pos++
}

// offset returns the byte offset of the current character.
func (l *Lexer) offset() int {
	return l.pos - 1
}

func (l *Lexer) errorAt(pos int) error {
	ru, _ := utf8.DecodeRuneInString(l.input[pos:])
	return &LexError{Char: ru, Pos: pos}
}

func isDigit(ru rune) bool {
	return ru >= '0' && ru <= '9'
}

// static data

var runeToken = make(map[rune]TokenType)

func registerRuneToken(ru rune, t TokenType) {
	runeToken[ru] = t
}

func init() {
	registerRuneToken('+', TokPlus)
	registerRuneToken('-', TokMinus)
	registerRuneToken('*', TokMult)
	registerRuneToken('/', TokDivide)
	registerRuneToken('(', TokOParen)
	registerRuneToken(')', TokCParen)
}

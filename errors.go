package arith

import "fmt"

// A LexError is returned when a character does not start any valid
// token.
type LexError struct {
	Char rune
	Pos  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character %q at position %d", e.Char, e.Pos)
}

// An UnexpectedTokenError is returned when a number or an opening
// parenthesis was expected.
type UnexpectedTokenError struct {
	Token Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected %s at position %d", e.Token, e.Token.Pos)
}

// An UnclosedParenthesisError is returned when the parenthesis
// opened by Open is not closed. Found is the token read instead of
// the closing parenthesis.
type UnclosedParenthesisError struct {
	Open  Token
	Found Token
}

func (e *UnclosedParenthesisError) Error() string {
	return fmt.Sprintf("missing ')' for '(' at position %d, got %s at position %d",
		e.Open.Pos, e.Found, e.Found.Pos)
}

// A TrailingInputError is returned when input remains after a
// complete expression. Token is the first token not consumed.
type TrailingInputError struct {
	Token Token
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("trailing input: %s at position %d", e.Token, e.Token.Pos)
}

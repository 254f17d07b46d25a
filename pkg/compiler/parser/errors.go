package parser

import (
	"fmt"

	"github.com/agenthands/monkey/pkg/compiler/lexer"
)

// UnexpectedTokenError is recorded when the token after curTok is not the
// one the grammar requires.
type UnexpectedTokenError struct {
	Expected lexer.Kind
	Got      lexer.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected next token to be %s, got %s instead", e.Expected, e.Got.Kind)
}

// Position returns the 1-based line and column of the offending token.
func (e *UnexpectedTokenError) Position() (line, column uint32) {
	return e.Got.Line, e.Got.Column
}

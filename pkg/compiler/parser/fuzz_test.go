package parser_test

import (
	"testing"

	"github.com/agenthands/monkey/pkg/compiler/lexer"
	"github.com/agenthands/monkey/pkg/compiler/parser"
)

func FuzzParseProgram(f *testing.F) {
	f.Add("let x = 5;")
	f.Add("return 10;")
	f.Add("let = 5; let x 5;")
	f.Add("let x = 5")
	f.Add("if (x == 1) { return true; } else { return false; }")

	f.Fuzz(func(t *testing.T, src string) {
		toks := lexer.Collect(src)
		s := &countingSource{tokens: toks}
		p := parser.New(s)
		program := p.ParseProgram()

		if limit := len(toks) + 3; s.calls > limit {
			t.Fatalf("pulled %d tokens from a %d token stream", s.calls, len(toks))
		}
		if len(program.Statements)+len(p.Errors()) > len(toks) {
			t.Fatalf("more statements and errors than tokens")
		}
	})
}

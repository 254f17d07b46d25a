package lexer

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindIllegal Kind = iota
	KindEOF

	KindIdent // add, foobar, x, y
	KindInt   // 1343456

	KindAssign   // =
	KindPlus     // +
	KindMinus    // -
	KindBang     // !
	KindAsterisk // *
	KindSlash    // /
	KindLT       // <
	KindGT       // >
	KindEQ       // ==
	KindNotEQ    // !=

	KindComma     // ,
	KindSemicolon // ;
	KindLParen    // (
	KindRParen    // )
	KindLBrace    // {
	KindRBrace    // }

	KindFunction
	KindLet
	KindTrue
	KindFalse
	KindIf
	KindElse
	KindReturn
)

var kindNames = [...]string{
	KindIllegal:   "ILLEGAL",
	KindEOF:       "EOF",
	KindIdent:     "IDENT",
	KindInt:       "INT",
	KindAssign:    "=",
	KindPlus:      "+",
	KindMinus:     "-",
	KindBang:      "!",
	KindAsterisk:  "*",
	KindSlash:     "/",
	KindLT:        "<",
	KindGT:        ">",
	KindEQ:        "==",
	KindNotEQ:     "!=",
	KindComma:     ",",
	KindSemicolon: ";",
	KindLParen:    "(",
	KindRParen:    ")",
	KindLBrace:    "{",
	KindRBrace:    "}",
	KindFunction:  "FUNCTION",
	KindLet:       "LET",
	KindTrue:      "TRUE",
	KindFalse:     "FALSE",
	KindIf:        "IF",
	KindElse:      "ELSE",
	KindReturn:    "RETURN",
}

// String returns the name used for k in diagnostics.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "ILLEGAL"
}

// Token represents a lexical unit pointing back to the source.
type Token struct {
	Kind    Kind
	Literal string
	Offset  uint32
	Line    uint32
	Column  uint32
}

// keywords is never written after package initialisation.
var keywords = map[string]Kind{
	"fn":     KindFunction,
	"let":    KindLet,
	"true":   KindTrue,
	"false":  KindFalse,
	"if":     KindIf,
	"else":   KindElse,
	"return": KindReturn,
}

// LookupIdent classifies an identifier literal as a keyword or KindIdent.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return KindIdent
}

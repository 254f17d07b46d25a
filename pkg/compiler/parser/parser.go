package parser

import (
	"context"
	"io"
	"log/slog"
	"math"

	"github.com/agenthands/monkey/pkg/compiler/ast"
	"github.com/agenthands/monkey/pkg/compiler/lexer"
)

// TokenSource yields tokens one at a time. It must never block and must keep
// returning a KindEOF token once the input is exhausted.
type TokenSource interface {
	Next() lexer.Token
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger routes parser trace output to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Parser turns a token stream into a Program. A Parser is single-use: its
// source is consumed by one call to ParseProgram.
type Parser struct {
	src     TokenSource
	curTok  lexer.Token
	peekTok lexer.Token

	errors  []*UnexpectedTokenError
	skipped []lexer.Token

	logger *slog.Logger
}

func New(src TokenSource, opts ...Option) *Parser {
	p := &Parser{
		src:    src,
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
	for _, opt := range opts {
		opt(p)
	}
	// Read two tokens, so curTok and peekTok are both set
	p.nextToken()
	p.nextToken()
	return p
}

// ParseString scans and parses src in one step.
func ParseString(src string, opts ...Option) (*ast.Program, []string) {
	p := New(lexer.NewScanner(src), opts...)
	program := p.ParseProgram()
	return program, p.Errors()
}

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.src.Next()
}

// ParseProgram parses statements until EOF. It never fails: malformed
// statements are left out of the Program and reported through Errors.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(lexer.KindEOF) {
		if stmt, ok := p.parseStatement(); ok {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	p.logger.Debug("parse finished",
		"statements", len(program.Statements),
		"errors", len(p.errors),
		"skipped", len(p.skipped),
	)
	return program
}

func (p *Parser) parseStatement() (ast.Statement, bool) {
	switch p.curTok.Kind {
	case lexer.KindLet:
		return p.parseLetStatement()
	case lexer.KindReturn:
		return p.parseReturnStatement()
	default:
		// No statement form starts with this token yet; it is dropped
		// without a diagnostic.
		p.skipped = append(p.skipped, p.curTok)
		if p.logger.Enabled(context.Background(), slog.LevelDebug) {
			p.logger.Debug("token skipped",
				"kind", p.curTok.Kind.String(),
				"literal", p.curTok.Literal,
				"line", p.curTok.Line,
			)
		}
		return nil, false
	}
}

func (p *Parser) parseLetStatement() (ast.Statement, bool) {
	stmt := &ast.LetStatement{Token: p.curTok}

	if !p.expectPeek(lexer.KindIdent) {
		return nil, false
	}

	stmt.Name = ast.Identifier{Token: p.curTok, Value: p.curTok.Literal}

	if !p.expectPeek(lexer.KindAssign) {
		return nil, false
	}

	// TODO: parse the value expression instead of skipping to the terminator
	p.skipToTerminator()
	return stmt, true
}

func (p *Parser) parseReturnStatement() (ast.Statement, bool) {
	stmt := &ast.ReturnStatement{Token: p.curTok}

	p.nextToken()

	// TODO: parse the return value expression
	p.skipToTerminator()
	return stmt, true
}

// skipToTerminator leaves curTok on the next semicolon, or on EOF when the
// statement is unterminated.
func (p *Parser) skipToTerminator() {
	for !p.curTokenIs(lexer.KindSemicolon) && !p.curTokenIs(lexer.KindEOF) {
		p.nextToken()
	}
}

func (p *Parser) curTokenIs(k lexer.Kind) bool {
	return p.curTok.Kind == k
}

func (p *Parser) peekTokenIs(k lexer.Kind) bool {
	return p.peekTok.Kind == k
}

// expectPeek advances only when the peek token has kind k. Otherwise it
// records a diagnostic and leaves the window untouched.
func (p *Parser) expectPeek(k lexer.Kind) bool {
	if p.peekTokenIs(k) {
		p.nextToken()
		return true
	}
	p.peekError(k)
	return false
}

func (p *Parser) peekError(k lexer.Kind) {
	err := &UnexpectedTokenError{Expected: k, Got: p.peekTok}
	p.errors = append(p.errors, err)
	p.logger.Debug("unexpected token", "error", err.Error(), "line", p.peekTok.Line)
}

// Errors returns the recorded diagnostics in source order.
func (p *Parser) Errors() []string {
	msgs := make([]string, len(p.errors))
	for i, err := range p.errors {
		msgs[i] = err.Error()
	}
	return msgs
}

// Diagnostics returns the recorded diagnostics with their positions.
func (p *Parser) Diagnostics() []*UnexpectedTokenError {
	out := make([]*UnexpectedTokenError, len(p.errors))
	copy(out, p.errors)
	return out
}

// Skipped returns tokens the statement dispatcher dropped because no
// statement form begins with them.
func (p *Parser) Skipped() []lexer.Token {
	out := make([]lexer.Token, len(p.skipped))
	copy(out, p.skipped)
	return out
}

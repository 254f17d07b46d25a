package ast

import (
	"strings"

	"github.com/agenthands/monkey/pkg/compiler/lexer"
)

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement represents a standalone unit of execution.
type Statement interface {
	Node
	stmtNode()
}

// Expression represents a construct that yields a value.
type Expression interface {
	Node
	exprNode()
}

// Program is the root node.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// Identifier: NAME
type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }
func (i *Identifier) exprNode()            {}

// LetStatement: let NAME = EXPR ;
type LetStatement struct {
	Token lexer.Token
	Name  Identifier
	Value Expression
}

func (l *LetStatement) TokenLiteral() string { return l.Token.Literal }
func (l *LetStatement) stmtNode()            {}

func (l *LetStatement) String() string {
	var out strings.Builder
	out.WriteString(l.TokenLiteral())
	out.WriteString(" ")
	out.WriteString(l.Name.String())
	out.WriteString(" = ")
	if l.Value != nil {
		out.WriteString(l.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ReturnStatement: return EXPR ;
type ReturnStatement struct {
	Token       lexer.Token
	ReturnValue Expression
}

func (r *ReturnStatement) TokenLiteral() string { return r.Token.Literal }
func (r *ReturnStatement) stmtNode()            {}

func (r *ReturnStatement) String() string {
	var out strings.Builder
	out.WriteString(r.TokenLiteral())
	out.WriteString(" ")
	if r.ReturnValue != nil {
		out.WriteString(r.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

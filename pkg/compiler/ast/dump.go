package ast

// ProgramTree is a plain, encoder-friendly view of a Program.
type ProgramTree struct {
	Statements []StatementTree `yaml:"statements" json:"statements"`
}

// StatementTree describes a single statement of a ProgramTree.
type StatementTree struct {
	Kind   string `yaml:"kind" json:"kind"`
	Token  string `yaml:"token" json:"token"`
	Line   uint32 `yaml:"line" json:"line"`
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Source string `yaml:"source" json:"source"`
}

// Dump flattens p into a ProgramTree, keeping statement order.
func Dump(p *Program) ProgramTree {
	tree := ProgramTree{Statements: make([]StatementTree, 0, len(p.Statements))}
	for _, s := range p.Statements {
		tree.Statements = append(tree.Statements, dumpStatement(s))
	}
	return tree
}

func dumpStatement(s Statement) StatementTree {
	switch s := s.(type) {
	case *LetStatement:
		return StatementTree{
			Kind:   "let",
			Token:  s.Token.Literal,
			Line:   s.Token.Line,
			Name:   s.Name.Value,
			Source: s.String(),
		}
	case *ReturnStatement:
		return StatementTree{
			Kind:   "return",
			Token:  s.Token.Literal,
			Line:   s.Token.Line,
			Source: s.String(),
		}
	default:
		return StatementTree{
			Kind:   "unknown",
			Token:  s.TokenLiteral(),
			Source: s.String(),
		}
	}
}

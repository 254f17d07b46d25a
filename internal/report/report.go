// Package report renders parse results for terminals and machine consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/agenthands/monkey/internal/config"
	"github.com/agenthands/monkey/pkg/compiler/ast"
	"github.com/agenthands/monkey/pkg/compiler/lexer"
	"github.com/agenthands/monkey/pkg/compiler/parser"
)

var (
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	PositionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	KindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("44")).Bold(true)
)

// WriteProgram encodes program in the given format.
func WriteProgram(w io.Writer, program *ast.Program, format string) error {
	switch format {
	case config.FormatText, "":
		for _, s := range program.Statements {
			if _, err := fmt.Fprintln(w, s.String()); err != nil {
				return err
			}
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Dump(program)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ast.Dump(program)); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// FormatDiagnostic renders one diagnostic as "line:col: message".
func FormatDiagnostic(d *parser.UnexpectedTokenError, color bool) string {
	line, col := d.Position()
	pos := fmt.Sprintf("%d:%d:", line, col)
	if !color {
		return pos + " " + d.Error()
	}
	return PositionStyle.Render(pos) + " " + ErrorStyle.Render(d.Error())
}

// WriteDiagnostics writes one line per diagnostic, in source order.
func WriteDiagnostics(w io.Writer, diags []*parser.UnexpectedTokenError, color bool) error {
	for _, d := range diags {
		if _, err := fmt.Fprintln(w, FormatDiagnostic(d, color)); err != nil {
			return err
		}
	}
	return nil
}

// WriteTokens writes one token per line as "line:col KIND literal".
func WriteTokens(w io.Writer, tokens []lexer.Token, color bool) error {
	for _, tok := range tokens {
		kind := tok.Kind.String()
		if color {
			kind = KindStyle.Render(kind)
		}
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, kind, tok.Literal); err != nil {
			return err
		}
	}
	return nil
}

package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseStdin(t *testing.T) {
	stdout, stderr, err := run(t, "let x = 5; return x;", "parse", "-")
	if err != nil {
		t.Fatalf("parse failed: %v (stderr %q)", err, stderr)
	}
	if stdout != "let x = ;\nreturn ;\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestParseReportsDiagnostics(t *testing.T) {
	stdout, stderr, err := run(t, "let = 5;\nlet y = 1;", "parse", "--no-color")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	if stdout != "let y = ;\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "1:5: expected next token to be IDENT, got = instead\n" {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestParseFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.mk")
	if err := os.WriteFile(path, []byte("let answer = 42;"), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := run(t, "", "parse", "--format", "yaml", path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for _, want := range []string{"kind: let", "name: answer", "source: let answer = ;"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("yaml output missing %q:\n%s", want, stdout)
		}
	}
}

func TestParseConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "monkey.toml")
	if err := os.WriteFile(cfgPath, []byte("[output]\nformat = \"json\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := run(t, "return 1;", "--config", cfgPath, "parse")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !strings.Contains(stdout, `"kind": "return"`) {
		t.Errorf("expected json output, got %q", stdout)
	}
}

func TestParseRejectsUnknownFormat(t *testing.T) {
	if _, _, err := run(t, "", "parse", "--format", "xml"); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestParseMissingFile(t *testing.T) {
	_, _, err := run(t, "", "parse", filepath.Join(t.TempDir(), "missing.mk"))
	if err == nil || errors.Is(err, errDiagnostics) {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestTokens(t *testing.T) {
	stdout, _, err := run(t, "let x", "tokens", "--no-color")
	if err != nil {
		t.Fatalf("tokens failed: %v", err)
	}
	if stdout != "1:1\tLET\t\"let\"\n1:5\tIDENT\t\"x\"\n1:6\tEOF\t\"\"\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestVerboseLogsSkippedTokens(t *testing.T) {
	_, stderr, err := run(t, "5;", "parse", "-v")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if !strings.Contains(stderr, "token skipped") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "monkey v"+Version) {
		t.Errorf("stdout = %q", stdout)
	}
}

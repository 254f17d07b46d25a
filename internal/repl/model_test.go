package repl

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func submit(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func TestEvalStatements(t *testing.T) {
	m, cmd := submit(t, New(false, nil), "let x = 5; return x;")
	if cmd != nil {
		t.Errorf("expected no command after a parse")
	}

	want := []string{">> let x = 5; return x;", "let x = ;", "return ;"}
	got := m.History()
	if len(got) != len(want) {
		t.Fatalf("history = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.input.Value())
	}
}

func TestEvalErrors(t *testing.T) {
	m, _ := submit(t, New(false, nil), "let = 5;")
	got := m.History()
	if len(got) != 2 || got[1] != "1:5: expected next token to be IDENT, got = instead" {
		t.Errorf("unexpected history: %q", got)
	}
}

func TestEvalReportsDroppedInput(t *testing.T) {
	m, _ := submit(t, New(false, nil), "5 + 5;")
	got := m.History()
	if len(got) != 2 || got[1] != "no statement parsed" {
		t.Errorf("unexpected history: %q", got)
	}
}

func TestQuit(t *testing.T) {
	for _, line := range []string{":q", ":quit"} {
		m, cmd := submit(t, New(false, nil), line)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", line)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", line)
		}
		if m.View() != "" {
			t.Errorf("%s: view should be empty after quitting", line)
		}
	}

	next, cmd := New(false, nil).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil || !next.(Model).quitting {
		t.Errorf("ctrl+c should quit")
	}
}

func TestEmptyLineIgnored(t *testing.T) {
	next, _ := New(false, nil).Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(next.(Model).History()) != 0 {
		t.Errorf("empty line should not be recorded")
	}
}

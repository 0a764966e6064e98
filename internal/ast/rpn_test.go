package ast

import "testing"

func TestRPNToInfix(t *testing.T) {
	tests := []struct {
		rpn  string
		text string // expected to parse to the same tree as this infix text
	}{
		{"ab.", "ab"},
		{"ab+", "a|b"},
		{"a*", "a*"},
		{"ab.c.", "abc"},
		{"ab+c.", "(a|b)c"},
	}
	for _, tt := range tests {
		got, err := ParseRPN(tt.rpn)
		if err != nil {
			t.Fatalf("ParseRPN(%q): %v", tt.rpn, err)
		}
		want, err := ParseInfix(tt.text)
		if err != nil {
			t.Fatalf("ParseInfix(%q): %v", tt.text, err)
		}
		if !got.Equal(want) {
			t.Errorf("ParseRPN(%q) = %s, want %s", tt.rpn, got.Root, want.Root)
		}
	}
}

func TestRPNStarPrecedesAlternation(t *testing.T) {
	// "a*b+" postfix: star(a), then alternate with b -> a*|b in infix terms.
	got, err := ParseRPN("a*b+")
	if err != nil {
		t.Fatalf("ParseRPN: %v", err)
	}
	want, err := ParseInfix("a*|b")
	if err != nil {
		t.Fatalf("ParseInfix: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got.Root, want.Root)
	}
}

func TestRPNDanglingOperator(t *testing.T) {
	_, err := ParseRPN("a.")
	if err == nil {
		t.Fatal("expected error for dangling operator")
	}
}

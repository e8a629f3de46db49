package gosugg

import (
	"strings"
	"testing"
)

const (
	testGraphie = "web+graphie://ka-perseus-graphie.s3.amazonaws.com/aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testImage   = "https://ka-perseus-graphie.s3.amazonaws.com/bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb.png"
	testWidget  = "[[☃ interactive-graph 1]]"
)

func TestSegment_Reconstruction(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain text", "just some words"},
		{"math only", "$x + y$"},
		{"mixed", "solve $x$ using ![](" + testGraphie + ") and " + testWidget},
		{"adjacent spans", "$a$$b$"},
		{"escaped dollar in math", `$\$5 + \$10$`},
		{"unterminated math", "price is $5 and rising"},
		{"empty string", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			for _, r := range Segment(tt.input) {
				b.WriteString(r.Text)
			}
			if b.String() != tt.input {
				t.Errorf("runs do not reconstruct input: got %q, want %q", b.String(), tt.input)
			}
		})
	}
}

func TestSegment_Kinds(t *testing.T) {
	input := "solve $x+1$ see ![](" + testGraphie + ") or " + testImage + " then " + testWidget
	runs := Segment(input)

	want := []RunKind{RunText, RunMath, RunText, RunGraphie, RunText, RunImage, RunText, RunWidget}
	if len(runs) != len(want) {
		t.Fatalf("expected %d runs, got %d: %v", len(want), len(runs), runs)
	}
	for i, k := range want {
		if runs[i].Kind != k {
			t.Errorf("run %d: expected kind %v, got %v (%q)", i, k, runs[i].Kind, runs[i].Text)
		}
	}
}

func TestSegment_EscapedDollarStaysInSpan(t *testing.T) {
	runs := Segment(`$\$5 + \$10$ total`)
	if runs[0].Kind != RunMath {
		t.Fatalf("expected math run first, got %v", runs[0].Kind)
	}
	if runs[0].Text != `$\$5 + \$10$` {
		t.Errorf("math span split at escaped dollar: %q", runs[0].Text)
	}
}

func TestSegment_UnterminatedMathIsText(t *testing.T) {
	for _, r := range Segment("price is $5 and rising") {
		if r.Kind != RunText {
			t.Errorf("unterminated boundary produced a %v run: %q", r.Kind, r.Text)
		}
	}
}

func TestSegment_MathPriorityOverWidget(t *testing.T) {
	// A dollar sign on each side of a widget must not let the widget split
	// the math span.
	input := "$a [[☃ foo 1]] b$"
	runs := Segment(input)
	if len(runs) != 1 || runs[0].Kind != RunMath {
		t.Fatalf("expected a single math run, got %v", runs)
	}
}

func TestMathSpans(t *testing.T) {
	spans := MathSpans("$a$ plus $b$ equals $c$")
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	if spans[1] != "$b$" {
		t.Errorf("expected $b$, got %q", spans[1])
	}
}

func TestTextFragments(t *testing.T) {
	tests := []struct {
		name  string
		math  string
		want  []string
	}{
		{"none", "$x+1$", nil},
		{"text", `$\text{red}$`, []string{"red"}},
		{"textbf", `$\textbf{blue}$`, []string{"blue"}},
		{"both ordered", `$\text{b}+\textbf{a}$`, []string{"b", "a"}},
		{"trimmed", `$\text{ padded }$`, []string{"padded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TextFragments(tt.math)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("fragment %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

package parser

import (
	"reflect"
	"testing"
)

func TestParseLineBasic(t *testing.T) {
	cases := []struct {
		name     string
		line     string
		wantLbl  string
		wantMnem string
		wantOps  []string
		wantDir  bool
	}{
		{"plain instruction", "addi x1, x0, 10", "", "addi", []string{"x1", "x0", "10"}, false},
		{"labeled instruction", "loop: beq x1, x2, loop", "loop", "beq", []string{"x1", "x2", "loop"}, false},
		{"label only", "done:", "done", "", nil, false},
		{"blank line", "   ", "", "", nil, false},
		{"hash comment", "addi x1, x0, 10 # load ten", "", "addi", []string{"x1", "x0", "10"}, false},
		{"slash comment", "addi x1, x0, 10 // load ten", "", "addi", []string{"x1", "x0", "10"}, false},
		{"comment only", "# just a comment", "", "", nil, false},
		{"directive", ".global _start", "", ".global", []string{"_start"}, true},
		{"mixed case mnemonic", "ADDI x1, x0, 10", "", "addi", []string{"x1", "x0", "10"}, false},
		{"memory operand untouched by comma split", "lw x5, 8(x2)", "", "lw", []string{"x5", "8(x2)"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pl, err := ParseLine(c.line, 1)
			if err != nil {
				t.Fatalf("ParseLine(%q) returned error: %v", c.line, err)
			}
			if pl.Label != c.wantLbl {
				t.Errorf("Label = %q, want %q", pl.Label, c.wantLbl)
			}
			if pl.Mnemonic != c.wantMnem {
				t.Errorf("Mnemonic = %q, want %q", pl.Mnemonic, c.wantMnem)
			}
			if !reflect.DeepEqual(pl.Operands, c.wantOps) {
				t.Errorf("Operands = %#v, want %#v", pl.Operands, c.wantOps)
			}
			if pl.IsDirective != c.wantDir {
				t.Errorf("IsDirective = %v, want %v", pl.IsDirective, c.wantDir)
			}
		})
	}
}

func TestParseLinePreservesLineNum(t *testing.T) {
	pl, err := ParseLine("nop", 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pl.LineNum != 42 {
		t.Errorf("LineNum = %d, want 42", pl.LineNum)
	}
	if pl.OriginalText != "nop" {
		t.Errorf("OriginalText = %q, want %q", pl.OriginalText, "nop")
	}
}

func TestParseMemoryOperand(t *testing.T) {
	cases := []struct {
		in        string
		wantOff   string
		wantReg   string
		wantError bool
	}{
		{"8(x2)", "8", "x2", false},
		{"(sp)", "0", "sp", false},
		{"-4(x2)", "-4", "x2", false},
		{"0x10(a0)", "0x10", "a0", false},
		{"garbage", "", "", true},
		{"8()", "", "", true},
	}
	for _, c := range cases {
		off, reg, err := ParseMemoryOperand(c.in)
		if c.wantError {
			if err == nil {
				t.Errorf("ParseMemoryOperand(%q): expected error, got none", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMemoryOperand(%q) returned error: %v", c.in, err)
		}
		if off != c.wantOff || reg != c.wantReg {
			t.Errorf("ParseMemoryOperand(%q) = (%q, %q), want (%q, %q)", c.in, off, reg, c.wantOff, c.wantReg)
		}
	}
}

func TestSplitDirectiveOperandsIgnoresParenDepth(t *testing.T) {
	// Directives never track paren depth, unlike instruction operands.
	got := splitDirectiveOperands("(1, 2), 3")
	want := []string{"(1", "2)", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitDirectiveOperands = %#v, want %#v", got, want)
	}
}

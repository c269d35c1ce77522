package assembler

import (
	"bytes"
	"strings"
	"testing"
)

func TestAssembleConcreteScenarios(t *testing.T) {
	source := strings.Join([]string{
		"addi x1, x0, 10",
		"sub x3, x1, x2",
		"lw x5, 8(x2)",
		"sw x5, 12(x2)",
	}, "\n")

	result, err := Assemble(source)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}

	want := []uint32{0x00a00093, 0x402081b3, 0x00812283, 0x00512623}
	if len(result.Words) != len(want) {
		t.Fatalf("got %d words, want %d", len(result.Words), len(want))
	}
	for i, w := range want {
		if result.Words[i] != w {
			t.Errorf("word %d = 0x%08x, want 0x%08x", i, result.Words[i], w)
		}
	}
}

func TestAssembleSelfLoopBranch(t *testing.T) {
	source := "loop: beq x1, x2, loop"
	result, err := Assemble(source)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if len(result.Words) != 1 || result.Words[0] != 0x00208063 {
		t.Errorf("got %#v, want [0x00208063]", result.Words)
	}
}

func TestAssembleForwardBranch(t *testing.T) {
	source := strings.Join([]string{
		"jal x1, target", // pc=0, target at pc=8 -> offset 8
		"nop",
		"target: addi x0, x0, 0",
	}, "\n")
	result, err := Assemble(source)
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if result.Words[0] != 0x008000ef {
		t.Errorf("jal encoding = 0x%08x, want 0x008000ef", result.Words[0])
	}
}

func TestAssembleLIExpandsToTwoWords(t *testing.T) {
	result, err := Assemble("li x10, 0x12345678")
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if len(result.Words) != 2 {
		t.Fatalf("got %d words, want 2", len(result.Words))
	}
	if result.Words[0] != 0x12345537 || result.Words[1] != 0x67850513 {
		t.Errorf("got [0x%08x, 0x%08x], want [0x12345537, 0x67850513]", result.Words[0], result.Words[1])
	}
}

func TestAssembleDuplicateLabelFails(t *testing.T) {
	source := strings.Join([]string{
		"foo: addi x1, x0, 1",
		"foo: addi x2, x0, 2",
	}, "\n")
	_, err := Assemble(source)
	if err == nil {
		t.Fatal("expected SymbolError for duplicate label, got nil")
	}
	if _, ok := err.(*SymbolError); !ok {
		t.Errorf("expected *SymbolError, got %T: %v", err, err)
	}
}

func TestAssembleUndefinedSymbolFails(t *testing.T) {
	_, err := Assemble("jal x1, nowhere")
	if err == nil {
		t.Fatal("expected an error for an undefined label, got nil")
	}
}

func TestAssembleUnknownMnemonicFails(t *testing.T) {
	_, err := Assemble("frobnicate x1, x2")
	if err == nil {
		t.Fatal("expected an error for an unknown mnemonic, got nil")
	}
}

func TestAssembleFirstErrorAborts(t *testing.T) {
	// Two separate failures: only the first should be reported.
	source := strings.Join([]string{
		"addi x99, x0, 0", // bad register, first failure
		"frobnicate",      // second failure, never reached
	}, "\n")
	_, err := Assemble(source)
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if strings.Contains(err.Error(), "frobnicate") {
		t.Errorf("error should report only the first failure, got: %v", err)
	}
}

func TestWriteHex(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHex(&buf, []uint32{0x00a00093, 0x402081b3}); err != nil {
		t.Fatalf("WriteHex returned error: %v", err)
	}
	want := "00a00093\n402081b3\n"
	if buf.String() != want {
		t.Errorf("WriteHex output = %q, want %q", buf.String(), want)
	}
}

func TestFormatListingIncludesSourceText(t *testing.T) {
	result, err := Assemble("addi x1, x0, 10")
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	listing := FormatListing(result)
	if !strings.Contains(listing, "addi x1, x0, 10") {
		t.Errorf("listing missing source line: %q", listing)
	}
	if !strings.Contains(listing, "00A00093") {
		t.Errorf("listing missing encoded word: %q", listing)
	}
}

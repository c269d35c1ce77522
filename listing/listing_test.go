package listing

import (
	"strings"
	"testing"

	"github.com/riscvibe/rv32asm/assembler"
)

func TestFormatSymbolsSortsAndFormats(t *testing.T) {
	result, err := assembler.Assemble(strings.Join([]string{
		"start: addi x1, x0, 1",
		"loop:  addi x1, x1, 1",
		"end:   ret",
	}, "\n"))
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}

	out := formatSymbols(result)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("formatSymbols produced %d lines, want 3: %q", len(lines), out)
	}

	// Names come back sorted, regardless of definition order.
	wantOrder := []string{"end", "loop", "start"}
	for i, want := range wantOrder {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}

	if !strings.Contains(out, "0x00000000") {
		t.Errorf("formatSymbols missing start's address: %q", out)
	}
}

func TestFormatSymbolsEmpty(t *testing.T) {
	result, err := assembler.Assemble("addi x1, x0, 1")
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}
	if got := formatSymbols(result); got != "" {
		t.Errorf("formatSymbols with no labels = %q, want empty", got)
	}
}

func TestNewTUIBuildsViewsFromResult(t *testing.T) {
	result, err := assembler.Assemble("here: addi x1, x0, 1")
	if err != nil {
		t.Fatalf("Assemble returned error: %v", err)
	}

	tui := NewTUI(result)
	if tui.symbolView == nil || tui.listingView == nil {
		t.Fatal("NewTUI did not initialize its views")
	}
	if !strings.Contains(tui.symbolView.GetText(true), "here") {
		t.Errorf("symbol view missing label %q", "here")
	}
	if !strings.Contains(tui.listingView.GetText(true), "addi x1, x0, 1") {
		t.Error("listing view missing source text")
	}
}

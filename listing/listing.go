// Package listing is a read-only tview/tcell browser over a completed
// assembly: its symbol table and its (address, hex, source) listing.
// It never executes anything, only renders what assembler.Assemble
// already produced.
package listing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/riscvibe/rv32asm/assembler"
)

// TUI is the interactive listing/symbol-table viewer.
type TUI struct {
	app         *tview.Application
	symbolView  *tview.TextView
	listingView *tview.TextView
}

// NewTUI builds a viewer over a completed Result. Call Run to show it.
func NewTUI(result *assembler.Result) *TUI {
	t := &TUI{app: tview.NewApplication()}

	t.symbolView = tview.NewTextView().SetDynamicColors(true)
	t.symbolView.SetBorder(true).SetTitle(" Symbols ")
	t.symbolView.SetText(formatSymbols(result))

	t.listingView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	t.listingView.SetBorder(true).SetTitle(" Listing ")
	t.listingView.SetText(assembler.FormatListing(result))

	flex := tview.NewFlex().
		AddItem(t.symbolView, 0, 1, false).
		AddItem(t.listingView, 0, 2, true)

	t.app.SetRoot(flex, true).SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			t.app.Stop()
			return nil
		}
		return event
	})

	return t
}

// Run shows the TUI and blocks until the user quits (q or Escape).
func (t *TUI) Run() error {
	return t.app.Run()
}

func formatSymbols(result *assembler.Result) string {
	all := result.Symbols.All()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "%-20s 0x%08x\n", name, all[name])
	}
	return sb.String()
}

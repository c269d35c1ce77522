// Package assembler is the two-pass driver: it owns the symbol table,
// runs Pass 1 (addresses) and Pass 2 (resolution and encoding), and
// renders the result as a hex stream or a listing. It is the only
// package that knows about both the parser's ParsedLine and the
// encoder's Descriptor catalog at once — parser and encoder never
// import each other.
package assembler

import (
	"strings"

	"github.com/riscvibe/rv32asm/parser"
	"github.com/riscvibe/rv32asm/pseudo"
)

// SourceMapEntry ties one emitted word back to the source line that
// produced it, for verbose output and listings.
type SourceMapEntry struct {
	Address      uint32
	LineNum      int
	OriginalText string
}

// Result is everything a successful assembly produces.
type Result struct {
	Words     []uint32
	SourceMap []SourceMapEntry
	Symbols   *SymbolTable
}

// Assemble runs the full two-pass pipeline over source text. It returns
// either a complete Result or the first error encountered — there is no
// multi-error collection: the first malformed line aborts the whole
// assembly.
func Assemble(source string) (*Result, error) {
	lines, err := parseLines(source)
	if err != nil {
		return nil, err
	}

	symbols, err := pass1(lines)
	if err != nil {
		return nil, err
	}

	words, sourceMap, err := pass2(lines, symbols)
	if err != nil {
		return nil, err
	}

	return &Result{Words: words, SourceMap: sourceMap, Symbols: symbols}, nil
}

func parseLines(source string) ([]*parser.ParsedLine, error) {
	rawLines := strings.Split(source, "\n")
	lines := make([]*parser.ParsedLine, 0, len(rawLines))
	for i, text := range rawLines {
		pl, err := parser.ParseLine(text, i+1)
		if err != nil {
			return nil, err
		}
		lines = append(lines, pl)
	}
	return lines, nil
}

// pass1 walks every line once, assigning each label the byte address of
// the instruction that follows it and advancing the program counter by
// 4 bytes per real instruction — querying pseudo.Count, never expanding,
// for pseudo-instructions.
func pass1(lines []*parser.ParsedLine) (*SymbolTable, error) {
	symbols := newSymbolTable()
	pc := uint32(0)

	for _, l := range lines {
		if l.Label != "" {
			if err := symbols.define(l.Label, pc); err != nil {
				return nil, &SymbolError{LineNum: l.LineNum, Source: l.OriginalText, Label: l.Label}
			}
		}
		if l.Mnemonic == "" || l.IsDirective {
			continue
		}
		count := 1
		if pseudo.IsPseudo(l.Mnemonic) {
			count = pseudo.Count(l.Mnemonic, l.Operands)
		}
		pc += uint32(count) * 4
	}

	return symbols, nil
}

// pass2 walks every line again, now with a complete symbol table: it
// expands pseudo-instructions, resolves every operand, and encodes.
// Pass 2's address bookkeeping must agree exactly with Pass 1's, or a
// forward branch would resolve against the wrong PC.
func pass2(lines []*parser.ParsedLine, symbols *SymbolTable) ([]uint32, []SourceMapEntry, error) {
	var words []uint32
	var sourceMap []SourceMapEntry
	pc := uint32(0)

	emit := func(mnemonic string, operands []string, l *parser.ParsedLine) error {
		word, err := resolveAndEncode(mnemonic, operands, pc, symbols, l.LineNum, l.OriginalText)
		if err != nil {
			return err
		}
		words = append(words, word)
		sourceMap = append(sourceMap, SourceMapEntry{Address: pc, LineNum: l.LineNum, OriginalText: l.OriginalText})
		pc += 4
		return nil
	}

	for _, l := range lines {
		if l.Mnemonic == "" || l.IsDirective {
			continue
		}
		if !pseudo.IsPseudo(l.Mnemonic) {
			if err := emit(l.Mnemonic, l.Operands, l); err != nil {
				return nil, nil, err
			}
			continue
		}
		expanded, err := pseudo.Expand(l.Mnemonic, l.Operands)
		if err != nil {
			return nil, nil, asParseError(l.LineNum, l.OriginalText, err)
		}
		for _, real := range expanded {
			if err := emit(real.Mnemonic, real.Operands, l); err != nil {
				return nil, nil, err
			}
		}
	}

	return words, sourceMap, nil
}

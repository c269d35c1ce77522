package assembler

import (
	"fmt"
	"io"
	"strings"
)

// WriteHex writes one 8-hex-digit word per line, matching the reference
// implementation's write_hex output.
func WriteHex(w io.Writer, words []uint32) error {
	for _, word := range words {
		if _, err := fmt.Fprintf(w, "%08x\n", word); err != nil {
			return err
		}
	}
	return nil
}

// FormatListing renders a fixed-width "Address   Code   Source" table,
// one row per assembled word.
func FormatListing(result *Result) string {
	var sb strings.Builder
	sb.WriteString("Address   Code       Source\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for i, entry := range result.SourceMap {
		fmt.Fprintf(&sb, "0x%04X:   %08X   %s\n", entry.Address, result.Words[i], strings.TrimSpace(entry.OriginalText))
	}
	return sb.String()
}

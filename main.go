package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/riscvibe/rv32asm/assembler"
	"github.com/riscvibe/rv32asm/config"
	"github.com/riscvibe/rv32asm/listing"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"     // Version number (set by git tag at build time)
	Commit  = "unknown" // Git commit hash
	Date    = "unknown" // Build date
)

func main() {
	var (
		output      = flag.String("o", "", "Output hex file (default: stdout)")
		verbose     = flag.Bool("v", false, "Print each encoded instruction to stderr as it's assembled")
		showListing = flag.Bool("listing", false, "Print an assembly listing (address, hex, source) to stderr")
		tuiMode     = flag.Bool("tui", false, "Browse the assembled listing and symbol table interactively")
		configPath  = flag.String("config", "", "Path to a TOML configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("rv32asm %s (commit %s, built %s)\n", Version, Commit, Date)
		return
	}

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			fail(err)
		}
		cfg = loaded
	}

	inputPath := flag.Arg(0)
	source, err := os.ReadFile(inputPath) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		fail(err)
	}

	result, err := assembler.Assemble(string(source))
	if err != nil {
		fail(err)
	}

	if *verbose || cfg.Assembler.Verbose {
		for i, entry := range result.SourceMap {
			fmt.Fprintf(os.Stderr, "  0x%04x: %08x  %s\n", entry.Address, result.Words[i], strings.TrimSpace(entry.OriginalText))
		}
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output) // #nosec G304 -- user-provided output path
		if err != nil {
			fail(err)
		}
		defer f.Close()
		out = f
	}

	if err := assembler.WriteHex(out, result.Words); err != nil {
		fail(err)
	}

	if *showListing || cfg.Listing.Enabled {
		fmt.Fprint(os.Stderr, assembler.FormatListing(result))
	}

	if *tuiMode {
		if err := listing.NewTUI(result).Run(); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "rv32asm: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: rv32asm <input.s> [-o output.hex] [-v] [-listing] [-tui] [-config path]")
	flag.PrintDefaults()
}

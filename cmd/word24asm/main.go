// Command word24asm assembles one or more source files into object images.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/kallisti-dev/word24asm/applog"
	"github.com/kallisti-dev/word24asm/assemble"
	"github.com/kallisti-dev/word24asm/config"
	"github.com/kallisti-dev/word24asm/diag"
	"github.com/kallisti-dev/word24asm/objfile"
	"github.com/kallisti-dev/word24asm/parser"
)

// Exit codes, matching the original's distinction between a bad invocation
// and a resource-exhaustion condition the driver can't recover from.
const (
	allocErrorExitCode = 1
	badUsageExitCode   = 2
)

func main() {
	var (
		verbose    = flag.Bool("verbose", false, "verbose output")
		colorFlag  = flag.String("color", "auto", "colorize diagnostics: auto, always, never")
		configPath = flag.String("config", "", "path to assembler.toml (default: per-OS config path)")
		listing    = flag.Bool("listing", false, "emit a .lst human-readable listing")
	)
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() == 0 {
		printUsage()
		os.Exit(badUsageExitCode)
	}

	if *verbose {
		applog.LogLevel.Set(slog.LevelDebug)
	}
	logger := applog.DefaultLogger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(badUsageExitCode)
	}
	if *listing {
		cfg.Output.EmitListing = true
	}

	color := resolveColor(*colorFlag, cfg.Diagnostics.Color)

	exitCode := 0
	for _, base := range flag.Args() {
		ok, exhausted := assembleOne(base, cfg, color, logger)
		if exhausted {
			// Unlike an ordinary per-file assembly failure, resource
			// exhaustion aborts the whole invocation immediately rather
			// than moving on to the next file, matching the original's
			// ALLOC_ERROR_EXIT_CODE severity.
			fmt.Fprintf(os.Stderr, "%s: %v\n", base, assemble.ErrResourceExhausted)
			os.Exit(allocErrorExitCode)
		}
		if !ok {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func resolveColor(flagValue string, configDefault bool) bool {
	switch flagValue {
	case "always":
		return true
	case "never":
		return false
	default:
		if !configDefault {
			return false
		}
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// assembleOne runs the full pipeline for one base file name (without
// extension, matching the original convention), printing the same
// "assembling X" / "X: ... failed; moving to next file" progress lines and
// writing whichever output files the emission policy warrants. The first
// return value is false if assembly failed; the second is true if the file
// exceeded the resource ceiling, which the caller treats as fatal rather than
// something to move past.
func assembleOne(base string, cfg *config.Config, color bool, logger *slog.Logger) (ok bool, exhausted bool) {
	srcPath := base + ".as"
	lines, err := parser.ReadSourceLines(srcPath)
	if err != nil {
		fmt.Printf("error: could not open file %s for reading\n", srcPath)
		return false, false
	}

	fmt.Printf("assembling %s\n", base)
	logger.Debug("read source", "path", srcPath, "lines", len(lines))

	result := assemble.Run(lines)
	if result.ResourceExhausted {
		return false, true
	}

	sink := diag.NewSink()
	for _, d := range result.Diagnostics {
		sink.Add(d)
	}
	sink.Render(os.Stderr, base, color)

	if !result.OK {
		fmt.Printf("%s: assembly failed; moving to next file\n", base)
		return false, false
	}

	if err := objfile.WriteAll(base, result, cfg.Output.EmitListing); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return false, false
	}

	fmt.Printf("assembled %s successfully\n", base)
	logger.Info("assembled", "file", base,
		"instructions", len(result.InstructionImage),
		"data", len(result.DataImage),
		"entries", len(result.Entries),
		"externals", len(result.Externals))

	return true, false
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: word24asm [flags] file1 [file2 ...]")
	fmt.Fprintln(os.Stderr, "note: files should be named without extension, e.g. \"prog\" not \"prog.as\"")
	flag.PrintDefaults()
}

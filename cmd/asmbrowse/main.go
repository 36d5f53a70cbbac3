// Command asmbrowse assembles a single source file and opens a read-only
// terminal browser over its symbol table, object listing, and entry/extern
// lists, for inspecting a translation unit's output interactively.
package main

import (
	"fmt"
	"os"

	"github.com/kallisti-dev/word24asm/assemble"
	"github.com/kallisti-dev/word24asm/diag"
	"github.com/kallisti-dev/word24asm/parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: asmbrowse <file>")
		fmt.Fprintln(os.Stderr, "note: file should be named without extension, e.g. \"prog\" not \"prog.as\"")
		os.Exit(2)
	}

	base := os.Args[1]
	lines, err := parser.ReadSourceLines(base + ".as")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not open file %s.as for reading\n", base)
		os.Exit(1)
	}

	result := assemble.Run(lines)
	if !result.OK {
		sink := diag.NewSink()
		for _, d := range result.Diagnostics {
			sink.Add(d)
		}
		sink.Render(os.Stderr, base, false)
		fmt.Fprintf(os.Stderr, "%s: assembly failed; nothing to browse\n", base)
		os.Exit(1)
	}

	browser := NewBrowser(base, result)
	if err := browser.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

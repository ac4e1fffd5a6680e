package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mrlokans/highlights2md/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	args := os.Args[1:]

	// The tool historically took just the export path as its single
	// argument; keep that surface working alongside the explicit
	// subcommand form.
	if len(args) > 0 {
		switch args[0] {
		case "convert":
			args = args[1:]
		case "-h", "--help", "help":
			printUsage()
			return
		case "version":
			fmt.Printf("highlights2md %s (%s)\n", Version, Commit)
			return
		}
	}

	cmd := cli.NewConvertCommand()
	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("Usage: %s [convert] [options] <highlights.json>\n\n", os.Args[0])
	fmt.Printf("Commands:\n")
	fmt.Printf("  convert   Convert an Instapaper highlights export to markdown (default)\n")
	fmt.Printf("  version   Print version information\n")
	fmt.Printf("\nUse '%s convert -h' for the full option list.\n", os.Args[0])
}

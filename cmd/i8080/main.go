// Command i8080 runs an 8080 ROM image under the CP/M-style harness
// spec.md section 6 describes: a single positional ROM file, loaded at
// 0x0100 and run to completion (spec.md section 6, "CLI (external to the
// core)"). Built on spf13/cobra rather than the teacher's bare flag package
// (see DESIGN.md) since this is a one-binary, one-job tool shaped like the
// retrieval pack's z80opt CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/go8080/i8080/machine"
)

func main() {
	var trace bool

	root := &cobra.Command{
		Use:   "i8080 [rom]",
		Short: "Run an Intel 8080 ROM image under the CP/M BDOS harness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], trace)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().BoolVar(&trace, "trace", false, "log every fetched instruction to stderr")

	if err := root.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(path string, trace bool) error {
	rom, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	m, err := machine.New(&machine.Config{
		ROM:     rom,
		Console: os.Stdout,
		Trace:   trace,
		TraceTo: os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("initializing machine: %w", err)
	}

	m.Run()
	return nil
}

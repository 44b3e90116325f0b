// unrolled-repl is an interactive shell for poking at an unrolled list of
// strings and watching how its chunk chain changes.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/phroun/unrolled"
)

func main() {
	var (
		capacity int
		verbose  bool
	)

	rootCmd := &cobra.Command{
		Use:   "unrolled-repl",
		Short: "Interactive shell over an unrolled linked list",
		Long: `unrolled-repl reads commands from stdin and applies them to a list of
strings, printing results and the chunk layout on request.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
			repl, err := newREPL(bufio.NewReader(os.Stdin), cmd.OutOrStdout(), capacity, logger, interactive)
			if err != nil {
				return err
			}
			return repl.run()
		},
	}
	rootCmd.Flags().IntVarP(&capacity, "capacity", "c", unrolled.DefaultChunkCapacity, "elements per chunk")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log chunk allocation and unlinking")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

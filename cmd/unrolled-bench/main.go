// unrolled-bench is a benchmark and stress test for the unrolled list.
// It runs workloads against lists of a chosen chunk capacity and checks
// every result against a plain slice.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/phroun/unrolled"
)

type benchFlags struct {
	configPath string
	capacity   int
	count      int
	parallel   int
	noVerify   bool
	verbose    bool
}

func main() {
	var flags benchFlags

	rootCmd := &cobra.Command{
		Use:   "unrolled-bench",
		Short: "Benchmark and stress test the unrolled list",
		Long: `unrolled-bench times append, prepend, random insert/remove/get/set,
iteration and mixed workloads. Workloads come from a YAML file (--config)
or are generated for every operation with --count operations each.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			return runBench(cmd.Context(), cmd.OutOrStdout(), logger, cfg, flags.parallel)
		},
	}

	rootCmd.Flags().StringVar(&flags.configPath, "config", "", "YAML workload file")
	rootCmd.Flags().IntVarP(&flags.capacity, "capacity", "c", unrolled.DefaultChunkCapacity, "elements per chunk (overrides the config file)")
	rootCmd.Flags().IntVarP(&flags.count, "count", "n", 100000, "operations per generated workload")
	rootCmd.Flags().IntVarP(&flags.parallel, "parallel", "p", 1, "workloads to run concurrently")
	rootCmd.Flags().BoolVar(&flags.noVerify, "no-verify", false, "skip checking results against a slice")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig loads the config file if one is given and applies flag
// overrides.
func resolveConfig(cmd *cobra.Command, flags benchFlags) (Config, error) {
	var cfg Config
	if flags.configPath != "" {
		loaded, err := loadConfig(flags.configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
		if cmd.Flags().Changed("capacity") {
			cfg.Capacity = flags.capacity
		}
	} else {
		cfg = defaultConfig(flags.capacity, flags.count)
	}
	if flags.noVerify {
		cfg.Verify = false
	}
	if flags.parallel < 1 {
		return Config{}, fmt.Errorf("--parallel must be at least 1, got %d", flags.parallel)
	}
	return cfg, cfg.validate()
}

// runBench runs every workload, at most parallel at a time, and prints a
// summary in configuration order.
func runBench(ctx context.Context, out io.Writer, logger *slog.Logger, cfg Config, parallel int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	capacity := cfg.Capacity
	if capacity == 0 {
		capacity = unrolled.DefaultChunkCapacity
	}

	fmt.Fprintln(out, "Unrolled List Benchmark")
	fmt.Fprintln(out, "=======================")
	fmt.Fprintf(out, "Chunk capacity: %d\n", capacity)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
	fmt.Fprintln(out)

	results := make([]BenchResult, len(cfg.Workloads))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallel)
	for i, w := range cfg.Workloads {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			logger.Debug("workload started", "name", w.Name, "op", w.Op, "count", w.Count, "initial", w.Initial)
			result, err := runWorkload(capacity, w, cfg.Verify)
			if err != nil {
				logger.Error("workload failed", "name", w.Name, "err", err)
				return err
			}
			logger.Info("workload finished", "name", w.Name, "duration", result.Duration)
			results[i] = result
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	fmt.Fprintln(out, "SUMMARY")
	fmt.Fprintln(out, "=======")
	for _, r := range results {
		fmt.Fprintln(out, r)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total allocations: %d MB\n", m.TotalAlloc/(1024*1024))
	return nil
}

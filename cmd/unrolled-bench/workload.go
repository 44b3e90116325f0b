package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/phroun/unrolled"
)

// Workload operation names accepted in config files.
const (
	OpAppend       = "append"
	OpPrepend      = "prepend"
	OpInsertRandom = "insert-random"
	OpRemoveRandom = "remove-random"
	OpGetRandom    = "get-random"
	OpSetRandom    = "set-random"
	OpIterate      = "iterate"
	OpMixed        = "mixed"
)

var allOps = []string{
	OpAppend, OpPrepend, OpInsertRandom, OpRemoveRandom,
	OpGetRandom, OpSetRandom, OpIterate, OpMixed,
}

// Workload describes one benchmark run.
type Workload struct {
	Name    string `yaml:"name"`
	Op      string `yaml:"op"`
	Count   int    `yaml:"count"`   // operations to perform
	Initial int    `yaml:"initial"` // elements appended before timing starts
	Seed    uint64 `yaml:"seed"`
}

// Config is the top-level bench configuration file.
type Config struct {
	Capacity  int        `yaml:"capacity"`
	Verify    bool       `yaml:"verify"`
	Workloads []Workload `yaml:"workloads"`
}

// loadConfig reads a YAML workload file.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (Config, error) {
	cfg := Config{Verify: true}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// defaultConfig runs every operation count times.
func defaultConfig(capacity, count int) Config {
	cfg := Config{Capacity: capacity, Verify: true}
	for i, op := range allOps {
		w := Workload{Name: op, Op: op, Count: count, Seed: uint64(i + 1)}
		switch op {
		case OpAppend, OpPrepend, OpInsertRandom, OpMixed:
		case OpIterate:
			w.Initial = count
			w.Count = 10
		default:
			w.Initial = count
		}
		cfg.Workloads = append(cfg.Workloads, w)
	}
	return cfg
}

func (c Config) validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity %d: %w", c.Capacity, unrolled.ErrInvalidCapacity)
	}
	if len(c.Workloads) == 0 {
		return fmt.Errorf("no workloads configured")
	}
	for i, w := range c.Workloads {
		known := false
		for _, op := range allOps {
			if w.Op == op {
				known = true
			}
		}
		if !known {
			return fmt.Errorf("workload %d (%s): unknown op %q", i, w.Name, w.Op)
		}
		if w.Count < 0 || w.Initial < 0 {
			return fmt.Errorf("workload %d (%s): negative count", i, w.Name)
		}
	}
	return nil
}

type opKind int

const (
	opInsert opKind = iota
	opRemove
	opGet
	opSet
	opIterate
)

type action struct {
	kind  opKind
	index int
	value int
}

// plan generates the operations for w up front so that generation cost stays
// out of the timed section. Indices are always valid for the length the
// sequence will have when the operation runs.
func plan(w Workload) []action {
	rng := rand.New(rand.NewPCG(w.Seed, uint64(w.Count)))
	n := w.Initial
	ops := make([]action, 0, w.Count)

	insertAt := func(i int) {
		ops = append(ops, action{kind: opInsert, index: i, value: len(ops)})
		n++
	}

	for range w.Count {
		switch w.Op {
		case OpAppend:
			insertAt(n)
		case OpPrepend:
			insertAt(0)
		case OpInsertRandom:
			insertAt(rng.IntN(n + 1))
		case OpRemoveRandom, OpGetRandom, OpSetRandom:
			if n == 0 {
				insertAt(0)
				continue
			}
			i := rng.IntN(n)
			switch w.Op {
			case OpRemoveRandom:
				ops = append(ops, action{kind: opRemove, index: i})
				n--
			case OpGetRandom:
				ops = append(ops, action{kind: opGet, index: i})
			default:
				ops = append(ops, action{kind: opSet, index: i, value: -len(ops)})
			}
		case OpIterate:
			ops = append(ops, action{kind: opIterate})
		case OpMixed:
			r := rng.IntN(20)
			switch {
			case r < 10 || n == 0:
				insertAt(rng.IntN(n + 1))
			case r < 15:
				ops = append(ops, action{kind: opRemove, index: rng.IntN(n)})
				n--
			case r < 18:
				ops = append(ops, action{kind: opGet, index: rng.IntN(n)})
			default:
				ops = append(ops, action{kind: opSet, index: rng.IntN(n), value: -len(ops)})
			}
		}
	}
	return ops
}

// execute applies ops to seq and returns a checksum over every value read.
func execute(seq unrolled.Mutable[int], ops []action) (int, error) {
	sum := 0
	for _, o := range ops {
		switch o.kind {
		case opInsert:
			if err := seq.Insert(o.index, o.value); err != nil {
				return sum, err
			}
		case opRemove:
			v, err := seq.Remove(o.index)
			if err != nil {
				return sum, err
			}
			sum += v
		case opGet:
			v, err := seq.Get(o.index)
			if err != nil {
				return sum, err
			}
			sum += v
		case opSet:
			if err := seq.Set(o.index, o.value); err != nil {
				return sum, err
			}
		case opIterate:
			for _, v := range seq.All() {
				sum += v
			}
		}
	}
	return sum, nil
}

// BenchResult is the outcome of one workload.
type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 && r.Duration > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		return fmt.Sprintf("%-24s %12v  (%d ops, %.0f ops/sec) %s", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec, r.Extra)
	}
	return fmt.Sprintf("%-24s %12v  %s", r.Name, r.Duration.Round(time.Microsecond), r.Extra)
}

// runWorkload times w against a fresh list and, when verify is set, replays
// it against a plain slice and compares the outcome.
func runWorkload(capacity int, w Workload, verify bool) (BenchResult, error) {
	seed := make([]int, w.Initial)
	for i := range seed {
		seed[i] = i
	}
	list, err := unrolled.FromSlice(unrolled.Options{ChunkCapacity: capacity}, seed)
	if err != nil {
		return BenchResult{}, err
	}
	ops := plan(w)

	start := time.Now()
	sum, err := execute(list, ops)
	duration := time.Since(start)
	if err != nil {
		return BenchResult{}, fmt.Errorf("workload %s: %w", w.Name, err)
	}

	stats := list.Stats()
	result := BenchResult{
		Name:     w.Name,
		Duration: duration,
		Ops:      len(ops),
		Extra:    fmt.Sprintf("len=%d chunks=%d fill=%.2f", stats.Len, stats.Chunks, stats.FillRatio),
	}
	if !verify {
		return result, nil
	}

	model := &sliceSeq{values: append([]int(nil), seed...)}
	modelSum, err := execute(model, ops)
	if err != nil {
		return BenchResult{}, fmt.Errorf("workload %s: model: %w", w.Name, err)
	}
	if sum != modelSum {
		return BenchResult{}, fmt.Errorf("workload %s: checksum %d, model %d", w.Name, sum, modelSum)
	}
	if !unrolled.Equal[int](list, model, func(a, b int) bool { return a == b }) {
		return BenchResult{}, fmt.Errorf("workload %s: contents diverged from model", w.Name)
	}
	result.Extra += " verified"
	return result, nil
}

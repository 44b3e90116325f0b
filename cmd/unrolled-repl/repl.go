package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phroun/unrolled"
)

// REPL holds the state of the interactive session
type REPL struct {
	list        *unrolled.List[string]
	reader      *bufio.Reader
	out         io.Writer
	logger      *slog.Logger
	interactive bool
}

func newREPL(reader *bufio.Reader, out io.Writer, capacity int, logger *slog.Logger, interactive bool) (*REPL, error) {
	r := &REPL{
		reader:      reader,
		out:         out,
		logger:      logger,
		interactive: interactive,
	}
	if err := r.reset(capacity); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *REPL) reset(capacity int) error {
	l, err := unrolled.New[string](unrolled.Options{ChunkCapacity: capacity, Logger: r.logger})
	if err != nil {
		return err
	}
	r.list = l
	return nil
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// run reads commands until EOF or quit.
func (r *REPL) run() error {
	if r.interactive {
		r.printf("unrolled REPL - chunk capacity %d\n", r.list.ChunkCapacity())
		r.printf("Type 'help' for available commands, 'quit' to exit\n\n")
	}

	for {
		if r.interactive {
			r.printf("unrolled> ")
		}
		input, err := r.reader.ReadString('\n')
		if err != nil && input == "" {
			if err == io.EOF {
				if r.interactive {
					r.printf("\nGoodbye!\n")
				}
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if !r.handleCommand(input) {
			return nil
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		if r.interactive {
			r.printf("Goodbye!\n")
		}
		return false

	case "new":
		r.cmdNew(args)

	case "append":
		r.cmdAppend(args)

	case "prepend":
		r.cmdPrepend(args)

	case "insert":
		r.cmdInsert(args)

	case "remove":
		r.cmdRemove(args)

	case "get":
		r.cmdGet(args)

	case "set":
		r.cmdSet(args)

	case "len":
		r.printf("%d\n", r.list.Len())

	case "dump":
		r.printf("%s\n", r.list)

	case "chunks":
		r.printf("%s\n", r.list.DebugString())

	case "stats":
		r.cmdStats()

	case "compact":
		stats := r.list.Compact()
		r.printf("Released %d chunks\n", stats.ChunksReleased)

	case "find":
		r.cmdFind(args)

	case "delete":
		r.cmdDelete(args)

	default:
		r.printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

EDIT OPERATIONS:
  new [capacity]          Start over with an empty list
  append <v>...           Append values at the end
  prepend <v>...          Insert values at the front, keeping their order
  insert <index> <v>      Insert a value at index
  remove <index>          Remove and print the value at index
  set <index> <v>         Replace the value at index
  delete <v>              Remove every occurrence of a value

READ OPERATIONS:
  get <index>             Print the value at index
  find <v>                Print the first and last index of a value
  len                     Print the number of values

INSPECTION:
  dump                    Print all values
  chunks                  Print the chunk layout
  stats                   Print chain statistics
  compact                 Pack chunks densely

OTHER:
  help                    Show this help message
  quit, exit              Exit the REPL
`
	r.printf("%s\n", help)
}

func (r *REPL) cmdNew(args []string) {
	capacity := r.list.ChunkCapacity()
	if len(args) >= 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			r.printf("Invalid capacity: %v\n", err)
			return
		}
		capacity = n
	}
	if err := r.reset(capacity); err != nil {
		r.printf("Error creating list: %v\n", err)
		return
	}
	r.printf("Created empty list with chunk capacity %d\n", r.list.ChunkCapacity())
}

func (r *REPL) cmdAppend(args []string) {
	if len(args) == 0 {
		r.printf("Usage: append <v>...\n")
		return
	}
	r.list.AppendAll(args...)
	r.printf("Appended %d values, len=%d\n", len(args), r.list.Len())
}

func (r *REPL) cmdPrepend(args []string) {
	if len(args) == 0 {
		r.printf("Usage: prepend <v>...\n")
		return
	}
	r.list.PrependAll(args...)
	r.printf("Prepended %d values, len=%d\n", len(args), r.list.Len())
}

func (r *REPL) cmdInsert(args []string) {
	if len(args) < 2 {
		r.printf("Usage: insert <index> <v>\n")
		return
	}
	index, ok := r.parseIndex(args[0])
	if !ok {
		return
	}
	if err := r.list.Insert(index, strings.Join(args[1:], " ")); err != nil {
		r.printf("Insert error: %v\n", err)
		return
	}
	r.printf("Inserted at %d, len=%d\n", index, r.list.Len())
}

func (r *REPL) cmdRemove(args []string) {
	if len(args) < 1 {
		r.printf("Usage: remove <index>\n")
		return
	}
	index, ok := r.parseIndex(args[0])
	if !ok {
		return
	}
	v, err := r.list.Remove(index)
	if err != nil {
		r.printf("Remove error: %v\n", err)
		return
	}
	r.printf("Removed %q, len=%d\n", v, r.list.Len())
}

func (r *REPL) cmdGet(args []string) {
	if len(args) < 1 {
		r.printf("Usage: get <index>\n")
		return
	}
	index, ok := r.parseIndex(args[0])
	if !ok {
		return
	}
	v, err := r.list.Get(index)
	if err != nil {
		r.printf("Get error: %v\n", err)
		return
	}
	r.printf("%q\n", v)
}

func (r *REPL) cmdSet(args []string) {
	if len(args) < 2 {
		r.printf("Usage: set <index> <v>\n")
		return
	}
	index, ok := r.parseIndex(args[0])
	if !ok {
		return
	}
	if err := r.list.Set(index, strings.Join(args[1:], " ")); err != nil {
		r.printf("Set error: %v\n", err)
		return
	}
	r.printf("Set %d\n", index)
}

func (r *REPL) cmdStats() {
	s := r.list.Stats()
	r.printf("Chain Stats:\n")
	r.printf("  Len:             %d\n", s.Len)
	r.printf("  Chunks:          %d (capacity %d)\n", s.Chunks, s.ChunkCapacity)
	r.printf("  Free slots:      %d\n", s.FreeSlots)
	r.printf("  Fill ratio:      %.2f\n", s.FillRatio)
	r.printf("  Mergeable pairs: %d\n", s.MergeablePairs)
}

func (r *REPL) cmdFind(args []string) {
	if len(args) < 1 {
		r.printf("Usage: find <v>\n")
		return
	}
	needle := strings.Join(args, " ")
	first := unrolled.Index(r.list, needle)
	if first < 0 {
		r.printf("%q not found\n", needle)
		return
	}
	last := r.list.LastIndexFunc(func(v string) bool { return v == needle })
	r.printf("%q first at %d, last at %d\n", needle, first, last)
}

func (r *REPL) cmdDelete(args []string) {
	if len(args) < 1 {
		r.printf("Usage: delete <v>\n")
		return
	}
	needle := strings.Join(args, " ")
	n := r.list.DeleteFunc(func(v string) bool { return v == needle })
	r.printf("Deleted %d, len=%d\n", n, r.list.Len())
}

func (r *REPL) parseIndex(s string) (int, bool) {
	index, err := strconv.Atoi(s)
	if err != nil {
		r.printf("Invalid index: %v\n", err)
		return 0, false
	}
	return index, true
}

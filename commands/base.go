package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"

	"github.com/tablesh/tablesh/core/logger"
	"github.com/tablesh/tablesh/core/table"
)

// Env is the runtime context a builtin command executes in.
type Env struct {
	// Args holds the argument vector, Args[0] is the command name.
	Args []string
	// Dir is the working directory.
	Dir string
	// FS is the filesystem commands operate on.
	FS afero.Fs

	User     string
	Hostname string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Now supplies timestamps; tests pin it.
	Now func() time.Time

	Log *logger.SessionLogger
}

// ProcessFunc is a plain command: it writes text and returns an exit code.
type ProcessFunc func(env *Env) int

// ProducerFunc is a data-producing command: it returns a typed table that
// can head a pipeline.
type ProducerFunc func(env *Env) (*table.Table, error)

// AllCommands holds every registered plain command by name.
var AllCommands = make(map[string]ProcessFunc)

// AllProducers holds every registered table producer by name.
var AllProducers = make(map[string]ProducerFunc)

func mustAddCmd(name string, cmd ProcessFunc) {
	if _, exists := AllCommands[name]; exists {
		panic("duplicate command: " + name)
	}
	AllCommands[name] = cmd
}

func mustAddProducer(name string, cmd ProducerFunc) {
	if _, exists := AllProducers[name]; exists {
		panic("duplicate producer: " + name)
	}
	AllProducers[name] = cmd
}

// CommandEntry describes one registered builtin.
type CommandEntry struct {
	Name string
	// Producer is set when the command emits a table rather than text.
	Producer bool
}

// ListBuiltinCommands returns all registered commands sorted by name.
func ListBuiltinCommands() []CommandEntry {
	var out []CommandEntry
	for name := range AllCommands {
		out = append(out, CommandEntry{Name: name})
	}
	for name := range AllProducers {
		out = append(out, CommandEntry{Name: name, Producer: true})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SimpleCommand wraps flag parsing and help output for plain commands.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses flags and, if parsing was successful, calls the callback.
func (s *SimpleCommand) Run(env *Env, callback func() int) int {
	opts := s.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(env.Args, nil); err != nil {
		if env.Log != nil {
			env.Log.RecordInvalidInvocation(err.Error())
		}
		fmt.Fprintf(env.Stderr, "error: %s\n\n", err)
		s.PrintHelp(env.Stderr)
		return 1
	}

	if *showHelp {
		s.PrintHelp(env.Stdout)
		return 0
	}

	return callback()
}

var sizeSuffixes = []struct {
	unit  string
	power int64
}{
	{"tb", 1 << 40},
	{"gb", 1 << 30},
	{"mb", 1 << 20},
	{"kb", 1 << 10},
}

// HumanSize renders a byte count in the size-string form the table engine
// parses back, e.g. "512b", "4.5kb", "23mb".
func HumanSize(bytes int64) string {
	for _, e := range sizeSuffixes {
		quotient := bytes / e.power
		switch {
		case quotient == 0:
			continue
		case quotient > 10:
			return fmt.Sprintf("%d%s", quotient, e.unit)
		default:
			return fmt.Sprintf("%0.1f%s", float64(bytes)/float64(e.power), e.unit)
		}
	}

	return fmt.Sprintf("%db", bytes)
}

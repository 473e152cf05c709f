package shell

import (
	"fmt"
	"sort"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/tablesh/tablesh/commands"
)

// AllBuiltins holds every registered shell builtin. Builtins run inside the
// shell process and never participate in pipelines.
var AllBuiltins = make(map[string]ShellBuiltin)

type ShellBuiltin interface {
	Main(s *Shell, args []string) int
}

type ShellBuiltinFunc func(s *Shell, args []string) int

func (f ShellBuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ ShellBuiltin = (ShellBuiltinFunc)(nil)

// Cd is the cd shell builtin.
func Cd(s *Shell, args []string) int {
	switch len(args) {
	case 1:
		args = append(args, s.env[EnvHome])
		fallthrough
	case 2:
		if err := s.chdir(args[1]); err != nil {
			fmt.Fprintf(s.stderr, "%s: %v\n", args[0], err)
			return 1
		}
	default:
		fmt.Fprintf(s.stderr, "%s: too many arguments\n", args[0])
		return 1
	}
	return 0
}

// Pwd prints the working directory.
func Pwd(s *Shell, args []string) int {
	fmt.Fprintln(s.stdout, s.cwd)
	return 0
}

// Exit quits the shell.
func Exit(s *Shell, args []string) int {
	s.quit = true
	return 0
}

// History displays or clears the history list.
func History(s *Shell, args []string) int {
	opts := getopt.New()
	clear := opts.Bool('c', "clear the history by deleting all entries")
	helpOpt := opts.BoolLong("help", 'h', "show help and exit")

	if err := opts.Getopt(args, nil); err != nil || *helpOpt {
		w := s.stderr
		if err != nil {
			fmt.Fprintln(w, err)
		}
		fmt.Fprintln(w, "usage: history [-c]")
		fmt.Fprintln(w, "Display or clear the history list.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Options:")
		opts.PrintOptions(w)
		return 1
	}

	if *clear {
		s.Readline.Operation.ResetHistory()
		s.history = nil
		return 0
	}

	for i, line := range s.history {
		fmt.Fprintf(s.stdout, "% 5d  %s\n", i, line)
	}
	return 0
}

// Alias defines or lists command aliases.
//
// alias           list all aliases
// alias NAME      show one alias
// alias NAME CMD  define an alias
func Alias(s *Shell, args []string) int {
	switch len(args) {
	case 1:
		var names []string
		for name := range s.aliases {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(s.stdout, "alias %s='%s'\n", name, s.aliases[name])
		}
		return 0
	case 2:
		if expansion, ok := s.aliases[args[1]]; ok {
			fmt.Fprintf(s.stdout, "alias %s='%s'\n", args[1], expansion)
			return 0
		}
		fmt.Fprintf(s.stderr, "alias: %s: not found\n", args[1])
		return 1
	default:
		s.aliases[args[1]] = strings.Join(args[2:], " ")
		return 0
	}
}

// Bookmark saves and jumps to named directories.
//
// bookmark              list bookmarks
// bookmark NAME         cd to a bookmark
// bookmark add NAME     bookmark the working directory
// bookmark rm NAME      delete a bookmark
func Bookmark(s *Shell, args []string) int {
	switch {
	case len(args) == 1:
		var names []string
		for name := range s.bookmarks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(s.stdout, "%s\t%s\n", name, s.bookmarks[name])
		}
		return 0

	case len(args) == 3 && args[1] == "add":
		s.bookmarks[args[2]] = s.cwd
		return 0

	case len(args) == 3 && args[1] == "rm":
		if _, ok := s.bookmarks[args[2]]; !ok {
			fmt.Fprintf(s.stderr, "bookmark: %s: not found\n", args[2])
			return 1
		}
		delete(s.bookmarks, args[2])
		return 0

	case len(args) == 2:
		dir, ok := s.bookmarks[args[1]]
		if !ok {
			fmt.Fprintf(s.stderr, "bookmark: %s: not found\n", args[1])
			return 1
		}
		if err := s.chdir(dir); err != nil {
			fmt.Fprintf(s.stderr, "bookmark: %v\n", err)
			return 1
		}
		return 0

	default:
		fmt.Fprintln(s.stderr, "usage: bookmark [add NAME | rm NAME | NAME]")
		return 1
	}
}

// Help lists builtins, commands and filters.
func Help(s *Shell, args []string) int {
	w := s.stdout
	fmt.Fprintln(w, "tablesh: commands that emit tables can be piped through filters, e.g.")
	fmt.Fprintln(w, "  ls | where Size > 1kb | sort-by Size desc | limit 5")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Builtins:")
	var builtins []string
	for k := range AllBuiltins {
		builtins = append(builtins, k)
	}
	sort.Strings(builtins)
	fmt.Fprintln(w, "  "+strings.Join(builtins, " "))
	fmt.Fprintln(w)

	var producers, plain []string
	for _, entry := range commands.ListBuiltinCommands() {
		if entry.Producer {
			producers = append(producers, entry.Name)
		} else {
			plain = append(plain, entry.Name)
		}
	}
	fmt.Fprintln(w, "Table commands:")
	fmt.Fprintln(w, "  "+strings.Join(producers, " "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  "+strings.Join(plain, " "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Filters:")
	fmt.Fprintln(w, "  where <field> <op> <value>   op is one of > < == >= <=")
	fmt.Fprintln(w, "  sort-by <field> [asc|desc]")
	fmt.Fprintln(w, "  select <field>[,<field>...]")
	fmt.Fprintln(w, "  contains <field> <substring>")
	fmt.Fprintln(w, "  limit <n>")
	return 0
}

func init() {
	AllBuiltins["cd"] = ShellBuiltinFunc(Cd)
	AllBuiltins["pwd"] = ShellBuiltinFunc(Pwd)
	AllBuiltins["exit"] = ShellBuiltinFunc(Exit)
	AllBuiltins["history"] = ShellBuiltinFunc(History)
	AllBuiltins["alias"] = ShellBuiltinFunc(Alias)
	AllBuiltins["bookmark"] = ShellBuiltinFunc(Bookmark)
	AllBuiltins["help"] = ShellBuiltinFunc(Help)
}

// Package shell implements the interactive command loop: line editing,
// tokenizing, alias and environment expansion, and dispatch into either
// plain commands or the table pipeline.
package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abiosoft/readline"
	"github.com/anmitsu/go-shlex"
	"github.com/spf13/afero"

	"github.com/tablesh/tablesh/commands"
	"github.com/tablesh/tablesh/core/config"
	"github.com/tablesh/tablesh/core/logger"
	"github.com/tablesh/tablesh/core/pipeline"
	"github.com/tablesh/tablesh/core/render"
	"github.com/tablesh/tablesh/core/table"
)

const (
	EnvHome     = "HOME"
	EnvPWD      = "PWD"
	EnvPrompt   = "PS1"
	EnvHostname = "HOSTNAME"
	EnvUser     = "USER"

	DefaultPrompt = `\u@\h:\w\$ `
)

// Options configures a shell session.
type Options struct {
	Config *config.Configuration
	FS     afero.Fs
	// Dir is the starting (and home) directory.
	Dir  string
	User string

	Stdin  io.ReadCloser
	Stdout io.Writer
	Stderr io.Writer

	IsPTY bool
	// Width reports the terminal width; nil means 80 columns.
	Width func() int

	Log *logger.SessionLogger
}

// Shell is one interactive session. Sessions share nothing: every pipeline
// invocation allocates its own tables and releases them before the next
// prompt.
type Shell struct {
	Readline *readline.Instance

	cfg       *config.Configuration
	fs        afero.Fs
	user      string
	home      string
	cwd       string
	env       map[string]string
	aliases   map[string]string
	bookmarks map[string]string
	history   []string

	exec    *pipeline.Executor
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	log     *logger.SessionLogger
	quit    bool
}

// New creates a shell session from options.
func New(opts Options) (*Shell, error) {
	width := opts.Width
	if width == nil {
		width = func() int {
			if w := readline.GetScreenWidth(); w > 0 {
				return w
			}
			return 80
		}
	}

	cfg := &readline.Config{
		Stdin:          readline.NewCancelableStdin(opts.Stdin),
		Stdout:         opts.Stdout,
		Stderr:         opts.Stderr,
		FuncGetWidth:   width,
		FuncIsTerminal: func() bool { return opts.IsPTY },
		AutoComplete:   newCompleter(),
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	sessionLog := opts.Log
	if sessionLog == nil {
		sessionLog = logger.NewNopLogger().NewSession()
	}

	s := &Shell{
		Readline:  rl,
		cfg:       opts.Config,
		fs:        opts.FS,
		user:      opts.User,
		home:      opts.Dir,
		cwd:       opts.Dir,
		env:       make(map[string]string),
		aliases:   make(map[string]string),
		bookmarks: make(map[string]string),
		stdin:     opts.Stdin,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		log:       sessionLog,
	}

	prompt := DefaultPrompt
	if opts.Config != nil {
		if opts.Config.Prompt != "" {
			prompt = opts.Config.Prompt
		}
		for k, v := range opts.Config.Aliases {
			s.aliases[k] = v
		}
		for k, v := range opts.Config.Bookmarks {
			s.bookmarks[k] = v
		}
	}

	s.env[EnvUser] = opts.User
	s.env[EnvHostname] = s.hostname()
	s.env[EnvHome] = opts.Dir
	s.env[EnvPWD] = opts.Dir
	s.env[EnvPrompt] = prompt

	s.wireExecutor(opts.Stdout, opts.IsPTY)

	return s, nil
}

// wireExecutor binds the producer commands and renderer to this session.
func (s *Shell) wireExecutor(out io.Writer, color bool) {
	printer := &render.Printer{Out: out, Color: color}
	producers := make(map[string]pipeline.Producer, len(commands.AllProducers))
	for name, produce := range commands.AllProducers {
		name, produce := name, produce
		producers[name] = func(args []string) (*table.Table, error) {
			return produce(s.commandEnv(append([]string{name}, args...)))
		}
	}
	s.exec = pipeline.NewExecutor(pipeline.NewRegistry(), producers, printer.Print)
}

func (s *Shell) hostname() string {
	if s.cfg != nil && s.cfg.Hostname != "" {
		return s.cfg.Hostname
	}
	host, _ := os.Hostname()
	return host
}

func (s *Shell) commandEnv(args []string) *commands.Env {
	return &commands.Env{
		Args:     args,
		Dir:      s.cwd,
		FS:       s.fs,
		User:     s.user,
		Hostname: s.env[EnvHostname],
		Stdin:    s.stdin,
		Stdout:   s.stdout,
		Stderr:   s.stderr,
		Now:      time.Now,
		Log:      s.log,
	}
}

func (s *Shell) getenv(name string) string {
	return s.env[name]
}

// Prompt renders the PS1 value with \u, \h, \w and \$ expansions.
func (s *Shell) Prompt() string {
	prompt := s.env[EnvPrompt]
	if prompt == "" {
		prompt = DefaultPrompt
	}
	prompt = strings.ReplaceAll(prompt, `\u`, s.env[EnvUser])
	prompt = strings.ReplaceAll(prompt, `\h`, s.env[EnvHostname])

	pwd := s.cwd
	if s.home != "" && strings.HasPrefix(pwd, s.home) {
		pwd = "~" + strings.TrimPrefix(pwd, s.home)
	}
	prompt = strings.ReplaceAll(prompt, `\w`, pwd)

	if s.user == "root" {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return prompt
}

// Run reads and dispatches lines until EOF or exit.
func (s *Shell) Run() {
	if s.cfg != nil && s.cfg.Motd != "" {
		fmt.Fprint(s.stdout, s.cfg.Motd)
	}

	for !s.quit {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			log.Printf("readline: %v", err)
			continue

		case strings.TrimSpace(line) == "":
			continue
		}

		s.history = append(s.history, line)
		s.Dispatch(line)
	}
}

// Dispatch tokenizes and executes a single input line.
func (s *Shell) Dispatch(line string) {
	tokens, err := shlex.Split(line, true)
	if err != nil {
		s.log.RecordInvalidInvocation(err.Error())
		fmt.Fprintln(s.stderr, "syntax error: unexpected end of line")
		return
	}
	if len(tokens) == 0 {
		return
	}

	for i, tok := range tokens {
		tokens[i] = os.Expand(tok, s.getenv)
	}
	tokens = s.expandAlias(tokens)

	if builtin, ok := AllBuiltins[tokens[0]]; ok {
		builtin.Main(s, tokens)
		return
	}

	stages := SplitStages(tokens)
	if len(stages) == 0 {
		return
	}

	if s.exec.CanProduce(stages[0].Name) {
		err := s.exec.Run(stages)
		s.log.RecordPipelineRun(line, stageNames(stages), err)
		if err != nil {
			fmt.Fprintln(s.stderr, err)
		}
		return
	}

	if len(stages) > 1 {
		err := fmt.Errorf("%s: command does not support piping", stages[0].Name)
		s.log.RecordPipelineRun(line, stageNames(stages), err)
		fmt.Fprintln(s.stderr, err)
		return
	}

	if proc, ok := commands.AllCommands[tokens[0]]; ok {
		proc(s.commandEnv(tokens))
		return
	}

	s.log.RecordInvalidInvocation("command not found: " + tokens[0])
	fmt.Fprintf(s.stderr, "%s: command not found\n", tokens[0])
}

// expandAlias rewrites the first token through the alias table, one pass.
func (s *Shell) expandAlias(tokens []string) []string {
	expansion, ok := s.aliases[tokens[0]]
	if !ok {
		return tokens
	}
	head, err := shlex.Split(expansion, true)
	if err != nil || len(head) == 0 {
		return tokens
	}
	return append(head, tokens[1:]...)
}

// SplitStages groups tokens into pipeline stages at "|" boundaries.
func SplitStages(tokens []string) []pipeline.Stage {
	var stages []pipeline.Stage
	current := pipeline.Stage{}
	flush := func() {
		if current.Name != "" {
			stages = append(stages, current)
		}
		current = pipeline.Stage{}
	}

	for _, tok := range tokens {
		if tok == "|" {
			flush()
			continue
		}
		if current.Name == "" {
			current.Name = tok
		} else {
			current.Args = append(current.Args, tok)
		}
	}
	flush()
	return stages
}

func stageNames(stages []pipeline.Stage) []string {
	out := make([]string, len(stages))
	for i, st := range stages {
		out[i] = st.Name
	}
	return out
}

// chdir validates and switches the working directory.
func (s *Shell) chdir(dir string) error {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.cwd, dir)
	}
	info, err := s.fs.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", dir)
	}
	s.cwd = dir
	s.env[EnvPWD] = dir
	return nil
}

// Close releases the readline instance.
func (s *Shell) Close() error {
	return s.Readline.Close()
}

func newCompleter() readline.AutoCompleter {
	var items []readline.PrefixCompleterInterface
	for _, entry := range commands.ListBuiltinCommands() {
		items = append(items, readline.PcItem(entry.Name))
	}
	for name := range AllBuiltins {
		items = append(items, readline.PcItem(name))
	}
	for _, name := range pipeline.NewRegistry().Names() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

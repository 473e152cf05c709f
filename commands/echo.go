package commands

import (
	"fmt"
	"strings"
)

// Echo implements a limited echo command.
func Echo(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "echo [-n] [ARG] ...",
		Short: "Display a line of text.",
	}

	noNewline := cmd.Flags().Bool('n', "do not output the trailing newline")

	return cmd.Run(env, func() int {
		fmt.Fprint(env.Stdout, strings.Join(cmd.Flags().Args(), " "))
		if !*noNewline {
			fmt.Fprintln(env.Stdout)
		}
		return 0
	})
}

var _ ProcessFunc = Echo

func init() {
	mustAddCmd("echo", Echo)
}

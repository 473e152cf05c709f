package commands

import "fmt"

// Clear clears the terminal using the standard escape sequence.
func Clear(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "clear",
		Short: "Clear the terminal screen.",
	}

	return cmd.Run(env, func() int {
		fmt.Fprint(env.Stdout, "\033[H\033[2J")
		return 0
	})
}

var _ ProcessFunc = Clear

func init() {
	mustAddCmd("clear", Clear)
}

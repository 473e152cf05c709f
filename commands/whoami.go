package commands

import "fmt"

// Whoami prints the effective user name.
func Whoami(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "whoami",
		Short: "Print the user name for the current session.",
	}

	return cmd.Run(env, func() int {
		fmt.Fprintln(env.Stdout, env.User)
		return 0
	})
}

var _ ProcessFunc = Whoami

func init() {
	mustAddCmd("whoami", Whoami)
}

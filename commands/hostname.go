package commands

import "fmt"

// Hostname prints the configured host name.
func Hostname(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "hostname",
		Short: "Show the system's host name.",
	}

	return cmd.Run(env, func() int {
		fmt.Fprintln(env.Stdout, env.Hostname)
		return 0
	})
}

var _ ProcessFunc = Hostname

func init() {
	mustAddCmd("hostname", Hostname)
}

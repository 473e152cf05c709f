package commands

import "fmt"

// Uname prints system identification.
func Uname(env *Env) int {
	cmd := &SimpleCommand{
		Use:   "uname [-a]",
		Short: "Print system information.",
	}

	all := cmd.Flags().Bool('a', "print all information")

	return cmd.Run(env, func() int {
		if *all {
			fmt.Fprintf(env.Stdout, "Linux %s 5.10.0-8-amd64 #1 SMP x86_64 GNU/Linux\n", env.Hostname)
		} else {
			fmt.Fprintln(env.Stdout, "Linux")
		}
		return 0
	})
}

var _ ProcessFunc = Uname

func init() {
	mustAddCmd("uname", Uname)
}

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tablesh/tablesh/commands"
	"github.com/tablesh/tablesh/core/shell"
)

// commandsCmd lists every name the shell understands.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Show the commands the shell understands.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var names []string

		for _, entry := range commands.ListBuiltinCommands() {
			if entry.Producer {
				names = append(names, "table:"+entry.Name)
			} else {
				names = append(names, entry.Name)
			}
		}

		for name := range shell.AllBuiltins {
			names = append(names, "shell:"+name)
		}

		sort.Strings(names)

		for _, v := range names {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}

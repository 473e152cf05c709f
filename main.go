package main

import "github.com/tablesh/tablesh/cmd"

func main() {
	cmd.Execute()
}

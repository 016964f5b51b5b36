package main

import "github.com/devconnect/cli/internal/cmd"

func main() {
	cmd.Execute()
}

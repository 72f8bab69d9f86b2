package main

import "tunahub/cmd/cli/command"

func main() {
	command.Execute()
}

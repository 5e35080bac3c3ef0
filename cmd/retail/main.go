package main

import "github.com/marshallshelly/retail-console/cmd/retail/commands"

func main() {
	commands.Execute()
}

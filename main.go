package main

import "github.com/akorolev/quarterday/cmd"

func main() {
	cmd.Execute()
}

package main

import "blockpad/internal/cli"

func main() {
	cli.Execute()
}

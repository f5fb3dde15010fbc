package main

import "selectkit/internal/cli"

func main() {
	cli.Execute()
}

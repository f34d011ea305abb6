package main

import "github.com/mcoot/golfscore/internal/cli"

func main() {
	cli.Execute()
}

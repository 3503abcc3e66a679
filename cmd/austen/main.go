package main

import "github.com/not-lavanya/janeaustenstoryteller/internal/cli"

func main() {
	cli.Execute()
}

package main

import "fragdoc/internal/cli"

func main() {
	cli.Execute()
}

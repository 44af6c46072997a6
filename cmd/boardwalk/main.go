package main

import "github.com/atherden/boardwalk/internal/cli"

func main() {
	cli.Execute()
}

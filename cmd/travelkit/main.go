package main

import "github.com/travelkit/travelkit/internal/cli"

func main() {
	cli.Execute()
}

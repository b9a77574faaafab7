package main

import "github.com/pfrederiksen/lectionary-readings/internal/cli"

func main() {
	cli.Execute()
}

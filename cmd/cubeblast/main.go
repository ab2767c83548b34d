package main

import (
	"github.com/willolsker/cube-blast/internal/cli"
)

func main() {
	cli.Execute()
}

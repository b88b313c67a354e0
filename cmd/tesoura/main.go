package main

import (
	"github.com/tesouraclub/tesoura-go/internal/cli"
)

func main() {
	cli.Execute()
}

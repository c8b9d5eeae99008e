package main

import (
	"github.com/chhavipande/museumyatra/internal/cli"
)

func main() {
	cli.Execute()
}

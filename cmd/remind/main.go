package main

import (
	"context"

	"github.com/faizmokh/remind/internal/cli"
)

func main() {
	cli.Main(context.Background())
}

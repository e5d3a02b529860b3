package main

import (
	"os"

	"github.com/fairgate/eventrag/cmd/eventrag"
)

func main() {
	if err := eventrag.Execute(); err != nil {
		os.Exit(1)
	}
}

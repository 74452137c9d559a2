package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Chimelu/hafak-surgicals-backend/internal/cli"
)

func main() {

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/tarantool/go-recstore/internal/cli"
)

func main() {
	if err := cli.NewRootCommand(cli.DefaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

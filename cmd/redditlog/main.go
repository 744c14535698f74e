package main

import (
	"fmt"
	"os"

	"github.com/mhollis/redditlog/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "redditlog:", err)
		os.Exit(1)
	}
}

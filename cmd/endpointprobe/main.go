package main

import (
	"fmt"
	"os"

	"github.com/hamed0406/endpointprobe/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

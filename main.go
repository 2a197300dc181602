package main

import (
	"fmt"
	"os"

	"github.com/gwang08/GenLingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

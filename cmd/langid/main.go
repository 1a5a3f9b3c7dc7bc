package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	return root().Dispatch(modeArgs(args))
}

// modeArgs maps the numeric modes onto subcommands: no argument evaluates,
// "0" is interactive and "1" detects.
func modeArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"evaluate"}
	}
	out := append([]string(nil), args...)
	switch out[0] {
	case "0":
		out[0] = "interactive"
	case "1":
		out[0] = "detect"
	}
	return out
}

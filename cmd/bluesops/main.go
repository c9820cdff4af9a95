// Command bluesops queries the scouting roster from a terminal using the same
// filter and sort rules as the dashboard API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

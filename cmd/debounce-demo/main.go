// Command debounce-demo feeds simulated button clicks through the debounce
// package and logs which clicks were executed and which were debounced.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "debounce-demo:", err)
		os.Exit(1)
	}
}

// Command wavdepth changes the bit depth of PCM WAV files.
//
// Usage:
//
//	wavdepth [--config file] [--verbose] <command> [args]
//
// Commands:
//
//	convert - rewrite a file at a new bit depth, optionally exporting AIFF
//	info    - print the header fields and the detected byte order
//	gen     - generate a sine wave file in either byte order
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

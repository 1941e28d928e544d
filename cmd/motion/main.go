// Command motion is a developer tool for the motion animation library:
// it previews timing curves as PNG images and plays animations in the
// terminal.
package main

import (
	"os"

	"github.com/go-drift/motion/cmd/motion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

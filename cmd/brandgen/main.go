// Command brandgen turns a brand spec JSON file into an image prompt and
// renders brand imagery from it with Gemini.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

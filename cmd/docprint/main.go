// Command docprint exercises the doc/render libraries from the command
// line: it renders a document described in dictionary (JSON) form, or
// runs a built-in gallery of example layouts.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// Command minigrep prints the lines of a file that contain a query.
package main

import (
	"fmt"
	"os"

	"github.com/ka2n/minigrep/cli"
)

func main() {
	if err := cli.Run(os.Stdout, os.Args, os.LookupEnv); err != nil {
		fmt.Fprintln(os.Stderr, cli.Describe(err))
		os.Exit(1)
	}
}

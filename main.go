// hype-cli is a tool for command-line access to a Hype card account.
package main

import (
	"github.com/hypecli/hype-cli/cmd"
)

func main() {
	cmd.Run()
}

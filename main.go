// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"golang.org/x/term"

	"calc/repl"
)

func main() {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	if interactive {
		name := "there"
		if currentUser, err := user.Current(); err == nil {
			name = currentUser.Username
		}
		fmt.Printf("Welcome to the calc REPL, %s!\n", name)
	}

	repl.Start(os.Stdin, os.Stdout, repl.Options{Prompt: interactive})
}

// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"blif/repl"
	"github.com/fatih/color"
)

func main() {
	name := "there"
	if currentUser, err := user.Current(); err == nil {
		name = currentUser.Username
	}

	fmt.Printf("Welcome to the BLIF statement REPL, %s!\n", name)
	fmt.Println("Enter statements, finish a block with an empty line, :quit to leave.")
	if err := repl.Start(os.Stdout); err != nil {
		color.Red("repl: %v", err)
		os.Exit(1)
	}
}

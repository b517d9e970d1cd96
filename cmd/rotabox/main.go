// Package main is the rotabox command.
package main

import "github.com/frudas24/rotabox/cmd/rotabox/cmd"

func main() {
	cmd.Execute()
}

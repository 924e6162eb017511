// Package main is the entry point for the salvager CLI.
package main

import "salvager.dev/pkg/salvager/cmd"

func main() {
	cmd.Execute()
}

// Package main is the entry point for the bombe CLI.
package main

import "bombe.dev/pkg/bombe/cmd"

func main() {
	cmd.Execute()
}

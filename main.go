// Package main is the entry point for the e2ecov CLI.
package main

import "github.com/rehagoal/e2ecov/cmd"

func main() {
	cmd.Execute()
}

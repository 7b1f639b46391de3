// Package main provides the entry point for the unitfin CLI application.
package main

import (
	"unitfin/cmd/categories"
	"unitfin/cmd/compare"
	"unitfin/cmd/export"
	"unitfin/cmd/root"
	"unitfin/cmd/summarize"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(summarize.Cmd)
	root.Cmd.AddCommand(compare.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatal(err)
	}
}

// Package main is the entry point for the consta CLI.
package main

import (
	"github.com/huangsam/consta/cmd"
	"github.com/huangsam/consta/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Cannot run consta", err)
	}
}

// Package main is the entry point for the scoutmetrics CLI tool, which
// normalizes per-match scouting CSVs, scores them, and aggregates ranked
// per-team summaries.
package main

import "github.com/scoutops/scoutmetrics/cmd"

func main() {
	cmd.Execute()
}

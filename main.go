// Package main is the entry point for the mapranks CLI tool, which caches
// map leaderboard snapshots and ranks teams per map size, difficulty and month.
package main

import "github.com/pable/go-map-ranks/cmd"

func main() {
	cmd.Execute()
}

// Package main implements the tasks-api binary: an HTTP API for personal
// to-do items, plus the commands that manage its schema and issue
// development tokens.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main provides the petdb CLI.
package main

import "github.com/mesh-intelligence/petdb/internal/cli"

func main() {
	cli.Execute()
}

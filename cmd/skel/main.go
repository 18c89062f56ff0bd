// Package main is the entry point for the skel CLI.
package main

import (
	"os"

	"github.com/skeltool/skel/cmd/skel/commands"
	"github.com/skeltool/skel/internal/errors"
)

func main() {
	os.Exit(errors.Code(commands.Execute()))
}

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ljoubert/kernbench/cmd"
)

func main() {
	// Default to pretty console logger; benchmark commands switch to JSON on request
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cmd.Execute()
}

package main

import (
	"fmt"
	"os"

	"fincoach/cmd/process"
	"fincoach/cmd/root"
	"fincoach/cmd/sample"
	"fincoach/cmd/serve"
	"fincoach/internal/config"
)

func init() {
	// Load .env before cobra parses anything so env-driven config is in
	// place for every command.
	config.LoadEnv()

	root.Init()
	root.Cmd.AddCommand(process.Cmd)
	root.Cmd.AddCommand(sample.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(cli.Options{}).Execute(); err != nil {
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

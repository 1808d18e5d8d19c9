package main

import (
	"fmt"
	"os"

	"github.com/example/acacia/internal/cli"
	"github.com/example/acacia/internal/db"
)

func main() {
	err := cli.RootCmd().Execute()
	db.Close()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

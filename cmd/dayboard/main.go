package main

import (
	"fmt"
	"os"

	"github.com/example/dayboard/internal/cli"
	"github.com/example/dayboard/internal/wire"
)

func main() {
	err := cli.NewRootCmd().Execute()
	_ = wire.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/ziadkadry99/react-guide/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

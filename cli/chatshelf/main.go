package main

import (
	"os"

	shelfcmder "github.com/chatshelf/chatshelf/cmd/chatshelf"
)

func main() {
	cmd := shelfcmder.NewShelfCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	ctx := context.Background()

	// Make the CLI app
	app := makeApp()

	// Run it
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

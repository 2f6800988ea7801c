package main

import (
	"fmt"
	"os"

	"github.com/lbi-bank/ods-console/internal/app"
)

func main() {
	if err := app.RunSeed(); err != nil {
		fmt.Fprintf(os.Stderr, "provisioning error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/lbi-bank/ods-console/internal/app"
)

func main() {
	if err := app.RunReport(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "report error: %v\n", err)
		os.Exit(1)
	}
}

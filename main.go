// file: main.go
// version: 2.0.0
// guid: 2d8f4a61-9b3c-4e07-8a15-c6e0f7b2d394

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jdfalk/isbn-catalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

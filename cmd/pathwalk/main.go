// Command pathwalk is a small CLI front-end over the pathwalk library:
// parse flags, run one walk, print the results.
package main

import (
	"os"

	"github.com/cthing/pathwalk/internal/app"
	"github.com/cthing/pathwalk/internal/config"
)

func main() {
	if err := config.New(app.Run); err != nil {
		os.Exit(1)
	}
}

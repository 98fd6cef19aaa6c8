// Command api runs the mood-to-food recommendation HTTP service.
package main

import (
	"flag"

	"github.com/mrunal1324/FOMO---Food-Mood/internal/infrastructure/container"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	// Run blocks until SIGINT or SIGTERM, then executes the stop hooks.
	container.New(*configPath).Run()
}

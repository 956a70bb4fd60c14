package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

//	@title			SAGIP GIS analytics API
//	@version		1.0
//	@description	hazard aware evacuation routing, reachability and household prioritization

// @host		localhost:8000
// @BasePath	/api
// @schemes	http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

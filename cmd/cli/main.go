package main

import (
	"context"

	"github.com/lgmarques/taskhub/internal/client/cli"
	"github.com/lgmarques/taskhub/internal/client/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)

	app.Run(ctx)

}

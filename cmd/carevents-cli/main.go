package main

import (
	"context"

	"carevents-scraper/cmd/carevents-cli/commands"
	"carevents-scraper/lib/serviceutil"
	"carevents-scraper/lib/telemetry"
)

func main() {
	telemetry.InitSlog(true)
	telemetry.SetupFromEnv(context.Background(), "carevents-cli")
	commands.ExecuteContext(serviceutil.SignalContext())
}

package main

import (
	"context"

	"extbadges/cmd/extbadges/commands"
	"extbadges/lib/serviceutil"
	"extbadges/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "extbadges")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InitSlog(false)

	commands.ExecuteContext(ctx)
}

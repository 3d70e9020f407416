package main

import (
	"log/slog"
	"os"

	"github.com/l3montree-dev/incidentguard/cmd/incidentguard-cli/commands"
	"github.com/l3montree-dev/incidentguard/shared"
)

func Execute() {
	err := commands.GetRootCmd().Execute()
	if err != nil {
		slog.Error("Error executing command", "err", err)
		os.Exit(1)
	}
}

func init() {
	commands.GetRootCmd().AddCommand(commands.NewMigrateCommand())
	commands.GetRootCmd().AddCommand(commands.NewTokenCommand())
	commands.GetRootCmd().AddCommand(commands.NewPermissionsCommand())
}

func main() {
	shared.InitLogger()
	Execute()
}

// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient) {
	// Create individual subcommands (each can be in its own file)
	warnCmd := createWarnCommand()
	warningsCmd := createWarningsCommand()
	removeWarningsCmd := createRemoveWarningsCommand()
	clearWarningsCmd := createClearWarningsCommand()
	removeTimeoutCmd := createRemoveTimeoutCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		warnCmd,
		warningsCmd,
		removeWarningsCmd,
		clearWarningsCmd,
		removeTimeoutCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}

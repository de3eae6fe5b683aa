// Package fun provides the /fun command group for the counting game
package fun

import (
	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
)

// RegisterFunCommands registers all fun commands as /fun subcommands
func RegisterFunCommands(client *discord.ExtendedClient) {
	countingStatsCmd := createCountingStatsCommand()

	funGroup := client.CommandHandler.BuildCommandGroup(
		"fun",
		"Comandos de entretenimiento",
		countingStatsCmd,
	)

	client.CommandHandler.AddGlobalCommand(funGroup)
}

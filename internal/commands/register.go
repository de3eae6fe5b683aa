// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (utils, mod, setup, fun, dev)
package commands

import (
	"github.com/PancyStudios/LaffeyBotGo/internal/commands/dev"
	"github.com/PancyStudios/LaffeyBotGo/internal/commands/fun"
	"github.com/PancyStudios/LaffeyBotGo/internal/commands/mod"
	"github.com/PancyStudios/LaffeyBotGo/internal/commands/setup"
	"github.com/PancyStudios/LaffeyBotGo/internal/commands/utils"
	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/utils ping, /utils status, /utils help, /utils stats)
	utils.RegisterUtilsCommands(client)

	// Moderation commands (/mod warn, /mod warnings, /mod removewarnings, ...)
	mod.RegisterModCommands(client)

	// Setup commands (/setup quarantine, /setup log, /setup counting)
	setup.RegisterSetupCommands(client)

	// Fun commands (/fun countingstats)
	fun.RegisterFunCommands(client)

	// Dev-only commands (/dev eval, registered only in the dev guild)
	dev.Register(client)
}

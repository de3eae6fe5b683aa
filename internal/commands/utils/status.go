package utils

import (
	"fmt"
	"os"

	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
	"github.com/PancyStudios/LaffeyBotGo/pkg/storage"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra el estado del bot",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		ctx.Reply(fmt.Sprintf(
			"📊 **Estado del Bot**\n"+
				"• Bot: 🟢 Online\n"+
				"• Almacenamiento: %s\n"+
				"• Servidores: %d",
			storageStatus(),
			ctx.Client.GuildCount(),
		))
	}()
	return nil
}

// storageStatus reports whether the warnings document is reachable
func storageStatus() string {
	store := storage.GlobalWarnStore
	if store == nil {
		return "🔴 Sin inicializar"
	}
	if _, err := os.Stat(store.Path()); os.IsNotExist(err) {
		return "🟡 Vacío (aún sin datos)"
	}
	return "🟢 OK"
}

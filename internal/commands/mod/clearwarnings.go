// Package mod - /mod clearwarnings command
package mod

import (
	"fmt"

	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
	"github.com/PancyStudios/LaffeyBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createClearWarningsCommand creates the /mod clearwarnings subcommand
func createClearWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"clearwarnings",
		"Elimina todas las advertencias de un usuario",
		"mod",
		clearWarningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario al que limpiar las advertencias",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func clearWarningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		cleared, err := moderation.GetLedger().ClearWarnings(user.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error limpiando advertencias: %v", err), "CMD-ClearWarnings")
			ctx.ReplyEphemeral("❌ No se pudieron limpiar las advertencias.")
			return
		}

		if cleared == 0 {
			ctx.Reply(fmt.Sprintf("ℹ️ **%s** no tiene advertencias registradas.", user.Username))
			return
		}

		ctx.Reply(fmt.Sprintf("🧹 Se eliminaron **%d** advertencias de **%s**. Su historial ahora está limpio.",
			cleared, user.Username))
	}()

	return nil
}

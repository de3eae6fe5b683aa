// Package mod - /mod removetimeout command
package mod

import (
	"fmt"

	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createRemoveTimeoutCommand creates the /mod removetimeout subcommand
func createRemoveTimeoutCommand() *discord.Command {
	return discord.NewCommand(
		"removetimeout",
		"Quita el aislamiento temporal de un usuario",
		"mod",
		removeTimeoutHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario al que quitar el aislamiento",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers)
}

func removeTimeoutHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		// Quitar el timeout no toca el historial de advertencias
		if err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, nil); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo quitar el aislamiento de %s: %v", user.ID, err), "CMD-RemoveTimeout")
			ctx.ReplyEphemeral("❌ No se pudo quitar el aislamiento. Verifica mis permisos.")
			return
		}

		ctx.Reply(fmt.Sprintf("🔊 Se quitó el aislamiento de **%s**. Sus advertencias siguen registradas.", user.Username))
	}()

	return nil
}

// Package mod - /mod removewarnings command
package mod

import (
	"fmt"

	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
	"github.com/PancyStudios/LaffeyBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createRemoveWarningsCommand creates the /mod removewarnings subcommand
func createRemoveWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"removewarnings",
		"Quita las advertencias más recientes de un usuario",
		"mod",
		removeWarningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario al que quitar advertencias",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Cantidad de advertencias a quitar",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers)
}

func removeWarningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	amount := int(ctx.GetIntOption("cantidad"))
	if amount < 1 {
		return ctx.ReplyEphemeral("❌ La cantidad debe ser al menos 1.")
	}

	go func() {
		defer errors.RecoverMiddleware()()

		removed, remaining, err := moderation.GetLedger().RemoveWarnings(user.ID, amount)
		if err != nil {
			logger.Error(fmt.Sprintf("Error quitando advertencias: %v", err), "CMD-RemoveWarnings")
			ctx.ReplyEphemeral("❌ No se pudieron quitar las advertencias.")
			return
		}

		// Un usuario sin advertencias no es un error
		if removed == 0 {
			ctx.Reply(fmt.Sprintf("ℹ️ **%s** no tiene advertencias registradas.", user.Username))
			return
		}

		ctx.Reply(fmt.Sprintf("✅ Se quitaron **%d** advertencias a **%s**.\n> 🔢 - **Advertencias restantes:** %d",
			removed, user.Username, remaining))
	}()

	return nil
}

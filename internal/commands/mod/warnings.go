package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
	"github.com/PancyStudios/LaffeyBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// maxListedWarnings limits the embed to the most recent records
const maxListedWarnings = 5

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"Lista de advertencias de un usuario",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "[STAFF] Usuario a buscar (opcional)",
			Required:    false,
		},
	)
}

func warningsHandler(ctx *discord.CommandContext) error {
	// Goroutine para no bloquear el hilo principal
	go func() {
		defer errors.RecoverMiddleware()()

		// 1. Determinar objetivo y permisos
		targetUser := ctx.GetUserOption("usuario")
		isSelf := false

		perms, err := ctx.Session.UserChannelPermissions(ctx.User().ID, ctx.Interaction.ChannelID)
		if err != nil {
			perms = 0
		}
		isModerator := (perms & discordgo.PermissionModerateMembers) != 0

		if targetUser == nil {
			targetUser = ctx.User()
			isSelf = true
		}

		// Si intenta ver advertencias de otro y no es moderador
		if !isSelf && !isModerator {
			ctx.ReplyEphemeral("❌ No tienes permisos para ver la lista de advertencias de otro usuario.")
			return
		}

		records, err := moderation.GetLedger().Warnings(targetUser.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo advertencias: %v", err), "CMD-Warnings")
			ctx.ReplyEphemeral("❌ Error al consultar el registro de advertencias.")
			return
		}

		if len(records) == 0 {
			embedClear := &discordgo.MessageEmbed{
				Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s", targetUser.Username),
				Color:       0x00FF00, // Green
				Description: fmt.Sprintf("No se han encontrado advertencias del usuario en este servidor\n\n> 💫 - **Cantidad de advertencias:** 0\n> 🕒 - **Fecha de consulta:** <t:%d>", time.Now().Unix()),
				Footer: &discordgo.MessageEmbedFooter{
					Text:    "💫 Developed by PancyStudio | LaffeyBot Go",
					IconURL: ctx.Guild().IconURL(""),
				},
			}
			ctx.ReplyEphemeralEmbed(embedClear)
			return
		}

		// 2. Construir lista con las advertencias más recientes
		shown := records
		if len(shown) > maxListedWarnings {
			shown = shown[len(shown)-maxListedWarnings:]
		}

		var description string
		for _, warn := range shown {
			modName := "Oculto"
			if isModerator {
				modUser, err := ctx.Session.User(warn.ModeratorID)
				if err == nil {
					modName = modUser.Username
				} else {
					modName = warn.ModeratorID // Fallback al ID si no se encuentra
				}
			}

			fecha := warn.Timestamp
			if ts, err := time.Parse(time.RFC3339, warn.Timestamp); err == nil {
				fecha = fmt.Sprintf("<t:%d>", ts.Unix())
			}

			description += fmt.Sprintf("> **Advertencia:** %s \n> **Moderador:** %s \n> **Fecha:** %s \n> **ID:** %s \n\n", warn.Reason, modName, fecha, warn.ID)
		}

		description += fmt.Sprintf("> 💫 - **Cantidad de advertencias:** %d \n> 🕒 - **Fecha de consulta:** <t:%d>", len(records), time.Now().Unix())

		embedList := &discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s (%s)", targetUser.Username, targetUser.ID),
			Color:       0xFFA500, // Orange
			Description: description,
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 Developed by PancyStudio | LaffeyBot Go",
				IconURL: ctx.Guild().IconURL(""),
			},
		}

		ctx.ReplyEphemeralEmbed(embedList)
	}()

	return nil
}

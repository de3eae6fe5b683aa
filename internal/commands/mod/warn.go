// Package mod - /mod warn command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
	"github.com/PancyStudios/LaffeyBotGo/pkg/moderation"
	"github.com/PancyStudios/LaffeyBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario y aplica la sanción que corresponda",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers | discordgo.PermissionKickMembers)
}

// warnHandler handles the /mod warn command
func warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}
	if user.Bot {
		return ctx.ReplyEphemeral("❌ No puedes advertir a un bot.")
	}
	if user.ID == ctx.User().ID {
		return ctx.ReplyEphemeral("❌ No puedes advertirte a ti mismo.")
	}

	reason := ctx.GetStringOption("razon")
	if reason == "" {
		return ctx.ReplyEphemeral("❌ Debes especificar una razón.")
	}

	if err := ctx.Defer(); err != nil {
		return err
	}

	go func() {
		defer errors.RecoverMiddleware()()

		guildID := ctx.Interaction.GuildID

		// The record is written first; a failed punishment never rolls
		// the ledger back.
		count, err := moderation.GetLedger().AddWarning(user.ID, ctx.User().ID, reason, guildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error guardando advertencia: %v", err), "CMD-Warn")
			ctx.EditReply("❌ No se pudo guardar la advertencia.")
			return
		}

		escalation := moderation.EscalationFor(count)
		actionText := escalation.Describe()
		var punishErr error

		switch escalation.Action {
		case moderation.ActionTimeout:
			until := time.Now().Add(escalation.Duration)
			punishErr = ctx.Session.GuildMemberTimeout(guildID, user.ID, &until)
		case moderation.ActionKick:
			punishErr = ctx.Session.GuildMemberDeleteWithReason(guildID, user.ID,
				fmt.Sprintf("Advertencia #%d: %s", count, reason))
		}

		embed := &discordgo.MessageEmbed{
			Title: "⚠️ - Advertencia registrada",
			Color: 0xFFA500, // Orange
			Description: fmt.Sprintf("**%s** ha recibido una advertencia.\n\n> 📝 - **Razón:** %s\n> 🔢 - **Advertencias totales:** %d\n> 🛡️ - **Moderador:** %s",
				user.Username, reason, count, ctx.User().Username),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Acción", Value: actionText},
			},
			Timestamp: time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 Developed by PancyStudio | LaffeyBot Go",
				IconURL: ctx.Guild().IconURL(""),
			},
		}

		if punishErr != nil {
			logger.Warn(fmt.Sprintf("No se pudo aplicar la sanción a %s: %v", user.ID, punishErr), "CMD-Warn")
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "⛔ Sanción no aplicada",
				Value: "La advertencia quedó registrada, pero no tengo permisos suficientes para aplicar la sanción.",
			})
		}

		if err := ctx.EditReplyEmbed(embed); err != nil {
			logger.Error(fmt.Sprintf("Error enviando respuesta de warn: %v", err), "CMD-Warn")
		}

		// Mirror the embed to the configured log channel, if any
		if logChannel := moderation.GetGuard().LogChannel(guildID); logChannel != "" && logChannel != ctx.Interaction.ChannelID {
			if _, err := ctx.Session.ChannelMessageSendEmbed(logChannel, embed); err != nil {
				logger.Warn(fmt.Sprintf("No se pudo enviar el registro al canal de logs: %v", err), "CMD-Warn")
			}
		}

		mqtt.Publish(mqtt.TopicModeration, "warning", guildID, user.ID, map[string]interface{}{
			"moderator_id": ctx.User().ID,
			"reason":       reason,
			"count":        count,
			"action":       actionText,
		})
	}()

	return nil
}

// Package setup - /setup quarantine command
package setup

import (
	"fmt"
	"time"

	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
	"github.com/PancyStudios/LaffeyBotGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createSetupQuarantineCommand creates the /setup quarantine subcommand
func createSetupQuarantineCommand() *discord.Command {
	return discord.NewCommand(
		"quarantine",
		"Crea la zona de cuarentena con baneo automático",
		"setup",
		setupQuarantineHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "categoria",
			Description: "Categoría donde crear el canal (por defecto: Moderation)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels | discordgo.PermissionBanMembers)
}

func setupQuarantineHandler(ctx *discord.CommandContext) error {
	categoryName := ctx.GetStringOption("categoria")
	if categoryName == "" {
		categoryName = "Moderation"
	}

	if err := ctx.Defer(); err != nil {
		return err
	}

	go func() {
		defer errors.RecoverMiddleware()()

		guildID := ctx.Interaction.GuildID

		categoryID, err := findOrCreateCategory(ctx, categoryName)
		if err != nil {
			logger.Warn(fmt.Sprintf("Setup quarantine: %v", err), "CMD-Setup")
			ctx.EditReply("❌ No tengo permisos para crear categorías o canales.")
			return
		}

		channel, err := ctx.Session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
			Name:                 "quarantine-zone",
			Type:                 discordgo.ChannelTypeGuildText,
			Topic:                "Canal de cuarentena. Cualquier no-moderador que escriba aquí será baneado automáticamente.",
			ParentID:             categoryID,
			PermissionOverwrites: readOnlyOverwrites(guildID, ctx.Session.State.User.ID, false),
		})
		if err != nil {
			logger.Warn(fmt.Sprintf("Setup quarantine: creación de canal falló: %v", err), "CMD-Setup")
			ctx.EditReply("❌ No tengo permisos para crear o configurar el canal de cuarentena.")
			return
		}

		if _, err := moderation.GetGuard().AddChannel(guildID, channel.ID); err != nil {
			logger.Error(fmt.Sprintf("Setup quarantine: no se pudo guardar el canal: %v", err), "CMD-Setup")
			ctx.EditReply("❌ El canal se creó pero no se pudo registrar. Intenta de nuevo.")
			return
		}

		// Warning embed inside the new channel
		warningEmbed := &discordgo.MessageEmbed{
			Title:       "⚠️ ZONA DE CUARENTENA - ADVERTENCIA ⚠️",
			Description: "**Este es un canal de cuarentena. No envíes mensajes aquí a menos que seas moderador.**",
			Color:       0xFF0000, // Red
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "⚠️ Baneo automático",
					Value: "¡Cualquier no-moderador que envíe un mensaje aquí será **baneado automáticamente**!",
				},
				{
					Name:  "Propósito",
					Value: "Los moderadores usan este canal para aislar contenido problemático y banear infractores.",
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Canal creado por %s", ctx.User().Username),
			},
		}
		if _, err := ctx.Session.ChannelMessageSendEmbed(channel.ID, warningEmbed); err != nil {
			logger.Warn(fmt.Sprintf("Setup quarantine: no se pudo enviar el aviso: %v", err), "CMD-Setup")
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🚫 Zona de cuarentena configurada",
			Description: fmt.Sprintf("Canal de cuarentena creado: <#%s>. Los no-moderadores que escriban ahí serán baneados.", channel.ID),
			Color:       0xFF0000,
			Timestamp:   time.Now().Format(time.RFC3339),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Moderador", Value: ctx.User().Mention(), Inline: true},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 Developed by PancyStudio | LaffeyBot Go",
				IconURL: ctx.Guild().IconURL(""),
			},
		}
		ctx.EditReplyEmbed(embed)
	}()

	return nil
}

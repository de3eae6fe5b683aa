// Package setup - /setup log command
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

// createSetupLogCommand creates the /setup log subcommand
func createSetupLogCommand() *discord.Command {
	return discord.NewCommand(
		"log",
		"Crea el canal de registros de moderación",
		"setup",
		setupLogHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "categoria",
			Description: "Categoría donde crear el canal (por defecto: Moderation)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels)
}

func setupLogHandler(ctx *discord.CommandContext) error {
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
			logger.Warn(fmt.Sprintf("Setup log: %v", err), "CMD-Setup")
			ctx.EditReply("❌ No tengo permisos para crear categorías o canales.")
			return
		}

		channel, err := ctx.Session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
			Name:                 "mod-logs",
			Type:                 discordgo.ChannelTypeGuildText,
			Topic:                "Registros de moderación. Visible para todos, solo lectura.",
			ParentID:             categoryID,
			PermissionOverwrites: readOnlyOverwrites(guildID, ctx.Session.State.User.ID, false),
		})
		if err != nil {
			logger.Warn(fmt.Sprintf("Setup log: creación de canal falló: %v", err), "CMD-Setup")
			ctx.EditReply("❌ No tengo permisos para crear o configurar el canal de registros.")
			return
		}

		if err := moderation.GetGuard().SetLogChannel(guildID, channel.ID); err != nil {
			logger.Error(fmt.Sprintf("Setup log: no se pudo guardar el canal: %v", err), "CMD-Setup")
			ctx.EditReply("❌ El canal se creó pero no se pudo registrar. Intenta de nuevo.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "📝 Canal de registros configurado",
			Description: fmt.Sprintf("Canal de registros creado: <#%s>. Visible para todos (solo lectura).", channel.ID),
			Color:       0x3498DB, // Blue
			Timestamp:   time.Now().Format(time.RFC3339),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Moderador", Value: ctx.User().Mention(), Inline: true},
				{Name: "Información", Value: "Todas las acciones de moderación se registrarán en este canal."},
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

// Package setup - /setup counting command
package setup

import (
	"fmt"
	"time"

	"github.com/PancyStudios/LaffeyBotGo/pkg/counting"
	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createSetupCountingCommand creates the /setup counting subcommand
func createSetupCountingCommand() *discord.Command {
	return discord.NewCommand(
		"counting",
		"Configura el canal del juego de contar",
		"setup",
		setupCountingHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal existente a usar (si se omite, se crea uno nuevo)",
			Required:    false,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "categoria",
			Description: "Categoría donde crear el canal (por defecto: Fun)",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageChannels).
		WithBotPermissions(discordgo.PermissionManageChannels | discordgo.PermissionAddReactions)
}

func setupCountingHandler(ctx *discord.CommandContext) error {
	existing := ctx.GetChannelOption("canal")
	categoryName := ctx.GetStringOption("categoria")
	if categoryName == "" {
		categoryName = "Fun"
	}

	if err := ctx.Defer(); err != nil {
		return err
	}

	go func() {
		defer errors.RecoverMiddleware()()

		guildID := ctx.Interaction.GuildID
		var channelID string

		if existing != nil {
			channelID = existing.ID
		} else {
			categoryID, err := findOrCreateCategory(ctx, categoryName)
			if err != nil {
				logger.Warn(fmt.Sprintf("Setup counting: %v", err), "CMD-Setup")
				ctx.EditReply("❌ No tengo permisos para crear categorías o canales.")
				return
			}

			channel, err := ctx.Session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
				Name:                 "counting",
				Type:                 discordgo.ChannelTypeGuildText,
				Topic:                "¡Cuenta números en orden! Empieza con 1. ¡No cuentes dos veces seguidas!",
				ParentID:             categoryID,
				PermissionOverwrites: readOnlyOverwrites(guildID, ctx.Session.State.User.ID, true),
			})
			if err != nil {
				logger.Warn(fmt.Sprintf("Setup counting: creación de canal falló: %v", err), "CMD-Setup")
				ctx.EditReply("❌ No tengo permisos para crear o configurar el canal de contar.")
				return
			}
			channelID = channel.ID
		}

		if err := counting.GetGame().BindChannel(guildID, channelID); err != nil {
			logger.Error(fmt.Sprintf("Setup counting: no se pudo guardar el canal: %v", err), "CMD-Setup")
			ctx.EditReply("❌ El canal no se pudo registrar. Intenta de nuevo.")
			return
		}

		// Rules embed inside the counting channel
		rulesEmbed := &discordgo.MessageEmbed{
			Title:       "🔢 Canal de contar",
			Description: "¡Bienvenido al canal de contar! Así funciona:",
			Color:       0x3498DB, // Blue
			Fields: []*discordgo.MessageEmbedField{
				{
					Name:  "📋 Reglas",
					Value: "• Cuenta en orden empezando desde 1\n• No cuentes dos veces seguidas\n• Los números pueden llevar texto después\n• Usa 'resetnum' para reiniciar manualmente",
				},
				{
					Name:  "🎯 Objetivo",
					Value: "¡Intenten llegar al número más alto posible como servidor!",
				},
			},
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("Canal configurado por %s • ¡Empieza a contar con '1'!", ctx.User().Username),
			},
		}
		if _, err := ctx.Session.ChannelMessageSendEmbed(channelID, rulesEmbed); err != nil {
			logger.Warn(fmt.Sprintf("Setup counting: no se pudo enviar las reglas: %v", err), "CMD-Setup")
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🔢 Juego de contar configurado",
			Description: fmt.Sprintf("Canal de contar listo: <#%s>", channelID),
			Color:       0x00FF00, // Green
			Timestamp:   time.Now().Format(time.RFC3339),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Moderador", Value: ctx.User().Mention(), Inline: true},
				{Name: "Siguiente número", Value: "1", Inline: true},
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

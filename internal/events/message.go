// Package events provides event handlers for message events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/LaffeyBotGo/pkg/counting"
	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"
	"github.com/PancyStudios/LaffeyBotGo/pkg/moderation"
	"github.com/PancyStudios/LaffeyBotGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// transientDelay is how long correction notices stay before self-deleting
const transientDelay = 5 * time.Second

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageCreate)
	client.Session.AddHandler(onMessageDelete)
}

// onMessageCreate routes guild messages through the quarantine guard
// first and the counting game second
func onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignorar mensajes de bots y DMs
	if m.Author.Bot || m.GuildID == "" {
		return
	}

	if moderation.GetGuard().IsQuarantineChannel(m.GuildID, m.ChannelID) {
		handleQuarantineMessage(s, m)
		return
	}

	if counting.GetGame().IsCountingChannel(m.GuildID, m.ChannelID) {
		handleCountingMessage(s, m)
	}
}

// handleQuarantineMessage bans any non-moderator who posts in a
// quarantine channel. The triggering message and the author's recent
// messages in the channel are removed first.
func handleQuarantineMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Los moderadores pueden escribir en la zona de cuarentena
	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err == nil && perms&discordgo.PermissionKickMembers != 0 {
		return
	}

	if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo borrar el mensaje detonante: %v", err), "Quarantine")
	}

	// Limpiar los mensajes recientes del autor en el canal (best effort)
	if recent, err := s.ChannelMessages(m.ChannelID, 100, "", "", ""); err == nil {
		for _, msg := range recent {
			if msg.Author != nil && msg.Author.ID == m.Author.ID {
				_ = s.ChannelMessageDelete(m.ChannelID, msg.ID)
			}
		}
	}

	if err := s.GuildBanCreateWithReason(m.GuildID, m.Author.ID, "Escribió en el canal de cuarentena", 0); err != nil {
		// El baneo falló: alerta visible en el canal, sin reintento
		logger.Warn(fmt.Sprintf("No se pudo banear a %s: %v", m.Author.ID, err), "Quarantine")
		alert := &discordgo.MessageEmbed{
			Title:       "⚠️ Alerta de cuarentena",
			Description: fmt.Sprintf("<@%s> escribió en el canal de cuarentena pero **no pude banearlo**. Revisa mis permisos.", m.Author.ID),
			Color:       0xFFA500, // Orange
		}
		if _, err := s.ChannelMessageSendEmbed(m.ChannelID, alert); err != nil {
			logger.Error(fmt.Sprintf("No se pudo enviar la alerta de cuarentena: %v", err), "Quarantine")
		}
		return
	}

	banCount, err := moderation.GetGuard().RecordAutoBan(m.GuildID)
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo persistir el contador de baneos: %v", err), "Quarantine")
	}

	logger.Info(fmt.Sprintf("🚫 Auto-ban #%d en %s: %s", banCount, m.GuildID, m.Author.ID), "Quarantine")

	// Registro detallado en el canal de logs, si está configurado
	if logChannel := moderation.GetGuard().LogChannel(m.GuildID); logChannel != "" {
		if _, err := s.ChannelMessageSendEmbed(logChannel, buildAutoBanAudit(s, m)); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo enviar el registro de auto-ban: %v", err), "Quarantine")
		}
	}

	// Contador visible en el propio canal de cuarentena
	counterEmbed := &discordgo.MessageEmbed{
		Title:       "📊 Contador de auto-bans actualizado",
		Description: fmt.Sprintf("**Total de auto-bans: %d**", banCount),
		Color:       0x8B0000, // Dark red
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Último baneo", Value: fmt.Sprintf("<@%s> (`%s`)", m.Author.ID, m.Author.ID)},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Baneo #%d", banCount),
		},
	}
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, counterEmbed); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo enviar el contador de baneos: %v", err), "Quarantine")
	}

	mqtt.Publish(mqtt.TopicModeration, "auto_ban", m.GuildID, m.Author.ID, map[string]interface{}{
		"ban_count":  banCount,
		"channel_id": m.ChannelID,
	})
}

// buildAutoBanAudit assembles the detailed audit embed for the log
// channel: account dates, roles, and an excerpt of the message.
func buildAutoBanAudit(s *discordgo.Session, m *discordgo.MessageCreate) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🚫 Usuario auto-baneado",
		Description: fmt.Sprintf("<@%s> fue baneado automáticamente por escribir en el canal de cuarentena", m.Author.ID),
		Color:       0xFF0000, // Red
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Auto-ban ejecutado • ID del mensaje: %s", m.ID),
		},
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "👤 Usuario", Value: fmt.Sprintf("%s (`%s`)", m.Author.Username, m.Author.ID), Inline: true},
	)

	// Fecha de creación de la cuenta derivada del snowflake
	if created, err := discordgo.SnowflakeTimestamp(m.Author.ID); err == nil {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "📅 Cuenta creada", Value: fmt.Sprintf("<t:%d:F>", created.Unix()), Inline: true})
	}

	if m.Member != nil && !m.Member.JoinedAt.IsZero() {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "📥 Se unió al servidor", Value: fmt.Sprintf("<t:%d:F>", m.Member.JoinedAt.Unix()), Inline: true})
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "📍 Canal", Value: fmt.Sprintf("<#%s>", m.ChannelID), Inline: true},
	)

	// Extracto del mensaje, acotado
	content := m.Content
	if content == "" {
		content = "*Sin contenido de texto*"
	}
	if len(content) > 1000 {
		content = content[:1000] + "..."
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "💬 Contenido del mensaje", Value: fmt.Sprintf("```%s```", content)})

	// Roles del miembro (sin @everyone, que no aparece en Member.Roles)
	if m.Member != nil && len(m.Member.Roles) > 0 {
		roles := ""
		shown := m.Member.Roles
		if len(shown) > 10 {
			shown = shown[:10]
		}
		for i, roleID := range shown {
			if i > 0 {
				roles += ", "
			}
			roles += fmt.Sprintf("<@&%s>", roleID)
		}
		if extra := len(m.Member.Roles) - len(shown); extra > 0 {
			roles += fmt.Sprintf(" y %d más...", extra)
		}
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "🎭 Roles", Value: roles})
	} else {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "🎭 Roles", Value: "Sin roles"})
	}

	if avatar := m.Author.AvatarURL("128"); avatar != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: avatar}
	}

	return embed
}

// handleCountingMessage evaluates a message in the bound counting
// channel and applies the platform effects the engine decided on
func handleCountingMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	result, err := counting.GetGame().HandleMessage(m.GuildID, m.ChannelID, m.Author.ID, m.Content)
	if err != nil {
		logger.Error(fmt.Sprintf("Error evaluando mensaje de contar: %v", err), "Counting")
		return
	}

	switch result.Kind {
	case counting.ResultIgnored:
		return

	case counting.ResultReset:
		embed := &discordgo.MessageEmbed{
			Title:       "🔄 ¡Conteo reiniciado!",
			Description: fmt.Sprintf("El conteo fue reiniciado manualmente por <@%s>. Siguiente número: **1**", m.Author.ID),
			Color:       0xFFA500, // Orange
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Conteo anterior", Value: fmt.Sprintf("%d", result.Previous), Inline: true},
				{Name: "Récord", Value: fmt.Sprintf("%d", result.HighScore), Inline: true},
			},
		}
		if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
			logger.Warn(fmt.Sprintf("No se pudo confirmar el reinicio: %v", err), "Counting")
		}

	case counting.ResultNoNumber:
		// Sin número válido: borrar y avisar, sin tocar el estado
		if err := s.ChannelMessageDelete(m.ChannelID, m.ID); err != nil {
			logger.Debug(fmt.Sprintf("No se pudo borrar el mensaje sin número: %v", err), "Counting")
		}
		discord.SendTransient(s, m.ChannelID,
			fmt.Sprintf("❌ <@%s>, ¡no encontré un número válido! Número actual: **%d**", m.Author.ID, result.Expected),
			transientDelay)

	case counting.ResultAccepted:
		if err := s.MessageReactionAdd(m.ChannelID, m.ID, "✅"); err != nil {
			logger.Debug(fmt.Sprintf("No se pudo reaccionar al conteo: %v", err), "Counting")
		}
		if result.Celebrate {
			embed := &discordgo.MessageEmbed{
				Title:       "🎉 ¡Nuevo récord!",
				Description: fmt.Sprintf("¡Felicidades! ¡El servidor llegó a **%d**!", result.Number),
				Color:       0xFFD700, // Gold
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Logro de", Value: fmt.Sprintf("<@%s>", m.Author.ID), Inline: true},
				},
			}
			if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
				logger.Warn(fmt.Sprintf("No se pudo celebrar el récord: %v", err), "Counting")
			}
			mqtt.Publish(mqtt.TopicCounting, "high_score", m.GuildID, m.Author.ID, map[string]interface{}{
				"number": result.Number,
			})
		}

	case counting.ResultSameUser:
		reactAndCorrect(s, m,
			fmt.Sprintf("❌ <@%s>, ¡no puedes contar dos veces seguidas! Espera a que otra persona cuente. Número actual: **%d**",
				m.Author.ID, result.Expected))

	case counting.ResultWrongNumber:
		reactAndCorrect(s, m,
			fmt.Sprintf("❌ <@%s>, ¡número equivocado! Se esperaba **%d**, recibí **%d**. Número actual: **%d**",
				m.Author.ID, result.Expected, result.Number, result.Expected))
	}
}

// reactAndCorrect marks a rejected count and sends the transient
// correction notice
func reactAndCorrect(s *discordgo.Session, m *discordgo.MessageCreate, notice string) {
	if err := s.MessageReactionAdd(m.ChannelID, m.ID, "❌"); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo reaccionar al fallo: %v", err), "Counting")
	}
	discord.SendTransient(s, m.ChannelID, notice, transientDelay)
}

// onMessageDelete is called when a message is deleted
func onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	logger.Debug(fmt.Sprintf("🗑️ Mensaje eliminado: ID %s en canal %s",
		m.ID, m.ChannelID), "Message")
}

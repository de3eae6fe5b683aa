// Package fun - /fun countingstats command
package fun

import (
	"fmt"
	"time"

	"github.com/PancyStudios/LaffeyBotGo/pkg/counting"
	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
	"github.com/bwmarrin/discordgo"
)

// createCountingStatsCommand creates the /fun countingstats subcommand
func createCountingStatsCommand() *discord.Command {
	return discord.NewCommand(
		"countingstats",
		"Estadísticas del juego de contar",
		"fun",
		countingStatsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar (si se omite, muestra el servidor)",
			Required:    false,
		},
	)
}

func countingStatsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")

	go func() {
		defer errors.RecoverMiddleware()()

		guildID := ctx.Interaction.GuildID
		game := counting.GetGame()

		state, ok := game.GuildStats(guildID)
		if !ok || state.ChannelID == "" {
			ctx.ReplyEphemeral("ℹ️ Este servidor no tiene un canal de contar configurado. Usa `/setup counting`.")
			return
		}

		if user != nil {
			// Per-user report
			report, _ := game.UserStats(guildID, user.ID)
			embed := &discordgo.MessageEmbed{
				Title: fmt.Sprintf("🔢 Estadísticas de contar de %s", user.Username),
				Color: 0x3498DB, // Blue
				Description: fmt.Sprintf("> ✅ - **Aciertos:** %d\n> ❌ - **Fallos:** %d\n> 🎯 - **Precisión:** %.1f%%",
					report.Correct, report.Failed, report.Accuracy),
				Timestamp: time.Now().Format(time.RFC3339),
				Footer: &discordgo.MessageEmbedFooter{
					Text:    "💫 Developed by PancyStudio | LaffeyBot Go",
					IconURL: ctx.Guild().IconURL(""),
				},
			}
			ctx.ReplyEmbed(embed)
			return
		}

		// Guild-wide report with top 5 leaderboard
		description := fmt.Sprintf("> 🔢 - **Número actual:** %d\n> 🏆 - **Récord:** %d\n> 📈 - **Total de conteos:** %d\n> 📍 - **Canal:** <#%s>",
			state.CurrentNumber, state.HighScore, state.TotalCounts, state.ChannelID)

		var leaderboardText string
		for i, entry := range game.Leaderboard(guildID, 5) {
			leaderboardText += fmt.Sprintf("%d. <@%s> — %d aciertos, %d fallos\n", i+1, entry.UserID, entry.Correct, entry.Failed)
		}
		if leaderboardText == "" {
			leaderboardText = "Todavía nadie ha contado. ¡Sé el primero!"
		}

		embed := &discordgo.MessageEmbed{
			Title:       "🔢 Estadísticas del juego de contar",
			Color:       0x3498DB,
			Description: description,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "🏅 Mejores contadores", Value: leaderboardText},
			},
			Timestamp: time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text:    "💫 Developed by PancyStudio | LaffeyBot Go",
				IconURL: ctx.Guild().IconURL(""),
			},
		}
		ctx.ReplyEmbed(embed)
	}()

	return nil
}

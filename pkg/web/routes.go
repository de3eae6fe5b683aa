// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/PancyStudios/LaffeyBotGo/pkg/counting"
	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/moderation"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/guilds/:id/counting", guildCountingHandler)
		api.GET("/guilds/:id/quarantine", guildQuarantineHandler)
	}

	// Live event feed for dashboards
	s.GET("/ws", feedHandler)
}

// statusHandler returns the bot status
func statusHandler(c *gin.Context) {
	client := discord.Get()

	botOnline := false
	guilds := 0
	if client != nil {
		botOnline = client.IsReady()
		guilds = client.GuildCount()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"bot": gin.H{
			"isOnline": botOnline,
			"guilds":   guilds,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "LaffeyBot Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// guildCountingHandler returns the counting game state for one guild
func guildCountingHandler(c *gin.Context) {
	guildID := c.Param("id")

	state, ok := counting.GetGame().GuildStats(guildID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "El servidor no tiene un juego de contar configurado.",
		})
		return
	}

	leaderboard := counting.GetGame().Leaderboard(guildID, 5)

	c.JSON(http.StatusOK, gin.H{
		"channel_id":     state.ChannelID,
		"current_number": state.CurrentNumber,
		"high_score":     state.HighScore,
		"total_counts":   state.TotalCounts,
		"leaderboard":    leaderboard,
	})
}

// guildQuarantineHandler returns the quarantine stats for one guild
func guildQuarantineHandler(c *gin.Context) {
	guildID := c.Param("id")
	guard := moderation.GetGuard()

	c.JSON(http.StatusOK, gin.H{
		"log_channel": guard.LogChannel(guildID),
		"ban_count":   guard.BanCount(guildID),
	})
}

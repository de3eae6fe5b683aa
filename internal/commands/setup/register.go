// Package setup provides the /setup command group: creation and binding
// of the quarantine zone, the moderation log channel and the counting
// channel, each with the permission overwrites it needs.
package setup

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// RegisterSetupCommands registers all setup commands as /setup subcommands
func RegisterSetupCommands(client *discord.ExtendedClient) {
	quarantineCmd := createSetupQuarantineCommand()
	logCmd := createSetupLogCommand()
	countingCmd := createSetupCountingCommand()

	setupGroup := client.CommandHandler.BuildCommandGroup(
		"setup",
		"Configura los canales del bot",
		quarantineCmd,
		logCmd,
		countingCmd,
	)

	client.CommandHandler.AddGlobalCommand(setupGroup)
}

// findOrCreateCategory returns the ID of the category with the given
// name, creating it when the guild has none (case-insensitive match).
func findOrCreateCategory(ctx *discord.CommandContext, name string) (string, error) {
	channels, err := ctx.Session.GuildChannels(ctx.Interaction.GuildID)
	if err != nil {
		return "", fmt.Errorf("no se pudieron listar los canales: %w", err)
	}

	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildCategory && strings.EqualFold(ch.Name, name) {
			return ch.ID, nil
		}
	}

	category, err := ctx.Session.GuildChannelCreateComplex(ctx.Interaction.GuildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildCategory,
	})
	if err != nil {
		return "", fmt.Errorf("no se pudo crear la categoría: %w", err)
	}
	return category.ID, nil
}

// readOnlyOverwrites locks a channel so @everyone can read but not
// write, while the bot keeps full message control. The everyone role
// shares its ID with the guild.
func readOnlyOverwrites(guildID, botID string, everyoneCanSend bool) []*discordgo.PermissionOverwrite {
	everyoneDeny := int64(discordgo.PermissionCreatePublicThreads |
		discordgo.PermissionCreatePrivateThreads |
		discordgo.PermissionSendMessagesInThreads |
		discordgo.PermissionAttachFiles |
		discordgo.PermissionAddReactions |
		discordgo.PermissionUseSlashCommands)
	everyoneAllow := int64(discordgo.PermissionViewChannel)
	if everyoneCanSend {
		everyoneAllow |= discordgo.PermissionSendMessages
	} else {
		everyoneDeny |= discordgo.PermissionSendMessages
	}

	return []*discordgo.PermissionOverwrite{
		{
			ID:    guildID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: everyoneAllow,
			Deny:  everyoneDeny,
		},
		{
			ID:   botID,
			Type: discordgo.PermissionOverwriteTypeMember,
			Allow: int64(discordgo.PermissionViewChannel |
				discordgo.PermissionSendMessages |
				discordgo.PermissionEmbedLinks |
				discordgo.PermissionAttachFiles |
				discordgo.PermissionManageMessages |
				discordgo.PermissionAddReactions),
		},
	}
}

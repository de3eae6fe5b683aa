package utils

import (
	"github.com/PancyStudios/LaffeyBotGo/pkg/discord"
	"github.com/PancyStudios/LaffeyBotGo/pkg/errors"
)

// createHelpCommand creates the /utils help subcommand
func createHelpCommand() *discord.Command {
	return discord.NewCommand(
		"help",
		"Muestra información de ayuda",
		"utils",
		helpHandler,
	)
}

// helpHandler handles the /utils help command
func helpHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()
		ctx.Reply(
			"📖 **Ayuda de LaffeyBot Go**\n\n" +
				"**Comandos disponibles:**\n" +
				"• `/utils ping` - Comprueba la latencia\n" +
				"• `/utils status` - Estado del bot\n" +
				"• `/utils stats` - Estadísticas del bot\n" +
				"• `/mod warn <usuario> <razón>` - Advierte a un usuario\n" +
				"• `/mod warnings [usuario]` - Lista las advertencias\n" +
				"• `/mod removewarnings <usuario> <cantidad>` - Elimina las advertencias más recientes\n" +
				"• `/mod clearwarnings <usuario>` - Borra todas las advertencias\n" +
				"• `/mod removetimeout <usuario>` - Retira el aislamiento de un usuario\n" +
				"• `/setup quarantine [categoría]` - Crea el canal de cuarentena\n" +
				"• `/setup log [categoría]` - Crea el canal de logs\n" +
				"• `/setup counting [canal] [categoría]` - Configura el juego de contar\n" +
				"• `/fun countingstats [usuario]` - Estadísticas del juego de contar",
		)
	}()
	return nil
}

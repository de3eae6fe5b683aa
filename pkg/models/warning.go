package models

// WarningRecord representa una advertencia individual.
// Los registros son inmutables una vez creados; el orden de inserción
// dentro de la secuencia de un usuario es el orden cronológico.
type WarningRecord struct {
	ID          string `json:"id,omitempty"`
	ModeratorID string `json:"moderator_id"`
	Reason      string `json:"reason"`
	Timestamp   string `json:"timestamp"`
	GuildID     string `json:"guild_id"`
}

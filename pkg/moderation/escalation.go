package moderation

import "time"

// EscalationAction is the kind of punishment tied to a warning count
type EscalationAction int

const (
	ActionNone EscalationAction = iota
	ActionTimeout
	ActionKick
)

// Escalation is the punitive action derived from a warning count
type Escalation struct {
	Action   EscalationAction
	Duration time.Duration
}

// EscalationFor returns the action for the exact resulting count.
// Exactly one action fires per added warning: counts 2-4 map to fixed
// timeout durations, 5 and above always kick.
func EscalationFor(count int) Escalation {
	switch {
	case count == 2:
		return Escalation{Action: ActionTimeout, Duration: 30 * time.Minute}
	case count == 3:
		return Escalation{Action: ActionTimeout, Duration: 3 * time.Hour}
	case count == 4:
		return Escalation{Action: ActionTimeout, Duration: 7 * 24 * time.Hour}
	case count >= 5:
		return Escalation{Action: ActionKick}
	default:
		return Escalation{Action: ActionNone}
	}
}

// Describe returns the human-readable action label used in embeds
func (e Escalation) Describe() string {
	switch e.Action {
	case ActionTimeout:
		switch e.Duration {
		case 30 * time.Minute:
			return "⏰ Aislamiento de 30 minutos aplicado (2ª advertencia)"
		case 3 * time.Hour:
			return "⏰ Aislamiento de 3 horas aplicado (3ª advertencia)"
		default:
			return "⏰ Aislamiento de 7 días aplicado (4ª advertencia)"
		}
	case ActionKick:
		return "🚫 Usuario expulsado (5ª advertencia)"
	default:
		return "Advertencia registrada"
	}
}

// Package counting implements the sequential counting game: one bound
// channel per guild where members count upwards, no member twice in a
// row. The engine validates messages and keeps per-guild and per-user
// statistics; reactions, deletions and announcements are applied by the
// message event handler.
package counting

import (
	"math"
	"strconv"
	"strings"

	"github.com/PancyStudios/LaffeyBotGo/pkg/models"
	"github.com/PancyStudios/LaffeyBotGo/pkg/storage"
)

// ResetKeyword resets the count when a message matches it exactly
// (after trimming and lowercasing)
const ResetKeyword = "resetnum"

// ResultKind classifies the outcome of an evaluated message
type ResultKind int

const (
	// ResultIgnored means the message was not subject to the game
	ResultIgnored ResultKind = iota
	// ResultReset means the reset keyword was used
	ResultReset
	// ResultNoNumber means no leading number could be extracted
	ResultNoNumber
	// ResultAccepted means the count advanced
	ResultAccepted
	// ResultSameUser means the author counted twice in a row
	ResultSameUser
	// ResultWrongNumber means the extracted number was not the expected one
	ResultWrongNumber
)

// Result describes the outcome of one evaluated message.
// Expected always carries the number callers should try next.
type Result struct {
	Kind         ResultKind
	Expected     int
	Number       int
	Previous     int
	HighScore    int
	NewHighScore bool
	Celebrate    bool
}

// Game es el validador del juego de contar de todos los servidores
type Game struct {
	store *storage.CountingStore
}

// NewGame creates a game backed by the given store
func NewGame(store *storage.CountingStore) *Game {
	return &Game{store: store}
}

// ExtractNumber takes the longest prefix of leading decimal digits from
// the trimmed text. Trailing or embedded numbers are not recognized.
// A prefix too large for int saturates to math.MaxInt so it can never
// match an expected count and is rejected as a wrong number.
func ExtractNumber(text string) (int, bool) {
	text = strings.TrimSpace(text)

	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return math.MaxInt, true
	}
	return n, true
}

// BindChannel binds the counting channel for a guild, creating the
// guild state on first setup
func (g *Game) BindChannel(guildID, channelID string) error {
	return g.store.Update(func(doc map[string]*models.CountingState) (bool, error) {
		state, ok := doc[guildID]
		if !ok {
			state = models.NewCountingState()
			doc[guildID] = state
		}
		state.ChannelID = channelID
		return true, nil
	})
}

// ChannelFor returns the bound counting channel for a guild, or ""
func (g *Game) ChannelFor(guildID string) string {
	doc, err := g.store.Load()
	if err != nil {
		return ""
	}
	if state, ok := doc[guildID]; ok {
		return state.ChannelID
	}
	return ""
}

// IsCountingChannel reports whether the channel is the guild's bound one
func (g *Game) IsCountingChannel(guildID, channelID string) bool {
	return channelID != "" && g.ChannelFor(guildID) == channelID
}

// HandleMessage evaluates one inbound message against the game rules.
// Messages outside the bound channel, or for guilds with no game set up,
// yield ResultIgnored without touching the store.
func (g *Game) HandleMessage(guildID, channelID, userID, content string) (Result, error) {
	result := Result{Kind: ResultIgnored}

	err := g.store.Update(func(doc map[string]*models.CountingState) (bool, error) {
		state, ok := doc[guildID]
		if !ok || state.ChannelID == "" || state.ChannelID != channelID {
			return false, nil
		}

		// El reset manual tiene prioridad sobre todas las demás reglas
		if strings.ToLower(strings.TrimSpace(content)) == ResetKeyword {
			result = Result{
				Kind:      ResultReset,
				Expected:  1,
				Previous:  state.CurrentNumber,
				HighScore: state.HighScore,
			}
			state.CurrentNumber = 0
			state.LastUserID = ""
			return true, nil
		}

		expected := state.CurrentNumber + 1

		number, ok := ExtractNumber(content)
		if !ok {
			// Sin número al inicio: no hay mutación ni fallo contabilizado
			result = Result{Kind: ResultNoNumber, Expected: expected}
			return false, nil
		}

		if number == expected && userID != state.LastUserID {
			state.CurrentNumber = number
			state.LastUserID = userID
			state.TotalCounts++
			state.StatsFor(userID).Correct++

			result = Result{
				Kind:      ResultAccepted,
				Expected:  number + 1,
				Number:    number,
				HighScore: state.HighScore,
			}
			if number > state.HighScore {
				state.HighScore = number
				result.HighScore = number
				result.NewHighScore = true
				result.Celebrate = number%10 == 0 || number > 50
			}
			return true, nil
		}

		// Rechazo: el mismo usuario tiene prioridad en el mensaje de aviso
		state.StatsFor(userID).Failed++
		result = Result{
			Kind:      ResultWrongNumber,
			Expected:  expected,
			Number:    number,
			HighScore: state.HighScore,
		}
		if userID == state.LastUserID {
			result.Kind = ResultSameUser
		}
		return true, nil
	})

	return result, err
}

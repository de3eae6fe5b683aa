package models

import (
	json "github.com/goccy/go-json"
)

// QuarantineConfig representa la configuración de cuarentena de un
// servidor: canales vigilados, canal de logs y contador de baneos.
// BanCount solo incrementa, nunca decrece.
type QuarantineConfig struct {
	Channels     []string `json:"channels"`
	LogChannelID string   `json:"log_channel"`
	BanCount     int      `json:"ban_count"`
}

// quarantineConfigAlias evita recursión en UnmarshalJSON
type quarantineConfigAlias QuarantineConfig

// UnmarshalJSON accepts both the current object shape and the legacy
// shape (a bare array of channel IDs). Legacy entries are upgraded in
// memory; the next write persists the new shape.
func (q *QuarantineConfig) UnmarshalJSON(data []byte) error {
	var legacy []string
	if err := json.Unmarshal(data, &legacy); err == nil {
		q.Channels = legacy
		q.LogChannelID = ""
		q.BanCount = 0
		return nil
	}

	var alias quarantineConfigAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*q = QuarantineConfig(alias)
	return nil
}

// HasChannel reports whether a channel is flagged as quarantine
func (q *QuarantineConfig) HasChannel(channelID string) bool {
	for _, id := range q.Channels {
		if id == channelID {
			return true
		}
	}
	return false
}

// AddChannel adds a channel to the quarantine set.
// Returns false if it was already present.
func (q *QuarantineConfig) AddChannel(channelID string) bool {
	if q.HasChannel(channelID) {
		return false
	}
	q.Channels = append(q.Channels, channelID)
	return true
}

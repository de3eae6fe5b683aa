// Package mqtt publishes moderation and counting events to an MQTT
// broker so external dashboards can consume them. Publishing is
// optional: without a configured broker every call is a no-op.
package mqtt

import (
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/PancyStudios/LaffeyBotGo/pkg/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Topics for published bot events
const (
	TopicModeration = "laffeybot/moderation"
	TopicCounting   = "laffeybot/counting"
)

// Event is the envelope for every published bot event
type Event struct {
	Kind      string      `json:"kind"`
	GuildID   string      `json:"guild_id"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp string      `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Publisher handles the broker connection and event publishing
type Publisher struct {
	client   mqtt.Client
	clientID string
}

var (
	publisher *Publisher
	once      sync.Once

	// broadcaster mirrors every event to an in-process consumer (the
	// web socket feed), independent of the broker connection
	broadcaster func(Event)
)

// SetBroadcaster registers the in-process event mirror. Wired once at
// startup, before any handler runs.
func SetBroadcaster(fn func(Event)) {
	broadcaster = fn
}

// Init initializes the global publisher. An empty host disables
// publishing entirely.
func Init(host, port, username, password, clientID string) *Publisher {
	once.Do(func() {
		if host == "" {
			publisher = &Publisher{}
			logger.Info("MQTT deshabilitado (sin broker configurado)", "MQTT")
			return
		}
		publisher = NewPublisher(host, port, username, password, clientID)
	})
	return publisher
}

// Get returns the global publisher
func Get() *Publisher {
	return publisher
}

// NewPublisher creates a publisher connected to the given broker
func NewPublisher(host, port, username, password, clientID string) *Publisher {
	p := &Publisher{clientID: clientID}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Conectado al broker MQTT como %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("Conexión MQTT perdida: %v", err), "MQTT")
		})

	p.client = mqtt.NewClient(opts)

	token := p.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("Error de conexión MQTT: %v", token.Error()), "MQTT")
	}

	return p
}

// Destroy closes the MQTT connection
func (p *Publisher) Destroy() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
		logger.System("Conexión MQTT cerrada exitosamente.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (p *Publisher) IsConnected() bool {
	return p.client != nil && p.client.IsConnected()
}

// PublishEvent sends an event to a topic, fire and forget.
// Failures are logged, never propagated to the caller.
func (p *Publisher) PublishEvent(topic, kind, guildID, userID string, payload interface{}) {
	event := Event{
		Kind:      kind,
		GuildID:   guildID,
		UserID:    userID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Payload:   payload,
	}

	if broadcaster != nil {
		broadcaster(event)
	}

	if p == nil || p.client == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error(fmt.Sprintf("Error serializando evento MQTT: %v", err), "MQTT")
		return
	}

	go func() {
		token := p.client.Publish(topic, 0, false, data)
		token.Wait()
		if token.Error() != nil {
			logger.Warn(fmt.Sprintf("Error publicando en '%s': %v", topic, token.Error()), "MQTT")
		}
	}()
}

// Publish is the package-level convenience used by handlers
func Publish(topic, kind, guildID, userID string, payload interface{}) {
	if publisher != nil {
		publisher.PublishEvent(topic, kind, guildID, userID, payload)
	}
}

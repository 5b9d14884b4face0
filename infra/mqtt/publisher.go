package mqtt

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/Ju21000/planing-ia-2/core/model"
	"github.com/Ju21000/planing-ia-2/infra/logger"
)

// Config holds connection settings for the roster publisher.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
	Retain   bool   `json:"retain"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "roster-" + uuid.NewString()
	}
	if c.Topic == "" {
		c.Topic = "roster/week"
	}
}

// Validate checks mandatory fields when publishing is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("broker is required")
	}
	return nil
}

// Publisher pushes a completed roster to downstream consumers.
type Publisher interface {
	PublishRoster(runID string, entries []model.ScheduleEntry) error
	Close()
}

// rosterMessage is the wire format published on the roster topic.
type rosterMessage struct {
	RunID     string                `json:"run_id"`
	Timestamp int64                 `json:"timestamp"`
	Entries   []model.ScheduleEntry `json:"entries"`
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// PahoPublisher implements Publisher over Eclipse Paho.
type PahoPublisher struct {
	cli    pahoClient
	cfg    Config
	logger logger.Logger
}

// NewPahoPublisher connects to the MQTT broker.
func NewPahoPublisher(cfg Config) (*PahoPublisher, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New("mqtt_publisher")
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(_ paho.Client, _ *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &PahoPublisher{cli: c, cfg: cfg, logger: log}, nil
}

// PublishRoster publishes the final roster as one JSON message.
func (p *PahoPublisher) PublishRoster(runID string, entries []model.ScheduleEntry) error {
	msg := rosterMessage{RunID: runID, Timestamp: time.Now().UnixMilli(), Entries: entries}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	token := p.cli.Publish(p.cfg.Topic, p.cfg.QoS, p.cfg.Retain, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish roster: %w", token.Error())
	}
	p.logger.Infof("published roster %s (%d entries) on %s", runID, len(entries), p.cfg.Topic)
	return nil
}

// Close disconnects from the broker.
func (p *PahoPublisher) Close() {
	p.cli.Disconnect(250)
}

// MockPublisher is a simple publisher used in tests.
type MockPublisher struct {
	mu       sync.Mutex
	Messages map[string][]model.ScheduleEntry
	Fail     bool
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{Messages: make(map[string][]model.ScheduleEntry)}
}

// PublishRoster records the message or returns an error if configured to fail.
func (m *MockPublisher) PublishRoster(runID string, entries []model.ScheduleEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return fmt.Errorf("publish failed")
	}
	m.Messages[runID] = entries
	return nil
}

// Close implements Publisher.
func (m *MockPublisher) Close() {}

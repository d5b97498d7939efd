// Package mqttbridge feeds MQTT messages into a touchui loop. Each
// subscribed topic has a handler; handlers run on the loop goroutine, so
// they may call widget mutators directly.
package mqttbridge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

var (
	ErrNoBroker     = errors.New("mqttbridge: broker not configured")
	ErrNotConnected = errors.New("mqttbridge: not connected")
)

const (
	defaultClientID    = "squixl"
	defaultWillTopic   = "SQUiXL/LWT"
	defaultWillMessage = "Goodbye cruel world!"
	tokenTimeout       = 5 * time.Second
)

// Config is the "mqtt" section of the demo configuration.
type Config struct {
	Broker      string `json:"broker"` // e.g. tcp://192.168.1.10:1883
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	QoS         byte   `json:"qos"`
	WillTopic   string `json:"will_topic"`
	WillMessage string `json:"will_message"`
}

// Poster runs a function on the UI goroutine. *touchui.Loop implements it.
type Poster interface {
	Post(fn func()) bool
}

// Handler receives a message on the UI goroutine.
type Handler func(topic string, payload []byte)

// Bridge owns one MQTT client. Subscriptions are restored after every
// reconnect and each lost connection is counted as an outage.
type Bridge struct {
	cfg    Config
	poster Poster
	log    io.Writer

	mu     sync.Mutex
	routes map[string]Handler
	topics []string
	client mqtt.Client

	connected atomic.Bool
	outages   atomic.Int64
}

// New creates a bridge posting handler calls onto p.
func New(cfg Config, p Poster) *Bridge {
	if cfg.ClientID == "" {
		cfg.ClientID = defaultClientID
	}
	if cfg.WillTopic == "" {
		cfg.WillTopic = defaultWillTopic
	}
	if cfg.WillMessage == "" {
		cfg.WillMessage = defaultWillMessage
	}
	return &Bridge{
		cfg:    cfg,
		poster: p,
		log:    os.Stderr,
		routes: make(map[string]Handler),
	}
}

// SetLogOutput redirects connection logs. A nil writer silences them.
func (b *Bridge) SetLogOutput(w io.Writer) {
	b.log = w
}

// Handle routes messages on topic to h. Topics registered after Connect are
// subscribed on the next (re)connect.
func (b *Bridge) Handle(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.routes[topic]; !ok {
		b.topics = append(b.topics, topic)
	}
	b.routes[topic] = h
}

// Topics returns the routed topics in registration order.
func (b *Bridge) Topics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.topics))
	copy(out, b.topics)
	return out
}

// Connected reports whether the broker connection is up.
func (b *Bridge) Connected() bool {
	return b.connected.Load()
}

// Outages returns how many times the connection has been lost.
func (b *Bridge) Outages() int {
	return int(b.outages.Load())
}

func (b *Bridge) options() *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(b.cfg.Broker)
	opts.SetClientID(b.cfg.ClientID)
	if b.cfg.Username != "" {
		opts.SetUsername(b.cfg.Username)
		opts.SetPassword(b.cfg.Password)
	}
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(5 * time.Second)
	opts.SetWill(b.cfg.WillTopic, b.cfg.WillMessage, 0, false)
	opts.SetOnConnectHandler(b.onConnect)
	opts.SetConnectionLostHandler(b.onConnectionLost)
	return opts
}

// Connect dials the broker and waits for the first connection attempt.
func (b *Bridge) Connect() error {
	if b.cfg.Broker == "" {
		return ErrNoBroker
	}
	client := mqtt.NewClient(b.options())
	b.mu.Lock()
	b.client = client
	b.mu.Unlock()

	tok := client.Connect()
	if !tok.WaitTimeout(tokenTimeout) {
		b.logf("connect to %s still pending, retrying in background", b.cfg.Broker)
		return nil
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("mqtt connect %s: %w", b.cfg.Broker, err)
	}
	return nil
}

// Disconnect closes the connection, allowing quiesce milliseconds for
// in-flight work.
func (b *Bridge) Disconnect(quiesce uint) {
	b.mu.Lock()
	client := b.client
	b.mu.Unlock()
	if client != nil {
		client.Disconnect(quiesce)
	}
	b.connected.Store(false)
}

// Run connects and stays connected until ctx is done. It fits Loop.Go.
func (b *Bridge) Run(ctx context.Context) error {
	if err := b.Connect(); err != nil {
		return err
	}
	<-ctx.Done()
	b.Disconnect(250)
	return ctx.Err()
}

// Publish sends payload on topic at the configured QoS.
func (b *Bridge) Publish(topic, payload string) error {
	b.mu.Lock()
	client := b.client
	b.mu.Unlock()
	if client == nil || !b.connected.Load() {
		return ErrNotConnected
	}
	tok := client.Publish(topic, b.cfg.QoS, false, payload)
	if !tok.WaitTimeout(tokenTimeout) {
		return fmt.Errorf("mqtt publish %s: timeout", topic)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("mqtt publish %s: %w", topic, err)
	}
	return nil
}

// PublishEvery publishes next() on topic every interval until ctx is done.
// Publish failures while disconnected are skipped. It fits Loop.Go.
func (b *Bridge) PublishEvery(ctx context.Context, topic string, interval time.Duration, next func() string) error {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := b.Publish(topic, next()); err != nil && !errors.Is(err, ErrNotConnected) {
				b.logf("%v", err)
			}
		}
	}
}

func (b *Bridge) onConnect(client mqtt.Client) {
	b.connected.Store(true)
	b.logf("connected to %s", b.cfg.Broker)
	for _, topic := range b.Topics() {
		tok := client.Subscribe(topic, b.cfg.QoS, b.onMessage)
		if !tok.WaitTimeout(tokenTimeout) {
			b.logf("subscribe %s: timeout", topic)
			continue
		}
		if err := tok.Error(); err != nil {
			b.logf("subscribe %s: %v", topic, err)
		}
	}
}

func (b *Bridge) onConnectionLost(_ mqtt.Client, err error) {
	b.connected.Store(false)
	n := b.outages.Add(1)
	b.logf("connection lost (outage %d): %v", n, err)
}

// onMessage hands the message to its route on the UI goroutine.
func (b *Bridge) onMessage(_ mqtt.Client, msg mqtt.Message) {
	topic := msg.Topic()
	b.mu.Lock()
	h, ok := b.routes[topic]
	b.mu.Unlock()
	if !ok {
		return
	}
	payload := append([]byte(nil), msg.Payload()...)
	if !b.poster.Post(func() { h(topic, payload) }) {
		b.logf("dropped message on %s: loop stopped", topic)
	}
}

func (b *Bridge) logf(format string, args ...any) {
	if b.log == nil {
		return
	}
	_, _ = fmt.Fprintf(b.log, "[mqttbridge] "+format+"\n", args...)
}

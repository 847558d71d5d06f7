// Package telemetry wraps handler execution with structured log, event, and
// metric calls. Everything is logged locally; events are additionally
// forwarded to an MQTT sink when a broker was configured at startup. A
// missing or unreachable sink degrades to local-only logging — telemetry
// never fails a caller.
package telemetry

import (
	"context"
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	connectTimeout = 5 * time.Second
	publishTimeout = 2 * time.Second
)

// Publisher is the slice of the MQTT client the telemetry sink needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Client is the process-wide telemetry client. It is constructed once at
// startup and passed into handlers by reference; there is no module-level
// global.
type Client struct {
	log   *log.Logger
	sink  Publisher
	topic string
}

// NewClient builds a telemetry client. brokerURL may be empty, in which case
// events stay local. A broker that cannot be reached is logged and ignored.
func NewClient(logger *log.Logger, brokerURL, topic string) *Client {
	c := &Client{log: logger, topic: topic}
	if brokerURL == "" {
		logger.Info("telemetry sink not configured, logging locally only")
		return c
	}

	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID("skynav-api-" + uuid.NewString()[:8]).
		SetConnectTimeout(connectTimeout).
		SetAutoReconnect(true)
	sink := mqtt.NewClient(opts)
	token := sink.Connect()
	if !token.WaitTimeout(connectTimeout) || token.Error() != nil {
		logger.WithField("broker", brokerURL).WithError(token.Error()).
			Warn("telemetry sink unreachable, logging locally only")
		return c
	}
	c.sink = sink
	logger.WithField("broker", brokerURL).Info("telemetry sink connected")
	return c
}

// NewLocalClient builds a local-only client. Test helper.
func NewLocalClient(logger *log.Logger) *Client {
	return &Client{log: logger}
}

// SetSink replaces the sink publisher. Test helper.
func (c *Client) SetSink(p Publisher, topic string) {
	c.sink = p
	c.topic = topic
}

// Close disconnects the sink if one was connected.
func (c *Client) Close() {
	if sink, ok := c.sink.(mqtt.Client); ok {
		sink.Disconnect(250)
	}
}

// For returns an invocation-scoped logger for the named handler. Every call
// made through it carries the handler name and a fresh invocation id.
func (c *Client) For(handler string) *Logger {
	invocationID := uuid.NewString()
	return &Logger{
		client:       c,
		handler:      handler,
		invocationID: invocationID,
		entry: c.log.WithFields(log.Fields{
			"handler":       handler,
			"invocation_id": invocationID,
		}),
	}
}

// Logger is the invocation-scoped telemetry surface handed to handlers.
type Logger struct {
	client       *Client
	handler      string
	invocationID string
	entry        *log.Entry
}

// Info logs an informational message with optional extra fields.
func (l *Logger) Info(msg string, fields log.Fields) {
	l.entry.WithFields(fields).Info(msg)
}

// Warn logs a warning with optional extra fields.
func (l *Logger) Warn(msg string, fields log.Fields) {
	l.entry.WithFields(fields).Warn(msg)
}

// Error logs an error and forwards an error event to the sink.
func (l *Logger) Error(msg string, err error) {
	l.entry.WithError(err).Error(msg)
	l.forward("error", log.Fields{"message": msg, "error": errString(err)})
}

// Event logs a named event and forwards it to the sink.
func (l *Logger) Event(name string, props log.Fields) {
	l.entry.WithFields(props).WithField("event", name).Info("event")
	merged := log.Fields{"name": name}
	for k, v := range props {
		merged[k] = v
	}
	l.forward("event", merged)
}

// Metric logs a named measurement and forwards it to the sink.
func (l *Logger) Metric(name string, value float64) {
	l.entry.WithFields(log.Fields{"metric": name, "value": value}).Info("metric")
	l.forward("metric", log.Fields{"name": name, "value": value})
}

// TrackRequest records one handler invocation's outcome and duration.
// Handlers emit exactly one of these per invocation, success or failure.
func (l *Logger) TrackRequest(outcome string, status int, duration time.Duration) {
	l.entry.WithFields(log.Fields{
		"outcome":     outcome,
		"status":      status,
		"duration_ms": duration.Milliseconds(),
	}).Info("request tracked")
	l.forward("request", log.Fields{
		"outcome":     outcome,
		"status":      status,
		"duration_ms": duration.Milliseconds(),
	})
}

// forward publishes a telemetry envelope to the sink, if one is attached.
// Publish failures are logged and swallowed.
func (l *Logger) forward(kind string, props log.Fields) {
	if l.client.sink == nil {
		return
	}
	envelope := log.Fields{
		"kind":          kind,
		"handler":       l.handler,
		"invocation_id": l.invocationID,
		"timestamp":     time.Now().UTC().Format(time.RFC3339Nano),
	}
	for k, v := range props {
		envelope[k] = v
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		l.entry.WithError(err).Warn("failed to encode telemetry envelope")
		return
	}
	token := l.client.sink.Publish(l.client.topic, 0, false, payload)
	if token.WaitTimeout(publishTimeout) && token.Error() != nil {
		l.entry.WithError(token.Error()).Warn("failed to publish telemetry")
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

type loggerKey struct{}

// WithLogger attaches an invocation logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the invocation logger attached to the context, or a
// detached local-only logger so callers never need a nil check.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey{}).(*Logger); ok {
		return l
	}
	return NewLocalClient(log.StandardLogger()).For("unknown")
}

package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeToken satisfies mqtt.Token without a broker.
type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Error() error                   { return t.err }

func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// fakePublisher records published payloads.
type fakePublisher struct {
	topics   []string
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload.([]byte))
	return &fakeToken{err: p.err}
}

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestLocalClient_NeverPublishes(t *testing.T) {
	client := NewLocalClient(quietLogger())
	logger := client.For("trips.create")

	logger.Event("trip.created", log.Fields{"trip_id": "trip_x"})
	logger.Error("boom", errors.New("store down"))
	logger.TrackRequest("success", 201, 12*time.Millisecond)
	// No sink attached, nothing to assert beyond not panicking.
}

func TestEvent_ForwardsEnvelope(t *testing.T) {
	client := NewLocalClient(quietLogger())
	sink := &fakePublisher{}
	client.SetSink(sink, "skynav/telemetry")

	client.For("trips.create").Event("trip.created", log.Fields{"trip_id": "trip_x"})

	require.Len(t, sink.payloads, 1)
	assert.Equal(t, "skynav/telemetry", sink.topics[0])

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(sink.payloads[0], &envelope))
	assert.Equal(t, "event", envelope["kind"])
	assert.Equal(t, "trips.create", envelope["handler"])
	assert.Equal(t, "trip.created", envelope["name"])
	assert.Equal(t, "trip_x", envelope["trip_id"])
	assert.NotEmpty(t, envelope["invocation_id"])
	assert.NotEmpty(t, envelope["timestamp"])
}

func TestTrackRequest_ForwardsOutcome(t *testing.T) {
	client := NewLocalClient(quietLogger())
	sink := &fakePublisher{}
	client.SetSink(sink, "skynav/telemetry")

	client.For("trips.delete").TrackRequest("failure", 404, 3*time.Millisecond)

	require.Len(t, sink.payloads, 1)
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(sink.payloads[0], &envelope))
	assert.Equal(t, "request", envelope["kind"])
	assert.Equal(t, "failure", envelope["outcome"])
	assert.Equal(t, float64(404), envelope["status"])
}

func TestFor_FreshInvocationIDs(t *testing.T) {
	client := NewLocalClient(quietLogger())
	sink := &fakePublisher{}
	client.SetSink(sink, "skynav/telemetry")

	client.For("profile.get").Metric("profile.reads", 1)
	client.For("profile.get").Metric("profile.reads", 1)

	require.Len(t, sink.payloads, 2)
	var first, second map[string]interface{}
	require.NoError(t, json.Unmarshal(sink.payloads[0], &first))
	require.NoError(t, json.Unmarshal(sink.payloads[1], &second))
	assert.NotEqual(t, first["invocation_id"], second["invocation_id"])
}

func TestForward_PublishErrorSwallowed(t *testing.T) {
	client := NewLocalClient(quietLogger())
	sink := &fakePublisher{err: errors.New("broker gone")}
	client.SetSink(sink, "skynav/telemetry")

	// Must not panic or surface the error to the caller.
	client.For("trips.create").Event("trip.created", nil)
	assert.Len(t, sink.payloads, 1)
}

func TestFromContext_FallsBackWithoutLogger(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info("detached", nil)
}

func TestWithLogger_RoundTrip(t *testing.T) {
	client := NewLocalClient(quietLogger())
	attached := client.For("dropzones.list")

	ctx := WithLogger(context.Background(), attached)
	assert.Same(t, attached, FromContext(ctx))
}

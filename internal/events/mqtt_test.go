package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ldmoreira/fuellog/internal/models"
)

func TestTopicFor(t *testing.T) {
	assert.Equal(t, "fuellog/fillups/1715000000000", TopicFor("1715000000000"))
}

func TestNoopPublisher(t *testing.T) {
	var p Publisher = NoopPublisher{}
	// must not panic or block
	p.FillUpRecorded("1715000000000", models.FillUp{ID: "1"})
}

func TestNewMQTTPublisherUnreachableBroker(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping broker connection test in short mode")
	}
	_, err := NewMQTTPublisher("tcp://127.0.0.1:1", "fuellog-test")
	assert.Error(t, err)
}

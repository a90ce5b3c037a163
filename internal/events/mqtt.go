// Package events publishes fill-up events over MQTT for anything that
// wants to react to new records (dashboards, home automation). Publishing
// is best-effort: a broker outage never fails a save.
package events

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/ldmoreira/fuellog/internal/models"
)

// Publisher emits fill-up lifecycle events.
type Publisher interface {
	FillUpRecorded(vehicleID string, fillUp models.FillUp)
}

// TopicFor returns the MQTT topic for a vehicle's fill-up events.
func TopicFor(vehicleID string) string {
	return fmt.Sprintf("fuellog/fillups/%s", vehicleID)
}

// MQTTPublisher publishes events to an MQTT broker.
type MQTTPublisher struct {
	client mqtt.Client
}

// NewMQTTPublisher connects to the broker and returns a publisher.
func NewMQTTPublisher(broker, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt connect to %s: timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect to %s: %w", broker, err)
	}
	return &MQTTPublisher{client: client}, nil
}

// FillUpRecorded publishes the fill-up to the vehicle's topic.
func (p *MQTTPublisher) FillUpRecorded(vehicleID string, fillUp models.FillUp) {
	payload, err := json.Marshal(fillUp)
	if err != nil {
		log.WithError(err).Error("Failed to marshal fill-up event")
		return
	}
	topic := TopicFor(vehicleID)
	token := p.client.Publish(topic, 0, false, payload)
	if !token.WaitTimeout(5*time.Second) || token.Error() != nil {
		log.WithFields(log.Fields{"topic": topic}).WithError(token.Error()).Error("Failed to publish fill-up event")
		return
	}
	log.WithFields(log.Fields{"topic": topic, "fillup_id": fillUp.ID}).Debug("Published fill-up event")
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}

// NoopPublisher discards all events. Used when no broker is configured.
type NoopPublisher struct{}

// FillUpRecorded does nothing.
func (NoopPublisher) FillUpRecorded(string, models.FillUp) {}

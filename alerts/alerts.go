// Package alerts pushes low-stock notifications to an MQTT broker so
// downstream consumers (dashboards, restock tooling) learn immediately
// when a sale drops a product to or below its reorder level.
package alerts

import (
	"encoding/json"
	"fmt"
	"time"

	"inventory-backend/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/sirupsen/logrus"
)

const connectTimeout = 5 * time.Second

// Publisher publishes low-stock alerts. A nil *Publisher is valid and
// drops every alert, so callers need no guard when alerting is
// disabled.
type Publisher struct {
	client mqtt.Client
	topic  string
	log    *logrus.Logger
}

// Connect dials the broker and returns a ready Publisher.
func Connect(broker, topic string, log *logrus.Logger) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("inventory-backend").
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("mqtt connect to %s timed out", broker)
	}
	if err := token.Error(); err != nil {
		return nil, err
	}

	log.WithField("broker", broker).Info("connected to mqtt broker")
	return &Publisher{client: client, topic: topic, log: log}, nil
}

type lowStockAlert struct {
	ProductID    uint   `json:"productId"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorderLevel"`
}

// LowStock publishes an alert for the product. Best-effort: failures
// are logged and never propagate to the sale that triggered them.
func (p *Publisher) LowStock(product *models.Product) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(lowStockAlert{
		ProductID:    product.ID,
		Name:         product.Name,
		SKU:          product.SKU,
		Quantity:     product.Quantity,
		ReorderLevel: product.ReorderLevel,
	})
	if err != nil {
		p.log.WithError(err).Warn("low stock alert encode failed")
		return
	}

	token := p.client.Publish(p.topic, 0, false, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			p.log.WithError(err).Warn("low stock alert publish failed")
		}
	}()
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p != nil {
		p.client.Disconnect(250)
	}
}

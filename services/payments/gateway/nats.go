package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/swarajreddy10/bg-removal-server/internal/pkg/constants"
	"github.com/swarajreddy10/bg-removal-server/internal/pkg/models"
	natspkg "github.com/swarajreddy10/bg-removal-server/internal/pkg/nats"
)

// EventsGateway publishes payment events over NATS
type EventsGateway struct {
	client *natspkg.Client
}

// NewEventsGateway creates a new events gateway
func NewEventsGateway(client *natspkg.Client) *EventsGateway {
	return &EventsGateway{client: client}
}

// PublishCreditsReconciled publishes a credit event after a transaction
// has been settled
func (g *EventsGateway) PublishCreditsReconciled(event *models.CreditEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal credit event: %w", err)
	}

	if err := g.client.Publish(constants.SubjectCreditsReconciled, data); err != nil {
		return fmt.Errorf("failed to publish credit event: %w", err)
	}

	return nil
}

package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/hypernova-labs/invoice-actions/internal/config"
	"github.com/inngest/inngestgo"
	"github.com/sirupsen/logrus"
)

// EventViewRevalidated se emite cada vez que una vista cacheada queda obsoleta
const EventViewRevalidated = "invoices/view.revalidated"

// InngestClient publica eventos de la aplicación en Inngest
type InngestClient struct {
	client inngestgo.Client
	appID  string
	logger *logrus.Logger
}

// NewInngestClient crea una nueva instancia del cliente
func NewInngestClient(cfg *config.Config, logger *logrus.Logger) (*InngestClient, error) {
	if cfg.Inngest.EventKey == "" {
		return nil, fmt.Errorf("INNGEST_EVENT_KEY not configured")
	}

	client, err := inngestgo.NewClient(inngestgo.ClientOpts{
		EventKey:   &cfg.Inngest.EventKey,
		SigningKey: &cfg.Inngest.SigningKey,
		AppID:      cfg.Inngest.AppID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating Inngest client: %w", err)
	}

	return &InngestClient{
		client: client,
		appID:  cfg.Inngest.AppID,
		logger: logger,
	}, nil
}

// PublishRevalidation notifica que la vista en path debe recalcularse
func (c *InngestClient) PublishRevalidation(ctx context.Context, path string) error {
	id, err := c.client.Send(ctx, inngestgo.Event{
		Name: EventViewRevalidated,
		Data: map[string]any{
			"path":   path,
			"source": c.appID,
		},
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("error sending %s event: %w", EventViewRevalidated, err)
	}

	c.logger.WithFields(logrus.Fields{
		"event_id": id,
		"path":     path,
	}).Debug("Revalidation event sent")

	return nil
}

package workflows

import (
	"io"
	"testing"

	"github.com/hypernova-labs/invoice-actions/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInngestClient_RequiresEventKey(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client, err := NewInngestClient(&config.Config{Inngest: config.InngestConfig{AppID: "invoice-actions"}}, logger)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "INNGEST_EVENT_KEY")
}

package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCloudEvent_RoundTripsPayload(t *testing.T) {
	ce, err := NewCloudEvent("service-shelter-web", AdoptionCreated, AdoptionEvent{AdoptionID: 7, AnimalID: 3})
	require.NoError(t, err)
	assert.NotEmpty(t, ce.ID)
	assert.Equal(t, AdoptionCreated, ce.Type)

	var evt AdoptionEvent
	require.NoError(t, ce.ParseData(&evt))
	assert.Equal(t, 7, evt.AdoptionID)
	assert.Equal(t, 3, evt.AnimalID)
}

func TestParseCloudEvent_RejectsGarbage(t *testing.T) {
	_, err := ParseCloudEvent([]byte("{"))
	assert.Error(t, err)
}

func TestNewPublisher_WithoutBrokersIsNop(t *testing.T) {
	p := NewPublisher(nil, "", "service-shelter-web", zap.NewNop())
	_, ok := p.(NopPublisher)
	assert.True(t, ok)
	assert.NoError(t, p.Publish(context.Background(), AnimalCreated, EntityEvent{ID: 1}))
	assert.NoError(t, p.Close())
}

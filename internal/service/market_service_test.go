package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotServesStaticData(t *testing.T) {
	svc := NewMarketService()
	snap := svc.Snapshot()

	require.Contains(t, snap.Data, "cloudAI2024")
	cloud := snap.Data["cloudAI2024"]
	assert.Equal(t, 77.0, cloud.Value)
	assert.Equal(t, "billion USD", cloud.Unit)
	assert.Equal(t, 2024, cloud.Year)

	assert.Equal(t, len(snap.Data), snap.Count)
	assert.Equal(t, 6, snap.Count)
}

func TestSnapshotTimestampIsCurrent(t *testing.T) {
	before := time.Now().UTC()
	snap := NewMarketService().Snapshot()
	after := time.Now().UTC()

	assert.False(t, snap.GeneratedAt.Before(before))
	assert.False(t, snap.GeneratedAt.After(after))
}

func TestSnapshotIsStableAcrossCalls(t *testing.T) {
	svc := NewMarketService()
	first := svc.Snapshot()
	second := svc.Snapshot()

	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, first.Count, second.Count)
}

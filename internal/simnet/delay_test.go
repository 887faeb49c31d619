package simnet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitDisabled(t *testing.T) {
	d := Delay{Disabled: true}

	start := time.Now()
	err := d.Wait(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestWaitCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := Delay{}
	err := d.Wait(ctx, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitScaled(t *testing.T) {
	d := Delay{Scale: 0.01}

	start := time.Now()
	err := d.Wait(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWaitZeroBase(t *testing.T) {
	d := Delay{}
	require.NoError(t, d.Wait(context.Background(), 0))
}

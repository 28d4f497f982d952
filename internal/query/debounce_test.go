package query

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wait(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		require.FailNow(t, "debounced call never resolved")
		return false
	}
}

func TestDebouncerRunsOnlyLastCall(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var ran atomic.Int32
	var last atomic.Value

	first := d.Trigger(func() { ran.Add(1); last.Store("t") })
	second := d.Trigger(func() { ran.Add(1); last.Store("tu") })
	third := d.Trigger(func() { ran.Add(1); last.Store("tuna") })

	assert.False(t, wait(t, first))
	assert.False(t, wait(t, second))
	assert.True(t, wait(t, third))
	assert.Equal(t, int32(1), ran.Load())
	assert.Equal(t, "tuna", last.Load())
}

func TestDebouncerSeparatedCallsBothRun(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	var ran atomic.Int32
	assert.True(t, wait(t, d.Trigger(func() { ran.Add(1) })))
	assert.True(t, wait(t, d.Trigger(func() { ran.Add(1) })))
	assert.Equal(t, int32(2), ran.Load())
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var ran atomic.Int32
	ch := d.Trigger(func() { ran.Add(1) })
	d.Cancel()

	assert.False(t, wait(t, ch))
	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, ran.Load())

	// Cancel with nothing pending is a no-op.
	d.Cancel()
}

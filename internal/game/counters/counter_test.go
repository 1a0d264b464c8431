package counters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterAddRemove(t *testing.T) {
	c := NewCounter(Containment, 2)

	c.Add(1)
	assert.Equal(t, 3, c.Count)

	c.Remove(2)
	assert.Equal(t, 1, c.Count)

	// Removing past zero clamps.
	c.Remove(5)
	assert.Equal(t, 0, c.Count)
}

func TestCountersSetAndGet(t *testing.T) {
	cs := NewCounters()

	assert.False(t, cs.HasCounter(Containment))
	assert.Equal(t, 0, cs.GetCount(Containment))

	cs.Set(Containment, 2)
	assert.True(t, cs.HasCounter(Containment))
	assert.Equal(t, 2, cs.GetCount(Containment))

	// Setting to zero removes the entry.
	cs.Set(Containment, 0)
	assert.False(t, cs.HasCounter(Containment))
}

func TestCountersDecay(t *testing.T) {
	cs := NewCounters()
	cs.Set(Containment, 2)

	cs.Decay()
	require.True(t, cs.HasCounter(Containment))
	assert.Equal(t, 1, cs.GetCount(Containment))

	cs.Decay()
	assert.False(t, cs.HasCounter(Containment), "expired counters are dropped")

	// Decaying with nothing present is a no-op.
	cs.Decay()
	assert.False(t, cs.HasCounter(Containment))
}

func TestCountersClear(t *testing.T) {
	cs := NewCounters()
	cs.Set(Containment, 2)
	cs.Set("stun", 1)

	cs.Clear()
	assert.False(t, cs.HasCounter(Containment))
	assert.False(t, cs.HasCounter("stun"))
}

func TestCountersCopy(t *testing.T) {
	cs := NewCounters()
	cs.Set(Containment, 2)

	cp := cs.Copy()
	cp.Set(Containment, 5)

	assert.Equal(t, 2, cs.GetCount(Containment), "copies must not share state")
	assert.Equal(t, 5, cp.GetCount(Containment))
}

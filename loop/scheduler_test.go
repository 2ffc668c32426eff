package loop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStartStopIdempotent(t *testing.T) {
	s := NewScheduler()
	runs := 0
	task := s.Add("v1", func() { runs++ })
	require.NotNil(t, task)

	assert.False(t, task.Scheduled())
	assert.True(t, task.Start())
	assert.False(t, task.Start(), "second start is a no-op")

	s.Tick()
	s.Tick()
	assert.Equal(t, 2, runs)

	assert.True(t, task.Stop())
	assert.False(t, task.Stop(), "second stop is a no-op")
	s.Tick()
	assert.Equal(t, 2, runs)

	task.Start()
	s.Tick()
	assert.Equal(t, 3, runs, "a restarted task resumes")
}

func TestTickOrderAndStopDuringTick(t *testing.T) {
	s := NewScheduler()
	var order []string
	var second *Task
	first := s.Add("first", func() {
		order = append(order, "first")
		second.Stop()
	})
	second = s.Add("second", func() { order = append(order, "second") })
	third := s.Add("third", func() { order = append(order, "third") })

	first.Start()
	second.Start()
	third.Start()
	s.Tick()

	assert.Equal(t, []string{"first", "third"}, order)
	assert.Equal(t, []string{"first", "third"}, s.Scheduled())
}

func TestAddNilFunc(t *testing.T) {
	s := NewScheduler()
	assert.Nil(t, s.Add("nil", nil))
	assert.Empty(t, s.Tasks())
}

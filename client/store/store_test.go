package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type counterState struct {
	Count int
	Last  string
}

func counterReducer(state counterState, action Action) counterState {
	switch action.Type {
	case "INCREMENT":
		state.Count++
		state.Last = action.Type
	case "SET":
		state.Count = action.Payload.(int)
		state.Last = action.Type
	}
	return state
}

func TestDispatchFoldsActions(t *testing.T) {
	s := New(counterReducer, counterState{})

	s.Dispatch(Action{Type: "INCREMENT"})
	s.Dispatch(Action{Type: "INCREMENT"})
	s.Dispatch(Action{Type: "SET", Payload: 10})

	state := s.GetState()
	assert.Equal(t, 10, state.Count)
	assert.Equal(t, "SET", state.Last)
}

func TestUnknownActionLeavesStateUntouched(t *testing.T) {
	s := New(counterReducer, counterState{Count: 3})
	s.Dispatch(Action{Type: "NOPE"})
	assert.Equal(t, 3, s.GetState().Count)
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	s := New(counterReducer, counterState{})

	var seen []int
	unsubscribe := s.Subscribe(func(state counterState) {
		seen = append(seen, state.Count)
	})

	s.Dispatch(Action{Type: "INCREMENT"})
	s.Dispatch(Action{Type: "INCREMENT"})
	unsubscribe()
	s.Dispatch(Action{Type: "INCREMENT"})

	assert.Equal(t, []int{1, 2}, seen)
	assert.Equal(t, 3, s.GetState().Count)
}

func TestConcurrentDispatchesSerialize(t *testing.T) {
	s := New(counterReducer, counterState{})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(Action{Type: "INCREMENT"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, s.GetState().Count)
}

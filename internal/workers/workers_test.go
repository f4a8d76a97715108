// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, o.id)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	NewWorkers(w1, w2, w3).Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	assert.NotPanics(t, func() { NewWorkers().Run() })
}

func TestWorkers_Run_Nil(t *testing.T) {
	var chain *Workers

	assert.NotPanics(t, func() { chain.Run() })
	assert.Zero(t, chain.Len())
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	ws := NewWorkers(
		&orderWorker{id: 1, order: &order},
		&orderWorker{id: 2, order: &order},
		&orderWorker{id: 3, order: &order},
	)
	ws.Run()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_Run_MultipleRuns(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(w)

	ws.Run()
	ws.Run()
	ws.Run()

	assert.Equal(t, 3, w.runCount)
}

func TestWorkers_Add_KeepsRegistrationOrder(t *testing.T) {
	order := []int{}
	chain := NewWorkers(&orderWorker{id: 1, order: &order})

	got := chain.Add(&orderWorker{id: 2, order: &order}).Add(&orderWorker{id: 3, order: &order})
	got.Run()

	assert.Same(t, chain, got)
	assert.Equal(t, 3, chain.Len())
	assert.Equal(t, []int{1, 2, 3}, order)
}

// TestWorkers_Combine_EqualsSequentialInvocation verifies that invoking
// chain1.Combine(chain2) once is the same as invoking chain1 then chain2.
func TestWorkers_Combine_EqualsSequentialInvocation(t *testing.T) {
	newChains := func(order *[]int) (*Workers, *Workers) {
		first := NewWorkers(&orderWorker{id: 1, order: order}, &orderWorker{id: 2, order: order})
		second := NewWorkers(&orderWorker{id: 3, order: order})
		return first, second
	}

	var separate []int
	first, second := newChains(&separate)
	first.Run()
	second.Run()

	var combined []int
	first, second = newChains(&combined)
	first.Combine(second).Run()

	assert.Equal(t, separate, combined)
	assert.Equal(t, []int{1, 2, 3}, combined)
}

func TestWorkers_Combine_LeavesOperandsUntouched(t *testing.T) {
	first := NewWorkers(&mockWorker{}, &mockWorker{})
	second := NewWorkers(&mockWorker{})

	combined := first.Combine(second)

	assert.Equal(t, 3, combined.Len())
	assert.Equal(t, 2, first.Len())
	assert.Equal(t, 1, second.Len())
}

func TestWorkers_Combine_IsTransitive(t *testing.T) {
	order := []int{}
	a := NewWorkers(&orderWorker{id: 1, order: &order})
	b := NewWorkers(&orderWorker{id: 2, order: &order})
	c := NewWorkers(&orderWorker{id: 3, order: &order})

	a.Combine(b).Combine(c).Run()
	a.Combine(b.Combine(c)).Run()

	assert.Equal(t, []int{1, 2, 3, 1, 2, 3}, order)
}

func TestWorkers_Combine_Nested(t *testing.T) {
	order := []int{}
	inner := NewWorkers(&orderWorker{id: 2, order: &order}, &orderWorker{id: 3, order: &order})
	outer := NewWorkers(&orderWorker{id: 1, order: &order}, inner)

	outer.Run()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestFunc_Run(t *testing.T) {
	calls := 0
	var w Worker = Func(func() { calls++ })

	w.Run()
	w.Run()

	assert.Equal(t, 2, calls)
}

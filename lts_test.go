// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildSampleLTS() *LTS {
	l := NewLTS(3, 2)
	l.AddTransition(0, 0, 1)
	l.AddTransition(2, 0, 1)
	l.AddTransition(1, 1, 2)
	l.Finalize()
	return l
}

//********************************************************************************************

func TestLTSPreAndPost(t *testing.T) {
	l := buildSampleLTS()
	assert.Equal(t, []int{0, 2}, l.Pre(0, 1))
	assert.Equal(t, []int{1}, l.Post(0, 0))
	assert.True(t, l.HasPredecessor(0, 1))
	assert.False(t, l.HasPredecessor(0, 0))
	assert.True(t, l.HasSuccessor(1, 1))
	assert.False(t, l.HasSuccessor(1, 2))
}

//********************************************************************************************

func TestLTSInAndOutLabels(t *testing.T) {
	l := buildSampleLTS()
	assert.Equal(t, []int{0}, l.InLabels(1))
	assert.Equal(t, []int(nil), orEmpty(l.InLabels(0)))
	assert.Equal(t, []int{0}, l.OutLabels(0))
	assert.Equal(t, []int{1}, l.OutLabels(1))
}

func orEmpty(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	return xs
}

//********************************************************************************************

func TestLTSFinalizeBuildsPostPerLabel(t *testing.T) {
	l := buildSampleLTS()
	// Finalize must produce stable, sorted results regardless of insertion order.
	assert.Equal(t, []int{2}, l.Post(1, 1))
	assert.Equal(t, []int(nil), orEmpty(l.Post(1, 0)))
}

// Copyright (c) 2024 The vata authors
//
// MIT License

package vata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//********************************************************************************************

func TestBiggerTypeCacheInterns(t *testing.T) {
	c := NewBiggerTypeCache(8)
	a := c.Intern([]int{1, 2, 3})
	b := c.Intern([]int{1, 2, 3})
	assert.Same(t, a, b, "two Intern calls with the same sorted states return the same handle")

	d := c.Intern([]int{1, 2, 4})
	assert.NotSame(t, a, d)
	assert.NotEqual(t, a.ID(), d.ID())
}

//********************************************************************************************

func TestBiggerTypeCacheReleaseEvicts(t *testing.T) {
	c := NewBiggerTypeCache(8)
	var evicted *BiggerType
	c.OnEvict(func(b *BiggerType) { evicted = b })

	a := c.Intern([]int{5})
	c.Intern([]int{5}) // bump refcount to 2
	c.Release(a)
	assert.Nil(t, evicted, "still referenced once, must not evict")

	c.Release(a)
	require.NotNil(t, evicted, "refcount reached zero, eviction callback must fire")
	assert.Equal(t, []int{5}, evicted.States())
}

//********************************************************************************************

func TestBiggerTypeCacheReleaseNilIsNoop(t *testing.T) {
	c := NewBiggerTypeCache(8)
	c.Release(nil) // must not panic
}

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViews_LatestWins(t *testing.T) {
	v := NewViews()

	first := v.Begin("suppliers")
	second := v.Begin("suppliers")
	other := v.Begin("products")

	assert.False(t, v.IsLatest("suppliers", first))
	assert.True(t, v.IsLatest("suppliers", second))
	assert.True(t, v.IsLatest("products", other))
}

func TestViews_Observe(t *testing.T) {
	v := NewViews()

	assert.True(t, v.Observe("attributes/colors", 3))
	assert.False(t, v.Observe("attributes/colors", 2), "older request arriving late")
	assert.True(t, v.Observe("attributes/colors", 3))
	assert.True(t, v.IsLatest("attributes/colors", 3))

	assert.True(t, v.Observe("attributes/colors", 5))
	assert.False(t, v.IsLatest("attributes/colors", 3))
}

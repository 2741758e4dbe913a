package idgen

import (
	"testing"

	"github.com/sony/sonyflake"
	"github.com/stretchr/testify/assert"
)

func TestNextID(t *testing.T) {
	worker := sonyflake.NewSonyflake(sonyflake.Settings{})

	a := NextID(worker)
	b := NextID(worker)
	assert.True(t, a > 0)
	assert.True(t, b > a)
}

func TestNextIDWithoutWorker(t *testing.T) {
	assert.Panics(t, func() {
		NextID(nil)
	})
}

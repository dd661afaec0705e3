package systems

import (
	"testing"

	"github.com/automoto/eclipse-contract/components"
	"github.com/stretchr/testify/assert"
)

func TestUpdateCamera(t *testing.T) {
	t.Run("stays at the left edge near spawn", func(t *testing.T) {
		c := &components.CameraData{}
		UpdateCamera(c, newBody(100, 300, 40, 60), 1024)
		assert.Equal(t, 0.0, c.Position.X)
	})
	t.Run("eases toward a player past mid-screen", func(t *testing.T) {
		c := &components.CameraData{}
		b := newBody(1480, 300, 40, 60)
		UpdateCamera(c, b, 1024)
		assert.InDelta(t, 98.8, c.Position.X, 1e-9)
		for range 300 {
			UpdateCamera(c, b, 1024)
		}
		assert.Equal(t, 988.0, c.Position.X)
	})
}

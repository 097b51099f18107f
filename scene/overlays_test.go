package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/dotcross/config"
)

func TestDefaultOverlays(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	r := NewDefaultOverlays(cfg)

	assert.Len(t, r.All(), 6)
	assert.Equal(t, []string{"projection", "display"}, r.Categories())
	assert.Len(t, r.ByCategory("projection"), 2)

	desc, ok := r.Get(OverlayCrossProjection)
	require.True(t, ok)
	assert.Equal(t, "Y", desc.Key)

	assert.Equal(t, []OverlayID{OverlaySecondaryArrow, OverlayReadout, OverlayPrompts}, r.EnabledOverlays())
}

func TestOverlayToggle(t *testing.T) {
	r := NewOverlayRegistry()
	r.Register(OverlayDescriptor{ID: "a", Key: "A"}, false)

	assert.True(t, r.Toggle("a"))
	assert.True(t, r.IsEnabled("a"))
	assert.False(t, r.Toggle("a"))

	r.SetEnabled("a", true)
	assert.True(t, r.IsEnabled("a"))

	// Unknown IDs are ignored.
	assert.False(t, r.Toggle("missing"))
	r.SetEnabled("missing", true)
	assert.False(t, r.IsEnabled("missing"))
}

func TestOverlayHandleKeyPress(t *testing.T) {
	r := NewOverlayRegistry()
	r.Register(OverlayDescriptor{ID: "a", Key: "A"}, false)
	r.Register(OverlayDescriptor{ID: "b", Key: "B"}, true)
	r.Register(OverlayDescriptor{ID: "c"}, false)

	id, enabled, ok := r.HandleKeyPress("B")
	assert.True(t, ok)
	assert.Equal(t, OverlayID("b"), id)
	assert.False(t, enabled)
	assert.False(t, r.IsEnabled("b"))
	assert.False(t, r.IsEnabled("a"))

	_, _, ok = r.HandleKeyPress("Z")
	assert.False(t, ok)

	// Unbound overlays never match the empty key.
	_, _, ok = r.HandleKeyPress("")
	assert.False(t, ok)
	assert.False(t, r.IsEnabled("c"))
}

func TestOverlayReRegisterKeepsOrder(t *testing.T) {
	r := NewOverlayRegistry()
	r.Register(OverlayDescriptor{ID: "a", Name: "first"}, false)
	r.Register(OverlayDescriptor{ID: "b"}, false)
	r.Register(OverlayDescriptor{ID: "a", Name: "second"}, true)

	assert.Len(t, r.All(), 2)
	desc, _ := r.Get("a")
	assert.Equal(t, "second", desc.Name)
	assert.True(t, r.IsEnabled("a"))
}

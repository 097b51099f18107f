package scene

import "github.com/pthm-cable/dotcross/config"

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayDotProjection   OverlayID = "dot_projection"
	OverlayCrossProjection OverlayID = "cross_projection"
	OverlaySecondaryArrow  OverlayID = "secondary_arrow"
	OverlayAngleBetween    OverlayID = "angle_between"
	OverlayReadout         OverlayID = "readout"
	OverlayPrompts         OverlayID = "prompts"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID       OverlayID // Unique identifier
	Name     string    // Display name
	Key      string    // Toggle key letter ("" = no key)
	Category string    // Grouping for the controls panel
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates an empty registry.
func NewOverlayRegistry() *OverlayRegistry {
	return &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
}

// NewDefaultOverlays registers the standard overlays with keys and
// initial states taken from cfg.
func NewDefaultOverlays(cfg *config.Config) *OverlayRegistry {
	r := NewOverlayRegistry()
	keys := cfg.Keys
	on := cfg.Overlays

	r.Register(OverlayDescriptor{ID: OverlayDotProjection, Name: "Dot product projection", Key: keys.DotProjection, Category: "projection"}, on.DotProjection)
	r.Register(OverlayDescriptor{ID: OverlayCrossProjection, Name: "Cross product projection", Key: keys.CrossProjection, Category: "projection"}, on.CrossProjection)
	r.Register(OverlayDescriptor{ID: OverlaySecondaryArrow, Name: "Blue arrow", Key: keys.SecondaryArrow, Category: "display"}, on.SecondaryArrow)
	r.Register(OverlayDescriptor{ID: OverlayAngleBetween, Name: "Angle between", Key: keys.AngleBetween, Category: "display"}, on.AngleBetween)
	r.Register(OverlayDescriptor{ID: OverlayReadout, Name: "Dot/cross readout", Key: keys.Readout, Category: "display"}, on.Readout)
	r.Register(OverlayDescriptor{ID: OverlayPrompts, Name: "Key prompts", Key: keys.Prompts, Category: "display"}, on.Prompts)

	return r
}

// Register adds an overlay to the registry.
func (r *OverlayRegistry) Register(desc OverlayDescriptor, enabled bool) {
	if _, exists := r.byID[desc.ID]; exists {
		for i := range r.descriptors {
			if r.descriptors[i].ID == desc.ID {
				r.descriptors[i] = desc
			}
		}
	} else {
		r.descriptors = append(r.descriptors, desc)
	}
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = enabled
}

// Toggle switches an overlay on/off and returns the new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	r.enabled[id] = enabled
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// Get returns an overlay descriptor by ID.
func (r *OverlayRegistry) Get(id OverlayID) (OverlayDescriptor, bool) {
	desc, ok := r.byID[id]
	return desc, ok
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress toggles the overlay bound to key.
// Returns the overlay ID and new state if a toggle occurred.
func (r *OverlayRegistry) HandleKeyPress(key string) (OverlayID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key != "" && desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}

// EnabledOverlays returns the currently enabled overlay IDs in registration order.
func (r *OverlayRegistry) EnabledOverlays() []OverlayID {
	var result []OverlayID
	for _, desc := range r.descriptors {
		if r.enabled[desc.ID] {
			result = append(result, desc.ID)
		}
	}
	return result
}

// Package scene owns the per-run state of the visualizer: the two arrows,
// the overlay toggles and the key bindings that change them.
package scene

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/dotcross/components"
	"github.com/pthm-cable/dotcross/config"
	"github.com/pthm-cable/dotcross/geom"
)

// Arrow indices.
const (
	Primary   = 0
	Secondary = 1
)

// Input is sampled once per frame. Keys are single uppercase letters.
type Input interface {
	Cursor() r2.Vec
	IsKeyDown(key string) bool
	IsKeyPressed(key string) bool
}

// grab moves one endpoint of one arrow to the cursor while its key is held.
type grab struct {
	key   string
	arrow int
	end   bool
}

// ArrowView is a snapshot of one arrow's components.
type ArrowView struct {
	components.Arrow
	components.Segment
	components.Geometry
}

// State is the whole mutable state of a run. The caller owns it and
// passes it to the update and draw steps.
type State struct {
	Overlays *OverlayRegistry

	world       *ecs.World
	arrowMapper *ecs.Map3[components.Arrow, components.Segment, components.Geometry]
	arrowFilter *ecs.Filter3[components.Arrow, components.Segment, components.Geometry]
	arrowMap    *ecs.Map[components.Arrow]
	segMap      *ecs.Map[components.Segment]
	geoMap      *ecs.Map[components.Geometry]
	arrows      [2]ecs.Entity

	grabs []grab
	frame int
}

// New creates the arrows at their configured positions.
func New(cfg *config.Config) *State {
	world := ecs.NewWorld()

	s := &State{
		Overlays:    NewDefaultOverlays(cfg),
		world:       world,
		arrowMapper: ecs.NewMap3[components.Arrow, components.Segment, components.Geometry](world),
		arrowFilter: ecs.NewFilter3[components.Arrow, components.Segment, components.Geometry](world),
		arrowMap:    ecs.NewMap[components.Arrow](world),
		segMap:      ecs.NewMap[components.Segment](world),
		geoMap:      ecs.NewMap[components.Geometry](world),
		grabs: []grab{
			{key: cfg.Keys.RedStart, arrow: Primary},
			{key: cfg.Keys.RedEnd, arrow: Primary, end: true},
			{key: cfg.Keys.BlueStart, arrow: Secondary},
			{key: cfg.Keys.BlueEnd, arrow: Secondary, end: true},
		},
	}

	for i, ac := range cfg.Arrows[:2] {
		arrow := components.Arrow{Index: i, Name: ac.Name}
		seg := components.Segment{
			Start: r2.Vec{X: ac.Start.X, Y: ac.Start.Y},
			End:   r2.Vec{X: ac.End.X, Y: ac.End.Y},
		}
		geo := Derive(seg)
		s.arrows[i] = s.arrowMapper.NewEntity(&arrow, &seg, &geo)
	}

	return s
}

// Derive computes an arrow's geometry from its endpoints.
func Derive(seg components.Segment) components.Geometry {
	dir := r2.Sub(seg.End, seg.Start)
	normal := geom.Normalize(dir)
	return components.Geometry{
		Normal:  normal,
		Tangent: geom.ClockwiseTangent(normal),
		// Screen Y grows down; ScreenAngle flips it so angles turn counter-clockwise.
		Angle:  geom.ScreenAngle(dir),
		Length: r2.Norm(dir),
	}
}

// Update applies one frame of input and recomputes geometry.
func (s *State) Update(in Input) {
	cursor := in.Cursor()
	for _, g := range s.grabs {
		if !in.IsKeyDown(g.key) {
			continue
		}
		seg := s.segMap.Get(s.arrows[g.arrow])
		if g.end {
			seg.End = cursor
		} else {
			seg.Start = cursor
		}
	}

	for _, desc := range s.Overlays.All() {
		if desc.Key != "" && in.IsKeyPressed(desc.Key) {
			s.Overlays.HandleKeyPress(desc.Key)
		}
	}

	s.updateGeometry()
	s.frame++
}

// updateGeometry is the geometry system: Segment -> Geometry for every arrow.
func (s *State) updateGeometry() {
	query := s.arrowFilter.Query()
	for query.Next() {
		_, seg, geo := query.Get()
		*geo = Derive(*seg)
	}
}

// SetSegment places an arrow directly and refreshes its geometry.
func (s *State) SetSegment(index int, seg components.Segment) {
	e := s.arrows[index]
	*s.segMap.Get(e) = seg
	*s.geoMap.Get(e) = Derive(seg)
}

// Arrow returns a snapshot of arrow index (Primary or Secondary).
func (s *State) Arrow(index int) ArrowView {
	e := s.arrows[index]
	return ArrowView{
		Arrow:    *s.arrowMap.Get(e),
		Segment:  *s.segMap.Get(e),
		Geometry: *s.geoMap.Get(e),
	}
}

// SecondaryVisible reports whether the blue arrow and everything that
// depends on it is shown.
func (s *State) SecondaryVisible() bool {
	return s.Overlays.IsEnabled(OverlaySecondaryArrow)
}

// Frame returns the number of updates applied so far.
func (s *State) Frame() int {
	return s.frame
}

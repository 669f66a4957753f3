package wizard

import "github.com/myokyal/loopify/internal/catalog"

// MapRenderer is the side-effecting map collaborator. Init wires the
// renderer's own click/popup handling to the onSelect callback, which is
// the only path that mutates the selector. SetMarker creates the selection
// marker on first call and moves it on later calls.
type MapRenderer interface {
	Init(points []catalog.DropoffPoint, onSelect func(lat, lng float64, name string)) error
	SetView(lat, lng float64)
	SetMarker(lat, lng float64, name string)
	Remove()
}

// LocationSelector holds the fixed drop-off points and the user's current
// selection. The map renderer is initialized at most once per mount and
// torn down on unmount.
type LocationSelector struct {
	points   []catalog.DropoffPoint
	renderer MapRenderer
	selected *catalog.DropoffPoint
	mounted  bool
}

// NewLocationSelector creates a selector over the fixed drop-off points.
// renderer may be nil for deployments without a map.
func NewLocationSelector(renderer MapRenderer) *LocationSelector {
	return &LocationSelector{
		points:   catalog.DropoffPoints(),
		renderer: renderer,
	}
}

// Points returns the immutable drop-off point list.
func (s *LocationSelector) Points() []catalog.DropoffPoint {
	return s.points
}

// Mount initializes the map renderer. A second Mount while live is a
// no-op so the renderer is never re-initialized.
func (s *LocationSelector) Mount() error {
	if s.mounted || s.renderer == nil {
		return nil
	}
	if err := s.renderer.Init(s.points, s.OnLocationSelected); err != nil {
		return err
	}
	s.mounted = true
	return nil
}

// Unmount tears the renderer down so it does not leak. The selection
// survives unmounting.
func (s *LocationSelector) Unmount() {
	if !s.mounted {
		return
	}
	s.renderer.Remove()
	s.mounted = false
}

// Mounted reports whether the renderer is live.
func (s *LocationSelector) Mounted() bool {
	return s.mounted
}

// OnLocationSelected records the chosen point and re-centers the map.
// It is the callback handed to MapRenderer.Init and the sole mutation
// path into the selector. Selecting a point that is not in the fixed
// list is ignored. Selecting the same point twice is idempotent: the
// selection is unchanged and the marker is moved, never duplicated.
func (s *LocationSelector) OnLocationSelected(lat, lng float64, name string) {
	point, ok := catalog.FindDropoffPoint(name)
	if !ok || point.Lat != lat || point.Lng != lng {
		return
	}
	s.selected = &point
	if s.mounted {
		s.renderer.SetView(point.Lat, point.Lng)
		s.renderer.SetMarker(point.Lat, point.Lng, point.Name)
	}
}

// Selected returns the current selection, if any.
func (s *LocationSelector) Selected() (catalog.DropoffPoint, bool) {
	if s.selected == nil {
		return catalog.DropoffPoint{}, false
	}
	return *s.selected, true
}

// Clear drops the current selection.
func (s *LocationSelector) Clear() {
	s.selected = nil
}

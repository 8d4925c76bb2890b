package weekgrid

import (
	"reflect"
	"testing"
)

// recordingSurface remembers the last paint of every cell.
type recordingSurface struct {
	cells  map[Cell]bool
	paints int
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{cells: make(map[Cell]bool)}
}

func (s *recordingSurface) PaintCell(c Cell, toggled bool) {
	s.cells[c] = toggled
	s.paints++
}

// publishRecorder collects every published interval list.
type publishRecorder struct {
	lists [][]Interval
}

func (p *publishRecorder) publish(intervals []Interval) {
	p.lists = append(p.lists, intervals)
}

func (p *publishRecorder) last() []Interval {
	if len(p.lists) == 0 {
		return nil
	}
	return p.lists[len(p.lists)-1]
}

func newTestController() (*Controller, *recordingSurface, *publishRecorder) {
	surface := newRecordingSurface()
	rec := &publishRecorder{}
	c := NewController(Options{BlocksPerHour: 2}, surface, rec.publish)
	return c, surface, rec
}

func TestController_DragTogglesUniformly(t *testing.T) {
	c, surface, rec := newTestController()

	c.PointerDown(SourcePointer, Cell{Day: 1, HourPart: 4})
	if !c.Dragging() || !c.ToggleValue() {
		t.Fatalf("expected Dragging(true), got dragging=%v toggle=%v", c.Dragging(), c.ToggleValue())
	}
	for part := 5; part < 10; part++ {
		c.PointerEnter(SourcePointer, Cell{Day: 1, HourPart: part})
	}
	if len(rec.lists) != 0 {
		t.Fatalf("published %d times before release", len(rec.lists))
	}

	c.PointerUp(SourcePointer)

	if c.Dragging() {
		t.Error("still dragging after PointerUp")
	}
	if len(rec.lists) != 1 {
		t.Fatalf("published %d times, want 1", len(rec.lists))
	}
	start := Index(1, 4, 2) * 1800
	want := []Interval{{StartAtS: start, Duration: 6*1800 - 1}}
	if !reflect.DeepEqual(rec.last(), want) {
		t.Errorf("published %v, want %v", rec.last(), want)
	}
	if !reflect.DeepEqual(rec.last(), ExtractIntervals(c.Grid())) {
		t.Error("published list does not match the final grid")
	}
	for part := 4; part < 10; part++ {
		if !surface.cells[Cell{Day: 1, HourPart: part}] {
			t.Errorf("cell {1 %d} not painted on", part)
		}
	}
}

func TestController_DragErases(t *testing.T) {
	c, _, rec := newTestController()
	c.OnExternalIntervalsChanged([]Interval{{StartAtS: 0, Duration: 4*1800 - 1}})

	c.PointerDown(SourcePointer, Cell{Day: 0, HourPart: 1})
	if c.ToggleValue() {
		t.Fatal("pressing an on cell should start an erasing drag")
	}
	c.PointerEnter(SourcePointer, Cell{Day: 0, HourPart: 2})
	// Entering an off cell while erasing keeps it off.
	c.PointerEnter(SourcePointer, Cell{Day: 0, HourPart: 10})
	c.PointerUp(SourcePointer)

	want := []Interval{
		{StartAtS: 0, Duration: 1799},
		{StartAtS: 3 * 1800, Duration: 1799},
	}
	if !reflect.DeepEqual(rec.last(), want) {
		t.Errorf("published %v, want %v", rec.last(), want)
	}
}

func TestController_LastWriteWins(t *testing.T) {
	c, _, _ := newTestController()
	cell := Cell{Day: 2, HourPart: 3}

	c.PointerDown(SourcePointer, cell)
	c.PointerEnter(SourcePointer, Cell{Day: 2, HourPart: 4})
	c.PointerEnter(SourcePointer, cell)
	c.PointerUp(SourcePointer)

	if !c.Toggled(cell) || !c.Toggled(Cell{Day: 2, HourPart: 4}) {
		t.Error("cells entered during the drag should be on")
	}
}

func TestController_PointerUpWhileIdle(t *testing.T) {
	c, _, rec := newTestController()
	c.PointerUp(SourcePointer)
	if len(rec.lists) != 0 {
		t.Errorf("idle PointerUp published %d lists", len(rec.lists))
	}
}

func TestController_PointerEnterWhileIdle(t *testing.T) {
	c, surface, _ := newTestController()
	c.PointerEnter(SourcePointer, Cell{Day: 0, HourPart: 0})
	if c.Grid().Count() != 0 || surface.paints != 0 {
		t.Error("hover without a drag changed the grid")
	}
}

func TestController_ReleaseOffGridEndsDrag(t *testing.T) {
	c, _, rec := newTestController()
	c.PointerDown(SourcePointer, Cell{Day: 0, HourPart: 0})
	c.PointerEnter(SourcePointer, Cell{Day: 9, HourPart: 0})
	c.Handle(Event{Kind: PointerUp, Source: SourcePointer, Cell: Cell{Day: -1, HourPart: -1}})

	if c.Dragging() {
		t.Error("drag should end on release anywhere")
	}
	if len(rec.lists) != 1 || len(rec.last()) != 1 {
		t.Errorf("published %v, want one list with one interval", rec.lists)
	}
}

func TestController_TouchTogglesSingleCell(t *testing.T) {
	c, surface, rec := newTestController()
	cell := Cell{Day: 4, HourPart: 20}

	c.TouchEnd(SourceTouch, cell)

	if c.Grid().Count() != 1 || !c.Toggled(cell) {
		t.Fatalf("expected only %+v on:\n%s", cell, c.Grid())
	}
	if len(rec.lists) != 1 {
		t.Fatalf("published %d times, want 1", len(rec.lists))
	}
	want := []Interval{{StartAtS: Index(4, 20, 2) * 1800, Duration: 1799}}
	if !reflect.DeepEqual(rec.last(), want) {
		t.Errorf("published %v, want %v", rec.last(), want)
	}
	if surface.paints != 1 {
		t.Errorf("painted %d cells, want 1", surface.paints)
	}
}

func TestController_TouchTwiceRestores(t *testing.T) {
	c, _, rec := newTestController()
	c.OnExternalIntervalsChanged([]Interval{{StartAtS: 0, Duration: 3599}})
	before := c.Grid().String()
	cell := Cell{Day: 0, HourPart: 1}

	c.TouchEnd(SourceTouch, cell)
	c.TouchEnd(SourceTouch, cell)

	if c.Grid().String() != before {
		t.Errorf("grid changed after two taps:\n%s", c.Grid())
	}
	if len(rec.lists) != 2 {
		t.Fatalf("published %d times, want 2", len(rec.lists))
	}
	if !reflect.DeepEqual(rec.lists[0], []Interval{{StartAtS: 0, Duration: 1799}}) {
		t.Errorf("first publish = %v", rec.lists[0])
	}
	if !reflect.DeepEqual(rec.lists[1], []Interval{{StartAtS: 0, Duration: 3599}}) {
		t.Errorf("second publish = %v", rec.lists[1])
	}
}

func TestController_TouchIgnoresDragState(t *testing.T) {
	c, _, rec := newTestController()
	c.PointerDown(SourcePointer, Cell{Day: 0, HourPart: 0})
	c.TouchEnd(SourceTouch, Cell{Day: 3, HourPart: 3})

	if !c.Dragging() {
		t.Error("touch should not end the drag session")
	}
	if len(rec.lists) != 1 {
		t.Errorf("published %d times, want 1", len(rec.lists))
	}
}

func TestController_SourceFiltering(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
	}{
		{name: "touch pointer-down", ev: Event{Kind: PointerDown, Source: SourceTouch, Cell: Cell{0, 0}}},
		{name: "touch pointer-enter", ev: Event{Kind: PointerEnter, Source: SourceTouch, Cell: Cell{0, 1}}},
		{name: "pointer touch-end", ev: Event{Kind: TouchEnd, Source: SourcePointer, Cell: Cell{0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, surface, rec := newTestController()
			c.Handle(tt.ev)
			if c.Grid().Count() != 0 || c.Dragging() || surface.paints != 0 || len(rec.lists) != 0 {
				t.Errorf("event %v should have been ignored", tt.ev)
			}
		})
	}

	t.Run("touch pointer-up does not end a drag", func(t *testing.T) {
		c, _, rec := newTestController()
		c.PointerDown(SourcePointer, Cell{0, 0})
		c.PointerUp(SourceTouch)
		if !c.Dragging() || len(rec.lists) != 0 {
			t.Error("touch release ended a pointer drag")
		}
	})
}

func TestController_OffGridEventsIgnored(t *testing.T) {
	c, surface, rec := newTestController()
	c.PointerDown(SourcePointer, Cell{Day: 7, HourPart: 0})
	c.TouchEnd(SourceTouch, Cell{Day: 0, HourPart: 48})

	if c.Dragging() || c.Grid().Count() != 0 || surface.paints != 0 || len(rec.lists) != 0 {
		t.Error("off-grid events changed state")
	}
}

func TestController_ExternalChangeRepaintsStaleOnly(t *testing.T) {
	c, surface, rec := newTestController()
	c.TouchEnd(SourceTouch, Cell{Day: 0, HourPart: 0})
	surface.paints = 0

	// Block 0 is already on and painted; only blocks 1 and 2 are stale.
	c.OnExternalIntervalsChanged([]Interval{{StartAtS: 0, Duration: 3 * 1800}})

	if surface.paints != 2 {
		t.Errorf("repainted %d cells, want 2", surface.paints)
	}
	if len(rec.lists) != 1 {
		t.Errorf("external change published; got %d lists", len(rec.lists))
	}
	for part := 0; part < 3; part++ {
		if !surface.cells[Cell{Day: 0, HourPart: part}] {
			t.Errorf("cell {0 %d} not painted on", part)
		}
	}
}

func TestController_ExternalChangeDoesNotClear(t *testing.T) {
	c, _, _ := newTestController()
	c.OnExternalIntervalsChanged([]Interval{{StartAtS: 0, Duration: 1799}})
	c.OnExternalIntervalsChanged([]Interval{{StartAtS: 36000, Duration: 1799}})

	if got := len(c.Intervals()); got != 2 {
		t.Errorf("got %d intervals, want 2 (union of both updates)", got)
	}
}

func TestController_Replace(t *testing.T) {
	c, surface, rec := newTestController()
	c.OnExternalIntervalsChanged([]Interval{{StartAtS: 0, Duration: 7199}})
	c.PointerDown(SourcePointer, Cell{Day: 5, HourPart: 5})

	c.Replace(nil)

	if c.Dragging() {
		t.Error("Replace should drop the drag session")
	}
	if c.Grid().Count() != 0 {
		t.Errorf("grid not cleared:\n%s", c.Grid())
	}
	for cell, on := range surface.cells {
		if on {
			t.Errorf("cell %+v still painted on", cell)
		}
	}
	if len(rec.lists) != 1 || len(rec.last()) != 0 {
		t.Errorf("expected one empty publish, got %v", rec.lists)
	}
}

func TestController_ReconfigureReallocates(t *testing.T) {
	c, surface, _ := newTestController()
	c.TouchEnd(SourceTouch, Cell{Day: 1, HourPart: 1})
	c.PointerDown(SourcePointer, Cell{Day: 2, HourPart: 2})

	c.Reconfigure(Options{BlocksPerHour: 4})

	if c.Grid().Len() != 7*24*4 {
		t.Errorf("Len() = %d, want %d", c.Grid().Len(), 7*24*4)
	}
	if c.Grid().Count() != 0 || c.Dragging() {
		t.Error("reconfigure should discard toggles and the drag session")
	}
	if surface.cells[Cell{Day: 1, HourPart: 1}] {
		t.Error("previously toggled cell still painted on")
	}
	if c.Options().Width != DefaultWidth {
		t.Errorf("Width = %v, want default", c.Options().Width)
	}
}

func TestController_InstancesAreIndependent(t *testing.T) {
	a, _, recA := newTestController()
	b, _, recB := newTestController()

	a.PointerDown(SourcePointer, Cell{Day: 0, HourPart: 0})
	b.PointerUp(SourcePointer)
	b.PointerEnter(SourcePointer, Cell{Day: 0, HourPart: 1})

	if !a.Dragging() || b.Dragging() {
		t.Error("drag state leaked between instances")
	}
	if b.Grid().Count() != 0 || len(recB.lists) != 0 {
		t.Error("second instance changed")
	}
	a.PointerUp(SourcePointer)
	if len(recA.lists) != 1 {
		t.Errorf("first instance published %d times, want 1", len(recA.lists))
	}
}

func TestController_NilCollaborators(t *testing.T) {
	c := NewController(Options{}, nil, nil)
	c.SetLogger(nil)
	c.PointerDown(SourcePointer, Cell{0, 0})
	c.PointerUp(SourcePointer)
	c.TouchEnd(SourceTouch, Cell{0, 1})
	c.OnExternalIntervalsChanged([]Interval{{StartAtS: 7200, Duration: 1799}})
	c.Reconfigure(Options{BlocksPerHour: 1})

	if c.Grid().BlocksPerHour() != 1 {
		t.Errorf("BlocksPerHour() = %d, want 1", c.Grid().BlocksPerHour())
	}
}

func TestController_ResizeKeepsGrid(t *testing.T) {
	c, _, _ := newTestController()
	c.TouchEnd(SourceTouch, Cell{Day: 3, HourPart: 7})
	c.SetLayout(Layout{GridOffsetX: 6, GridOffsetY: 2})

	c.Resize(6+7*10, 2+7*24*2)

	if !c.Toggled(Cell{Day: 3, HourPart: 7}) {
		t.Error("resize cleared the grid")
	}
	g := c.Geometry()
	if g.BlockWidth != 10 || g.BlockHeight != 7 {
		t.Errorf("block size = %vx%v, want 10x7", g.BlockWidth, g.BlockHeight)
	}
	cell, ok := g.CellAt(6+10*3+1, 2+7*7+1)
	if !ok || cell != (Cell{Day: 3, HourPart: 7}) {
		t.Errorf("CellAt = %v, %v", cell, ok)
	}
}

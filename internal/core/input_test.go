package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionUp)
	if !f.Has(ActionFire) || !f.Has(ActionUp) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should remove actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameClicks(t *testing.T) {
	f := NewInputFrame()
	f.Click(3, 4)
	f.Click(5, 6)

	if len(f.Clicks) != 2 || f.Clicks[0] != (Point{3, 4}) || f.Clicks[1] != (Point{5, 6}) {
		t.Fatalf("Clicks = %v, expected [(3,4) (5,6)]", f.Clicks)
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Clicks) != 0 {
		t.Error("Clear should drop clicks")
	}
	if len(clone.Clicks) != 2 {
		t.Error("Clone should not share clicks with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionFire.String() != "Fire" {
		t.Errorf("ActionFire.String() = %q", ActionFire.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}

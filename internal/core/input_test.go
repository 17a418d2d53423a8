package core

import "testing"

func TestInputFramePressHolds(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionShoot)

	if !f.JustPressed(ActionShoot) {
		t.Error("Press should set JustPressed")
	}
	if !f.Held(ActionShoot) {
		t.Error("Press should also set Held")
	}

	f.EndFrame()
	if f.JustPressed(ActionShoot) {
		t.Error("EndFrame should clear JustPressed")
	}
	if !f.Held(ActionShoot) {
		t.Error("EndFrame should keep Held")
	}
}

func TestInputFrameReset(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionPause)
	f.Hold(ActionMoveLeft)

	f.Reset()

	if f.Held(ActionMoveLeft) || f.Held(ActionPause) || f.JustPressed(ActionPause) {
		t.Error("Reset should forget every fact")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Held(ActionShoot) || f.JustPressed(ActionShoot) {
		t.Error("zero frame should report nothing")
	}
	f.Hold(ActionMoveRight)
	if !f.Held(ActionMoveRight) {
		t.Error("Hold on zero frame should allocate")
	}
	f.Reset()
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionConfirm)
	c := f.Clone()
	f.Reset()

	if !c.JustPressed(ActionConfirm) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionMoveLeft.String() != "MoveLeft" {
		t.Errorf("ActionMoveLeft.String() = %q", ActionMoveLeft.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

package config

import (
	"testing"
	"time"

	"github.com/san-kum/rain/internal/palette"
	"github.com/san-kum/rain/internal/rain"
)

func TestSpeedInterval(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 120 * time.Millisecond},
		{4, 60 * time.Millisecond},
		{5, 50 * time.Millisecond},
		{10, 5 * time.Millisecond},
		{0, DefaultInterval},
		{11, DefaultInterval},
		{-3, DefaultInterval},
	}

	for _, tt := range tests {
		if got := SpeedInterval(tt.level); got != tt.want {
			t.Errorf("SpeedInterval(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSetSpeedKey(t *testing.T) {
	anim := DefaultConfig().Animation()

	anim.Interval = 120 * time.Millisecond
	if !anim.SetSpeedKey('5') || anim.Interval != 50*time.Millisecond {
		t.Errorf("key 5: got %v", anim.Interval)
	}

	if !anim.SetSpeedKey('0') || anim.Interval != 5*time.Millisecond {
		t.Errorf("key 0: got %v", anim.Interval)
	}

	if !anim.SetSpeedKey('9') || anim.Interval != 10*time.Millisecond {
		t.Errorf("key 9: got %v", anim.Interval)
	}

	if anim.SetSpeedKey('x') {
		t.Error("non-digit key should not change speed")
	}
	if anim.Interval != 10*time.Millisecond {
		t.Errorf("interval changed by non-digit: %v", anim.Interval)
	}
}

func TestCycleColor(t *testing.T) {
	src := rain.NewRandomSource(4, rain.CharsetASCII)
	anim := &Animation{Color: palette.Green}
	for i := 0; i < 500; i++ {
		anim.Color = palette.Green
		if got := anim.CycleColor(src); got == palette.Green {
			t.Fatal("cycling from green reselected green")
		}
	}
}

func TestSetDirection(t *testing.T) {
	anim := &Animation{Direction: Up}
	if anim.SetDirection(Up) {
		t.Error("setting the current direction should be a no-op")
	}
	if !anim.SetDirection(Left) {
		t.Error("changing direction should report true")
	}
	if anim.Direction != Left {
		t.Errorf("expected left, got %v", anim.Direction)
	}
}

func TestToggleBold(t *testing.T) {
	anim := &Animation{}
	if !anim.ToggleBold() || !anim.Bold {
		t.Error("first toggle should enable bold")
	}
	if anim.ToggleBold() || anim.Bold {
		t.Error("second toggle should disable bold")
	}
}

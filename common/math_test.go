package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCoordinateRoundTrip(t *testing.T) {
	sizes := [][2]float64{{800, 600}, {1280, 720}, {1, 1}, {333, 777}}
	points := []cp.Vector{{}, {X: 100, Y: -50}, {X: -640.5, Y: 360.25}, {X: 1e6, Y: -1e6}}
	for _, s := range sizes {
		for _, p := range points {
			got := ScreenToWorld(s[0], s[1], WorldToScreen(s[0], s[1], p))
			if got != p {
				t.Fatalf("round trip %v in %vx%v gave %v", p, s[0], s[1], got)
			}
		}
	}
}

func TestScreenToWorld(t *testing.T) {
	cases := []struct {
		name string
		in   cp.Vector
		want cp.Vector
	}{
		{"centre", cp.Vector{X: 400, Y: 300}, cp.Vector{}},
		{"right_of_centre", cp.Vector{X: 500, Y: 300}, cp.Vector{X: 100, Y: 0}},
		{"bottom_left", cp.Vector{}, cp.Vector{X: -400, Y: -300}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ScreenToWorld(800, 600, c.in); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestToDrawPosition(t *testing.T) {
	x, y := ToDrawPosition(800, 600, cp.Vector{X: 100, Y: 50})
	if x != 500 || y != 250 {
		t.Fatalf("expected (500,250), got (%v,%v)", x, y)
	}
}

func TestAimAngles(t *testing.T) {
	cases := []struct {
		name      string
		from      cp.Vector
		target    cp.Vector
		wantWorld float64
	}{
		{"right", cp.Vector{}, cp.Vector{X: 1}, 0},
		{"up", cp.Vector{}, cp.Vector{Y: 1}, math.Pi / 2},
		{"left", cp.Vector{X: 5, Y: 5}, cp.Vector{X: 1, Y: 5}, math.Pi},
		{"down_left", cp.Vector{}, cp.Vector{X: -3, Y: -3}, -3 * math.Pi / 4},
		{"coincident", cp.Vector{X: 7, Y: 7}, cp.Vector{X: 7, Y: 7}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := LookAtWorld(c.from, c.target); math.Abs(got-c.wantWorld) > 1e-12 {
				t.Fatalf("LookAtWorld: expected %v, got %v", c.wantWorld, got)
			}
			got := LookAt(c.from, c.target)
			if math.IsNaN(got) {
				t.Fatalf("LookAt returned NaN")
			}
			if want := c.wantWorld - math.Pi/2; math.Abs(got-want) > 1e-12 {
				t.Fatalf("LookAt: expected %v, got %v", want, got)
			}
		})
	}
}

func TestAimScenario(t *testing.T) {
	// 800x600 window, player at world origin, pointer at screen (500,300).
	pointer := cp.Vector{X: 500, Y: 300}
	world := ScreenToWorld(800, 600, pointer)
	if world != (cp.Vector{X: 100, Y: 0}) {
		t.Fatalf("expected world pointer (100,0), got %v", world)
	}
	if got := AimAngle(WorldToScreen(800, 600, cp.Vector{}), pointer); got != 0 {
		t.Fatalf("expected aim along +x, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   cp.Vector
		want cp.Vector
	}{
		{"zero", cp.Vector{}, cp.Vector{}},
		{"axis", cp.Vector{X: 0, Y: -4}, cp.Vector{X: 0, Y: -1}},
		{"diagonal", cp.Vector{X: 3, Y: 4}, cp.Vector{X: 0.6, Y: 0.8}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Normalize(c.in)
			if math.Abs(got.X-c.want.X) > 1e-12 || math.Abs(got.Y-c.want.Y) > 1e-12 {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestDirectionFromKeys(t *testing.T) {
	cases := []struct {
		name                  string
		up, down, left, right bool
		wantLen               float64
	}{
		{"none", false, false, false, false, 0},
		{"up_down", true, true, false, false, 0},
		{"left_right", false, false, true, true, 0},
		{"all", true, true, true, true, 0},
		{"up", true, false, false, false, 1},
		{"up_right", true, false, false, true, 1},
		{"down_left", false, true, true, false, 1},
		{"three_keys", true, true, false, true, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DirectionFromKeys(c.up, c.down, c.left, c.right).Length()
			if math.Abs(got-c.wantLen) > 1e-12 {
				t.Fatalf("expected length %v, got %v", c.wantLen, got)
			}
		})
	}
}

package system

import (
	"testing"

	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"github.com/milk9111/astroblasto/input"
)

func TestFPSMeter(t *testing.T) {
	cases := []struct {
		name    string
		window  int
		samples []float64
		want    float64
	}{
		{"empty", 4, nil, 0},
		{"steady_60", 4, []float64{1.0 / 60, 1.0 / 60, 1.0 / 60}, 60},
		{"mixed", 4, []float64{0.01, 0.03}, 50},
		{"window_drops_old_samples", 2, []float64{1, 1, 0.1, 0.1}, 10},
		{"ignores_non_positive", 4, []float64{0, -1, 0.5}, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewFPSMeter(c.window)
			for _, s := range c.samples {
				m.Add(s)
			}
			if got := m.Average(); !approxTol(got, c.want, 1e-6) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func approxTol(a, b, tol float64) bool {
	d := a - b
	return d < tol && d > -tol
}

func TestFormatters(t *testing.T) {
	cases := []struct {
		got  string
		want string
	}{
		{FormatFPS(0), "FPS: 0.00"},
		{FormatFPS(59.996), "FPS: 60.00"},
		{FormatFPS(144.123), "FPS: 144.12"},
		{FormatShots(0), "Shots: 0"},
		{FormatShots(12), "Shots: 12"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("expected %q, got %q", c.want, c.got)
		}
	}
}

func TestHUDSystemWritesText(t *testing.T) {
	w := ecs.NewWorld()
	add := func(kind component.HUDKind) ecs.Entity {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.HUDTextComponent.Kind(), &component.HUDText{Kind: kind}); err != nil {
			t.Fatal(err)
		}
		if err := ecs.Add(w, e, component.TextComponent.Kind(), &component.Text{}); err != nil {
			t.Fatal(err)
		}
		return e
	}
	fps := add(component.HUDKindFPS)
	shots := add(component.HUDKindShots)

	hud := NewHUDSystem()
	f := newFrame(0.02, input.Snapshot{})
	f.Shots = 7
	hud.Update(w, f)

	if txt, _ := ecs.Get(w, fps, component.TextComponent.Kind()); txt.Value != "FPS: 50.00" {
		t.Fatalf("unexpected fps text %q", txt.Value)
	}
	if txt, _ := ecs.Get(w, shots, component.TextComponent.Kind()); txt.Value != "Shots: 7" {
		t.Fatalf("unexpected shots text %q", txt.Value)
	}
}

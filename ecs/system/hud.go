package system

import (
	"fmt"

	"github.com/milk9111/astroblasto/common"
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/ecs/component"
	"github.com/milk9111/astroblasto/frame"
)

// FPSMeter averages the frame rate over the most recent frame deltas.
type FPSMeter struct {
	samples []float64
	next    int
	full    bool
}

func NewFPSMeter(window int) *FPSMeter {
	if window <= 0 {
		window = common.FPSWindow
	}
	return &FPSMeter{samples: make([]float64, window)}
}

// Add records one frame delta in seconds. Non-positive deltas are ignored.
func (m *FPSMeter) Add(dt float64) {
	if dt <= 0 {
		return
	}
	m.samples[m.next] = dt
	m.next++
	if m.next == len(m.samples) {
		m.next = 0
		m.full = true
	}
}

// Average returns frames per second over the window, or 0 with no samples.
func (m *FPSMeter) Average() float64 {
	n := m.next
	if m.full {
		n = len(m.samples)
	}
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, dt := range m.samples[:n] {
		sum += dt
	}
	return float64(n) / sum
}

func FormatFPS(fps float64) string {
	return fmt.Sprintf("FPS: %.2f", fps)
}

func FormatShots(shots int) string {
	return fmt.Sprintf("Shots: %d", shots)
}

// HUDSystem rewrites HUD text entities from the frame context.
type HUDSystem struct {
	meter *FPSMeter
}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{meter: NewFPSMeter(common.FPSWindow)}
}

func (s *HUDSystem) Update(w *ecs.World, f *frame.Context) {
	if w == nil || f == nil {
		return
	}

	s.meter.Add(f.Dt)
	fps := s.meter.Average()

	ecs.ForEach2(w, component.HUDTextComponent.Kind(), component.TextComponent.Kind(), func(_ ecs.Entity, h *component.HUDText, t *component.Text) {
		switch h.Kind {
		case component.HUDKindFPS:
			t.Value = FormatFPS(fps)
		case component.HUDKindShots:
			t.Value = FormatShots(f.Shots)
		}
	})
}

package ecs

import "github.com/milk9111/astroblasto/frame"

// Scheduler runs systems in registration order, once per tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, f *frame.Context) {
	if s == nil || w == nil || f == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w, f)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

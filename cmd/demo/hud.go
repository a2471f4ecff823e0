package main

import (
	"fmt"
	"strings"
)

// StatsOverlay collects per-second frame statistics for the window title.
type StatsOverlay struct {
	frames  int
	elapsed float64
	fps     int
	lines   []string
}

// Tick counts a frame and reports whether a full second has passed.
func (o *StatsOverlay) Tick(delta float64) bool {
	o.frames++
	o.elapsed += delta
	if o.elapsed < 1 {
		return false
	}
	o.fps = o.frames
	o.frames = 0
	o.elapsed = 0
	return true
}

func (o *StatsOverlay) FPS() int {
	return o.fps
}

func (o *StatsOverlay) AddLine(format string, args ...interface{}) {
	o.lines = append(o.lines, fmt.Sprintf(format, args...))
}

func (o *StatsOverlay) Clear() {
	o.lines = o.lines[:0]
}

// Text joins the collected lines with " | ".
func (o *StatsOverlay) Text() string {
	return strings.Join(o.lines, " | ")
}

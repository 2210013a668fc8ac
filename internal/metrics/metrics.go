// Package metrics records per-frame timings during free-run playback and
// reports summary statistics when the session ends.
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
)

// Recorder accumulates one evolve-duration and one render-duration
// sample per playback frame, plus total playback wall-clock time. A
// disabled recorder stores nothing, so long unthrottled sessions cannot
// grow memory without bound.
type Recorder struct {
	enabled   bool
	evolve    []time.Duration
	render    []time.Duration
	frames    int
	playback  time.Duration
	playStart time.Time
	playing   bool
}

func New(enabled bool) *Recorder {
	return &Recorder{enabled: enabled}
}

func (r *Recorder) Enabled() bool { return r != nil && r.enabled }

// RecordFrame adds one frame's evolve and render durations.
func (r *Recorder) RecordFrame(evolve, render time.Duration) {
	if !r.Enabled() {
		return
	}
	r.evolve = append(r.evolve, evolve)
	r.render = append(r.render, render)
	r.frames++
}

// StartPlayback marks the beginning of a free-run stretch.
func (r *Recorder) StartPlayback() {
	if !r.Enabled() || r.playing {
		return
	}
	r.playing = true
	r.playStart = time.Now()
}

// StopPlayback accumulates the wall-clock time since StartPlayback.
func (r *Recorder) StopPlayback() {
	if !r.Enabled() || !r.playing {
		return
	}
	r.playing = false
	r.playback += time.Since(r.playStart)
}

func (r *Recorder) Frames() int {
	if r == nil {
		return 0
	}
	return r.frames
}

func (r *Recorder) MedianEvolve() time.Duration {
	if r == nil {
		return 0
	}
	return median(r.evolve)
}

func (r *Recorder) MedianRender() time.Duration {
	if r == nil {
		return 0
	}
	return median(r.render)
}

// AverageFPS is the sustained frame rate across every playback stretch
// of the run, zero before any playback has happened.
func (r *Recorder) AverageFPS() float64 {
	if r == nil {
		return 0
	}
	total := r.playback
	if r.playing {
		total += time.Since(r.playStart)
	}
	if total <= 0 {
		return 0
	}
	return float64(r.frames) / total.Seconds()
}

func median(samples []time.Duration) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	s := make([]time.Duration, len(samples))
	copy(s, samples)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	mid := len(s) / 2
	if len(s)%2 == 0 {
		return (s[mid-1] + s[mid]) / 2
	}
	return s[mid]
}

// Summary formats the end-of-run report printed to stdout.
func (r *Recorder) Summary() string {
	if r == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "playback frames: %d\n", r.frames)
	fmt.Fprintf(&b, "median evolve:   %.3fms\n", millis(r.MedianEvolve()))
	fmt.Fprintf(&b, "median render:   %.3fms\n", millis(r.MedianRender()))
	fmt.Fprintf(&b, "sustained fps:   %.1f\n", r.AverageFPS())

	if len(r.evolve) > 1 {
		data := make([]float64, len(r.evolve))
		for i, d := range r.evolve {
			data[i] = millis(d)
		}
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("evolve ms per frame"),
		))
		b.WriteString("\n")
	}
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

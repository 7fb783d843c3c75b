// Package input maps polled keyboard state onto viewport motion.
//
// The windowing backend is sampled once per frame into a KeyState. Mapper
// turns that sample plus the frame's elapsed time into a new
// viewport.State. Continuous actions (pan, zoom, iteration depth) are
// integrated over time so motion is independent of frame rate:
//
//	center += turbo * direction * pan * dt / zoom
//	zoom    = max(0.2, zoom * 2^(turbo * direction * zoomRate * dt))
//	iter    = clamp(iter + turbo * iterRate * dt * direction, 0, 1000)
//
// One-shot actions are derived from key transitions with a Latch, since a
// polled key reports "held" on every frame it is down.
package input

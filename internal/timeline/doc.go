// Package timeline turns a flat issue collection into a render-ready Gantt
// model: the visible date window, epic groups with their children, the
// ordered row list under the caller's expand/collapse state, per-row pixel
// geometry, completion fractions, the day-cell header and the today marker.
//
// Every function here is a pure transform. Nothing blocks, nothing performs
// I/O, and caller-owned state (issues, ExpandState) is never mutated.
package timeline

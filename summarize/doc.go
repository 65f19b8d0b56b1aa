// Package summarize builds a single abstract from an ordered list of chunks.
//
// A single chunk is summarized with one "stuff" call. Several chunks go
// through a map step, where every chunk is summarized independently and
// concurrently on an ants worker pool, followed by one reduce call that
// synthesizes the per-chunk summaries in document order.
//
// Map calls share no mutable state: each writes only its own slot of the
// result slice, and the reduce step starts only after the join has seen every
// map call finish.
package summarize

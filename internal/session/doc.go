// Package session implements the ring-escape simulation core.
//
// A Session owns all mutable simulation state (ball pose, ring
// collection, restitution, rotation direction, particle set) and is
// driven by an external scheduler calling [Session.Advance] once per
// display frame:
//
//	sess := session.New(opts, rand.New(rand.NewSource(opts.Seed)))
//	snap := sess.Advance(1.0 / 60)
//
// Each call runs a fixed number of substeps. A substep integrates
// gravity into velocity and velocity into position, rotates the rings,
// and resolves radial crossings against every alive ring: a crossing
// inside the gap window kills the ring, emits a particle burst, applies
// the escape penalty, and reverses the global rotation direction; a
// crossing outside it reflects the ball off the arc and re-projects the
// position exactly onto the ring surface. After the substeps a speed
// governor damps and clamps the velocity, the lifecycle state machine
// runs, and particles advance once.
//
// # Lifecycle
//
// Running → Complete when every ring is dead and the run lasted at
// least the minimum acceptable duration. Runs that finish too fast, or
// that exceed the hard duration limit, are silently reinitialized and
// keep running. [Session.Reset] forces reinitialization from any phase.
//
// # Concurrency
//
// A Session is exclusively owned by the calling control flow; no method
// blocks and nothing here is safe for concurrent use.
package session

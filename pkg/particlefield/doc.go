// Package particlefield implements the decorative particle field rendered
// behind the site's pages: slowly falling, gently swaying particles that are
// pushed away by the pointer.
//
// A Simulator owns the particle set, the simulation clock, the pointer state
// and the pause state machine. It is attached to a host.Host with Mount and
// released with Unmount; everything in between happens inside host callbacks
// (frame callbacks, event listeners and debounce timers), which the host runs
// one at a time.
//
// Per frame the simulator:
//  1. clamps the elapsed time to the configured maximum step (32ms) and
//     advances simulated time in units of one 60Hz frame;
//  2. moves every particle by its velocity plus a sinusoidal sway;
//  3. pushes particles inside the interaction radius away from the pointer;
//  4. wraps particles that left the surface by more than the wrap margin;
//  5. clears the surface and paints every particle.
//
// Scrolling at the top of the page, or pulling down with a touch while at the
// top, pauses the field until the input has been quiet for a while. Every
// pause, resume, resize and return from the background resets the frame
// timestamp so the next active frame takes a zero-length step.
package particlefield

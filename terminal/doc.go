// Package terminal provides the screen the render loop paints into.
//
// A Terminal is a thin layer over tcell: Init enters raw mode and the alternate
// screen, Flush copies a row-major Cell buffer onto the screen, Fini restores the
// terminal exactly once no matter how many times it is called. Simulation wraps
// tcell's simulation screen for tests.
//
// Service owns the input side: a single goroutine blocked in PollEvent forwards
// raw tcell events on a channel until Stop finalizes the terminal.
package terminal

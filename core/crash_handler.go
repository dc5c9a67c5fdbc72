// Package core holds goroutine plumbing shared by the render loop and the document.
package core

import (
	"fmt"
	"runtime/debug"
)

// CrashError reports a panic recovered at a goroutine root
type CrashError struct {
	Value any
	Stack []byte
}

// Error implements error
func (e *CrashError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes a panicked error value
func (e *CrashError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recover converts a recovered value into a CrashError, nil when r is nil
func Recover(r any) *CrashError {
	if r == nil {
		return nil
	}
	return &CrashError{Value: r, Stack: debug.Stack()}
}

// Go runs fn in a new goroutine with panic recovery
// done is always called exactly once after fn returns or panics, with the crash if any
// Use this instead of the 'go' keyword so a crash still restores the terminal
func Go(fn func(), done func(crash *CrashError)) {
	go func() {
		var crash *CrashError
		defer func() {
			if done != nil {
				done(crash)
			}
		}()
		defer func() {
			crash = Recover(recover())
		}()
		fn()
	}()
}

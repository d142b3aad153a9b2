package main

import (
	"io"
	"os"
	"time"
)

// Environment is what a command may touch outside its arguments.
// Tests swap in buffers and a fixed clock.
type Environment struct {
	Now    func() time.Time // build timestamp source for [UPDATE]
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv wires the process streams and the wall clock.
func DefaultEnv() *Environment {
	return &Environment{Now: time.Now, Stdout: os.Stdout, Stderr: os.Stderr}
}

// clock returns Now, or time.Now when it is unset.
func (e *Environment) clock() func() time.Time {
	if e.Now == nil {
		return time.Now
	}
	return e.Now
}

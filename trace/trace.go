// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package trace times function calls and writes the elapsed time to an hclog.Logger.
// It is disabled by default, in which case Enter and Exit return immediately.
package trace

import (
	"runtime"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
)

var (
	mu      sync.Mutex
	enabled bool
	sink    = Sink{}
	tag     = "trace"
	timers  = make(map[string]*Timer)
)

// Sink writes timer output to Logger at Level.
// A Sink without a Logger discards everything.
type Sink struct {
	Logger hclog.Logger
	// Level defaults to Info.
	Level hclog.Level
}

func (s Sink) write(msg string, args ...interface{}) {
	if s.Logger == nil {
		return
	}
	level := s.Level
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	s.Logger.Log(level, msg, args...)
}

// Enabled turns tracing on or off. Changing the setting drops any running timers.
func Enabled(e bool) {
	mu.Lock()
	defer mu.Unlock()

	if e == enabled {
		return
	}
	enabled = e
	timers = make(map[string]*Timer)
}

func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// SetSink sets where timers write to.
func SetSink(s Sink) {
	mu.Lock()
	defer mu.Unlock()
	sink = s
}

func SetTag(t string) {
	mu.Lock()
	defer mu.Unlock()
	tag = t
}

// Enter starts a timer for the calling function.
func Enter() {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		return
	}
	fname := caller()
	if fname == "" {
		return
	}
	// Recursive calls keep the outermost timer.
	if _, ok := timers[fname]; ok {
		return
	}
	timers[fname] = start(fname)
}

// Exit stops the timer for the calling function and logs the elapsed time.
func Exit() {
	mu.Lock()
	defer mu.Unlock()

	if !enabled {
		return
	}
	fname := caller()
	t, ok := timers[fname]
	if !ok {
		return
	}
	delete(timers, fname)
	t.Since()
}

// Timer measures the time since it was started.
type Timer struct {
	name string
	tag  string
	sink Sink
	t0   time.Time
}

// Start returns a timer with the given name that writes to the current sink.
func Start(name string) *Timer {
	mu.Lock()
	defer mu.Unlock()
	return start(name)
}

func start(name string) *Timer {
	return &Timer{name: name, tag: tag, sink: sink, t0: time.Now()}
}

// Since logs the time elapsed since the timer started, followed by any key/value pairs.
func (t *Timer) Since(args ...interface{}) time.Duration {
	d := time.Since(t.t0)
	msg := t.name
	if t.tag != "" {
		msg = t.tag + " " + msg
	}
	t.sink.write(msg, append([]interface{}{"elapsed", d}, args...)...)
	return d
}

func caller() string {
	pc := make([]uintptr, 10)
	// Skip runtime.Callers, caller and Enter/Exit.
	n := runtime.Callers(3, pc)
	if n == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	return frame.Function
}

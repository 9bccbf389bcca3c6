package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

var (
	crashMu    sync.Mutex
	crashReset func()
	crashOut   io.Writer = os.Stderr
	crashExit            = os.Exit
)

// SetCrashReset registers the terminal restore run before a crash report is printed
func SetCrashReset(fn func()) {
	crashMu.Lock()
	crashReset = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	reset := crashReset
	crashReset = nil
	crashMu.Unlock()

	if reset != nil {
		reset()
	}

	// \r\n keeps the report readable if the terminal is still in raw mode
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	crashExit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

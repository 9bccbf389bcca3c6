package core

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestHandleCrashResetsAndReports(t *testing.T) {
	var out bytes.Buffer
	exitCode := -1
	resets := 0

	crashOut = &out
	crashExit = func(code int) { exitCode = code }
	t.Cleanup(func() {
		crashOut = os.Stderr
		crashExit = os.Exit
		SetCrashReset(nil)
	})

	SetCrashReset(func() { resets++ })
	HandleCrash("boom")

	if resets != 1 {
		t.Errorf("Reset ran %d times, want 1", resets)
	}
	if exitCode != 1 {
		t.Errorf("Exit code = %d, want 1", exitCode)
	}
	if !strings.Contains(out.String(), "CRASH DETECTED: boom") {
		t.Errorf("Report missing panic value: %q", out.String())
	}

	// The reset hook is consumed so a second crash does not touch a finalized screen
	HandleCrash("again")
	if resets != 1 {
		t.Errorf("Reset ran again after being consumed")
	}

	// A nil recovery is not a crash
	exitCode = -1
	HandleCrash(nil)
	if exitCode != -1 {
		t.Error("HandleCrash(nil) exited")
	}
}

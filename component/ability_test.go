package component

import "testing"

// TestAbilityActivatesOnceAcrossThreshold ticks a 1.0s cooldown in 0.05s steps
// and expects exactly one crossing of the 0.2s threshold
func TestAbilityActivatesOnceAcrossThreshold(t *testing.T) {
	a := AbilityComponent{Total: 1.0, ActivatesAt: 0.2}
	a.Activate()

	fired := 0
	firedAtTick := -1
	for i := 0; i < 40; i++ {
		before := a.Timer
		if a.Advance(0.05) {
			fired++
			firedAtTick = i
			if !(before > 0.2 && a.Timer <= 0.2) {
				t.Errorf("Activation on tick %d did not cross threshold: before=%v after=%v", i, before, a.Timer)
			}
		}
	}

	if fired != 1 {
		t.Fatalf("Expected exactly 1 activation, got %d", fired)
	}
	if firedAtTick < 14 || firedAtTick > 16 {
		t.Errorf("Expected activation around tick 15, got %d", firedAtTick)
	}
	if a.Timer != 0 {
		t.Errorf("Expected timer clamped at 0, got %v", a.Timer)
	}
}

func TestAbilityActivateWhileCoolingDownIsNoop(t *testing.T) {
	a := AbilityComponent{Total: 1.0, ActivatesAt: 0.5}
	a.Activate()
	a.Advance(0.3)

	timer := a.Timer
	a.Activate()
	if a.Timer != timer {
		t.Errorf("Expected timer unchanged at %v, got %v", timer, a.Timer)
	}
}

func TestAbilityResetCancelsPendingActivation(t *testing.T) {
	a := AbilityComponent{Total: 1.0, ActivatesAt: 0.5}
	a.Activate()
	a.Advance(0.2)
	a.Reset()

	if a.InProgress() {
		t.Fatal("Expected ability idle after reset")
	}
	for i := 0; i < 10; i++ {
		if a.Advance(0.1) {
			t.Fatal("Expected no activation after reset")
		}
	}
}

func TestAbilityProgress(t *testing.T) {
	a := AbilityComponent{}
	if got := a.Progress(); got != 0 {
		t.Errorf("Expected 0 progress with unset total, got %v", got)
	}

	a = AbilityComponent{Total: 2.0, Timer: 0.5}
	if got := a.Progress(); got != 0.75 {
		t.Errorf("Expected 0.75 progress, got %v", got)
	}
}

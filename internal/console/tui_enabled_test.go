package console

import "testing"

func TestBeginAndAbortTUI(t *testing.T) {
	restored := 0
	end := BeginTUI(func() { restored++ })
	if !IsTUIEnabled() {
		t.Fatal("TUI not marked as running")
	}

	AbortTUI()
	AbortTUI()
	if restored != 1 {
		t.Errorf("restore ran %d times, want 1", restored)
	}
	if IsTUIEnabled() {
		t.Error("TUI still marked as running after abort")
	}

	end()
	if IsTUIEnabled() {
		t.Error("TUI still marked as running after end")
	}
}

// Copyright © 2023 The Gomon Project.

package serve

import (
	"testing"
	"time"
)

func TestIntervalSet(t *testing.T) {
	var i interval
	t.Cleanup(func() { intervalExplicit = false })

	if err := i.Set("30"); err != nil {
		t.Fatalf("Set(30) err=%v", err)
	}
	if i != 30 || i.String() != "30" || i.duration() != 30*time.Second {
		t.Errorf("unexpected interval %v", i)
	}
	if !intervalExplicit {
		t.Error("expected interval to be marked explicit")
	}

	for _, s := range []string{"0", "-5", "sixty", "1.5"} {
		if err := i.Set(s); err == nil {
			t.Errorf("Set(%s) expected error", s)
		}
	}
}

func TestDaemonSet(t *testing.T) {
	var d daemon
	if err := d.Set("true"); err != nil || !bool(d) {
		t.Errorf("Set(true) d=%v err=%v", d, err)
	}
	if err := d.Set("maybe"); err == nil {
		t.Error("Set(maybe) expected error")
	}
	if !d.IsBoolFlag() {
		t.Error("daemon must be a boolean flag")
	}
}

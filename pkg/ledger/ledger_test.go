package ledger

import "testing"

func TestSetAndAdjustClamp(t *testing.T) {
	tests := []struct {
		name  string
		setup func(l *Ledger)
		want  int
	}{
		{"set in range", func(l *Ledger) { l.Set(Stability, 60) }, 60},
		{"set above max", func(l *Ledger) { l.Set(Stability, 150) }, 100},
		{"set below min", func(l *Ledger) { l.Set(Stability, -10) }, 0},
		{"adjust up past max", func(l *Ledger) { l.Set(Stability, 95); l.Adjust(Stability, 20) }, 100},
		{"adjust down past min", func(l *Ledger) { l.Set(Stability, 5); l.Adjust(Stability, -20) }, 0},
		{"adjust unknown indicator", func(l *Ledger) { l.Adjust(Stability, 7) }, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := New()
			tc.setup(l)
			if got := l.Get(Stability); got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestGetUnknownIndicator(t *testing.T) {
	l := New()
	if got := l.Get(RivalThreat); got != 0 {
		t.Errorf("unknown indicator = %d, want 0", got)
	}
}

func TestFlags(t *testing.T) {
	l := New()
	if l.HasFlag("spy_exposed") {
		t.Error("fresh ledger should have no flags")
	}
	l.SetFlag("spy_exposed")
	if !l.HasFlag("spy_exposed") {
		t.Error("flag should be set")
	}
	l.ClearFlag("spy_exposed")
	if l.HasFlag("spy_exposed") {
		t.Error("flag should be cleared")
	}
}

func TestVars(t *testing.T) {
	l := New()
	if l.Var("general_secretary") != "" {
		t.Error("unset var should read empty")
	}
	l.SetVar("general_secretary", "brezhnev")
	if got := l.Var("general_secretary"); got != "brezhnev" {
		t.Errorf("var = %q, want brezhnev", got)
	}
}

func TestIndicatorsListComplete(t *testing.T) {
	seen := make(map[Indicator]bool)
	for _, k := range Indicators {
		if seen[k] {
			t.Errorf("duplicate indicator %s", k)
		}
		seen[k] = true
	}
	if len(Indicators) != 12 {
		t.Errorf("indicator count = %d, want 12", len(Indicators))
	}
}

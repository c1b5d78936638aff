package actor

import "testing"

func TestFormAllianceClearsRivalry(t *testing.T) {
	r := &Relationship{SourceID: "a", TargetID: "b", Rivalry: true}
	r.FormAlliance(5)

	if !r.Alliance || r.AllianceTurn != 5 {
		t.Errorf("alliance = %v turn %d, want true turn 5", r.Alliance, r.AllianceTurn)
	}
	if r.Rivalry {
		t.Error("forming an alliance should clear rivalry")
	}
}

func TestMarkRivalryClearsAlliance(t *testing.T) {
	r := &Relationship{SourceID: "a", TargetID: "b"}
	r.FormAlliance(5)
	r.MarkRivalry()

	if r.Alliance {
		t.Error("rivalry should dissolve the alliance")
	}
	if !r.Rivalry {
		t.Error("rivalry should be set")
	}
}

func TestCanBetray(t *testing.T) {
	r := &Relationship{SourceID: "a", TargetID: "b"}

	if r.CanBetray(10) {
		t.Error("no alliance, nothing to betray")
	}

	r.FormAlliance(10)
	tests := []struct {
		turn int
		want bool
	}{
		{10, false},
		{10 + AllianceBetrayalAge - 1, false},
		{10 + AllianceBetrayalAge, true},
		{10 + AllianceBetrayalAge + 5, true},
	}
	for _, tc := range tests {
		if got := r.CanBetray(tc.turn); got != tc.want {
			t.Errorf("CanBetray at turn %d = %v, want %v", tc.turn, got, tc.want)
		}
	}
}

func TestRelationshipClamp(t *testing.T) {
	r := &Relationship{
		Disposition: -300,
		Trust:       150,
		Fear:        -20,
		Respect:     101,
		Grudge:      200,
		Gratitude:   -1,
	}
	r.Clamp()

	if r.Disposition != -100 {
		t.Errorf("disposition = %d, want -100", r.Disposition)
	}
	if r.Trust != 100 || r.Respect != 100 || r.Grudge != 100 {
		t.Errorf("upper clamps failed: %+v", r)
	}
	if r.Fear != 0 || r.Gratitude != 0 {
		t.Errorf("lower clamps failed: %+v", r)
	}
}

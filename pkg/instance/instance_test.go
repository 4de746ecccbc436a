package instance

import "testing"

func TestGetIDPrefersExplicitID(t *testing.T) {
	t.Setenv("SELLERDASH_INSTANCE_ID", "gw-1")
	t.Setenv("DYNO", "web.1")

	if got := GetID(); got != "gw-1" {
		t.Fatalf("expected gw-1, got %q", got)
	}
}

func TestGetIDFallsBackToDyno(t *testing.T) {
	t.Setenv("SELLERDASH_INSTANCE_ID", "")
	t.Setenv("DYNO", "web.2")

	if got := GetID(); got != "web.2" {
		t.Fatalf("expected web.2, got %q", got)
	}
}

func TestGetIDNeverEmpty(t *testing.T) {
	t.Setenv("SELLERDASH_INSTANCE_ID", "")
	t.Setenv("DYNO", "")

	if GetID() == "" {
		t.Fatalf("expected a non-empty id")
	}
}

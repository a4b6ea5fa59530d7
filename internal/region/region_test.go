package region

import "testing"

func TestDefault(t *testing.T) {
	t.Parallel()

	s := Default()
	want := []string{"Africa", "America", "Antarctica", "Asia", "Europe", "Oceania"}
	got := s.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKnown(t *testing.T) {
	t.Parallel()

	s := Default()
	tests := []struct {
		name string
		want bool
	}{
		{"Europe", true},
		{"europe", true},
		{"EUROPE", true},
		{"Atlantis", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := s.Known(tt.name); got != tt.want {
			t.Errorf("Known(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFromName(t *testing.T) {
	t.Parallel()

	s := Default()
	tests := []struct {
		packName string
		want     string
	}{
		{"simHeaven_X-World_Europe-3-details", "Europe"},
		{"simHeaven_X-World_america-1-vfr", "America"},
		{"Custom Airport KSEA", ""},
		{"", ""},
		// Table order decides when several regions occur.
		{"America_and_Europe_Pack", "America"},
	}
	for _, tt := range tests {
		if got := s.FromName(tt.packName); got != tt.want {
			t.Errorf("FromName(%q) = %q, want %q", tt.packName, got, tt.want)
		}
	}
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	names := []string{"Alpha", "Beta"}
	s := New(names)
	names[0] = "mutated"
	if s.Names()[0] != "Alpha" {
		t.Errorf("snapshot shares the caller's slice")
	}
}

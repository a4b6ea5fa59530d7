package lint

import (
	"testing"

	"github.com/startuz/xoxide/internal/scenery"
)

func issuesOfType(r Report, typ string) []Issue {
	var out []Issue
	for _, is := range r.Issues {
		if is.Type == typ {
			out = append(out, is)
		}
	}
	return out
}

func TestValidate_SimHeavenBelowGlobal(t *testing.T) {
	t.Parallel()

	ordered := []scenery.Pack{
		{Name: "Custom Airport KSEA", Category: scenery.EarthAirports},
		{Name: "Global Airports", Category: scenery.GlobalAirport},
		{Name: "simHeaven_X-World_Europe-1-forests", Category: scenery.Overlay},
		{Name: "simHeaven_X-World_Europe-2-regions", Category: scenery.Overlay},
	}

	r := Validate(ordered)

	got := issuesOfType(r, TypeSimHeavenBelowGlobal)
	if len(got) != 2 {
		t.Fatalf("got %d simheaven issues, want 2: %+v", len(got), got)
	}
	for _, is := range got {
		if is.Severity != Critical {
			t.Errorf("%s: severity = %v, want Critical", is.PackName, is.Severity)
		}
		if is.Message == "" || is.FixSuggestion == "" || is.Details == "" {
			t.Errorf("%s: issue fields must all be populated: %+v", is.PackName, is)
		}
	}
	if got[0].PackName != "simHeaven_X-World_Europe-1-forests" {
		t.Errorf("first issue names %q", got[0].PackName)
	}
}

func TestValidate_SimHeavenAboveGlobalIsClean(t *testing.T) {
	t.Parallel()

	ordered := []scenery.Pack{
		{Name: "simHeaven_X-World_Europe-1-forests", Category: scenery.Overlay},
		{Name: "Global Airports", Category: scenery.GlobalAirport},
	}

	r := Validate(ordered)

	if got := issuesOfType(r, TypeSimHeavenBelowGlobal); len(got) != 0 {
		t.Fatalf("unexpected issues: %+v", got)
	}
}

func TestValidate_SimHeavenWithoutGlobalIsClean(t *testing.T) {
	t.Parallel()

	ordered := []scenery.Pack{
		{Name: "simHeaven_X-World_Europe-1-forests", Category: scenery.Overlay},
		{Name: "zzz_Mesh", Category: scenery.Mesh},
	}

	r := Validate(ordered)

	if got := issuesOfType(r, TypeSimHeavenBelowGlobal); len(got) != 0 {
		t.Fatalf("no global airports entry, want no issues, got %+v", got)
	}
}

func TestValidate_MeshAboveOverlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ordered []scenery.Pack
		want    int
	}{
		{
			name: "mesh above overlay warns",
			ordered: []scenery.Pack{
				{Name: "zzz_UHD_Mesh", Category: scenery.Mesh},
				{Name: "An Overlay", Category: scenery.Overlay},
			},
			want: 1,
		},
		{
			name: "ortho above airport warns",
			ordered: []scenery.Pack{
				{Name: "zOrtho4XP_+47-123", Category: scenery.Ortho},
				{Name: "Custom Airport KSEA", Category: scenery.EarthAirports},
			},
			want: 1,
		},
		{
			name: "mesh below everything is clean",
			ordered: []scenery.Pack{
				{Name: "Custom Airport KSEA", Category: scenery.EarthAirports},
				{Name: "An Overlay", Category: scenery.Overlay},
				{Name: "zzz_UHD_Mesh", Category: scenery.Mesh},
			},
			want: 0,
		},
		{
			name: "no mesh is clean",
			ordered: []scenery.Pack{
				{Name: "An Overlay", Category: scenery.Overlay},
			},
			want: 0,
		},
		{
			name: "mesh only is clean",
			ordered: []scenery.Pack{
				{Name: "zzz_UHD_Mesh", Category: scenery.Mesh},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := Validate(tt.ordered)
			got := issuesOfType(r, TypeMeshAboveOverlay)
			if len(got) != tt.want {
				t.Fatalf("got %d mesh issues, want %d: %+v", len(got), tt.want, got)
			}
			if tt.want == 1 && got[0].Severity != Warning {
				t.Errorf("severity = %v, want Warning", got[0].Severity)
			}
		})
	}
}

func TestValidate_EmptyList(t *testing.T) {
	t.Parallel()

	r := Validate(nil)
	if len(r.Issues) != 0 {
		t.Fatalf("empty list produced issues: %+v", r.Issues)
	}
	if r.Worst() != Info {
		t.Errorf("Worst() = %v, want Info", r.Worst())
	}
}

func TestReport_Worst(t *testing.T) {
	t.Parallel()

	r := Report{Issues: []Issue{
		{Severity: Warning},
		{Severity: Critical},
		{Severity: Info},
	}}
	if r.Worst() != Critical {
		t.Errorf("Worst() = %v, want Critical", r.Worst())
	}

	r = Report{Issues: []Issue{{Severity: Warning}}}
	if r.Worst() != Warning {
		t.Errorf("Worst() = %v, want Warning", r.Worst())
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    Severity
		want string
	}{
		{Info, "info"},
		{Warning, "warning"},
		{Critical, "critical"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

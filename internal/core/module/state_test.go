package module

import (
	"reflect"
	"testing"
)

func TestPath(t *testing.T) {
	full := []State{
		StateNotStarted, StateFoldersCreated, StateManifestWritten,
		StateFilesWritten, StateResourcesGenerated, StateMenuRegistered,
		StateActivated, StateDone,
	}
	plain := []State{
		StateNotStarted, StateFoldersCreated, StateManifestWritten,
		StateActivated, StateDone,
	}

	if got := Path(TypeWeb); !reflect.DeepEqual(got, full) {
		t.Errorf("Path(web) = %v, want %v", got, full)
	}
	if got := Path(TypeAPI); !reflect.DeepEqual(got, full) {
		t.Errorf("Path(api) = %v, want %v", got, full)
	}
	if got := Path(TypePlain); !reflect.DeepEqual(got, plain) {
		t.Errorf("Path(plain) = %v, want %v", got, plain)
	}
}

func TestState_DoneIsTerminal(t *testing.T) {
	if got := StateDone.Next(TypeWeb); got != StateDone {
		t.Errorf("Done.Next = %v, want done", got)
	}
}

func TestState_String(t *testing.T) {
	if got := StateManifestWritten.String(); got != "manifest-written" {
		t.Errorf("String = %q", got)
	}
	if got := State(42).String(); got != "state(42)" {
		t.Errorf("String = %q", got)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"", TypeWeb, false},
		{"web", TypeWeb, false},
		{"api", TypeAPI, false},
		{"plain", TypePlain, false},
		{"Plain", "", true},
		{"cli", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

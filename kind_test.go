package unitfile

import (
	"errors"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindService, "service"},
		{KindTimer, "timer"},
		{KindSocket, "socket"},
		{KindUnknown, "unknown"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestKindFromString(t *testing.T) {
	for _, s := range []string{"service", "Service", ".service", "SERVICE"} {
		kind, err := KindFromString(s)
		if err != nil {
			t.Errorf("KindFromString(%q) error: %v", s, err)
		}
		if kind != KindService {
			t.Errorf("KindFromString(%q) = %v, want service", s, kind)
		}
	}

	if _, err := KindFromString("target"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestIdentityFilename(t *testing.T) {
	id := Identity{Name: "backup", Kind: KindTimer}
	if got := id.Filename(); got != "backup.timer" {
		t.Errorf("Filename() = %q, want backup.timer", got)
	}
}

func TestIdentityFromPath(t *testing.T) {
	id, err := IdentityFromPath("/etc/systemd/system/web.service")
	if err != nil {
		t.Fatal(err)
	}
	if id.Name != "web" || id.Kind != KindService {
		t.Errorf("IdentityFromPath = %+v", id)
	}

	if _, err := IdentityFromPath("/etc/systemd/system/noext"); err == nil {
		t.Error("expected error for path without extension")
	}
	if _, err := IdentityFromPath("/tmp/web.target"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v, want ErrUnknownKind", err)
	}
}

func TestIdentityCheck(t *testing.T) {
	tests := []struct {
		name string
		id   Identity
		ok   bool
	}{
		{"valid", Identity{Name: "web", Kind: KindService}, true},
		{"empty name", Identity{Kind: KindService}, false},
		{"unknown kind", Identity{Name: "web"}, false},
		{"path separator", Identity{Name: "../escape", Kind: KindService}, false},
		{"dot", Identity{Name: ".", Kind: KindService}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.check()
			if tt.ok && err != nil {
				t.Errorf("check() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("check() = nil, want error")
			}
		})
	}
}

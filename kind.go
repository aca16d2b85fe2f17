package unitfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind represents the category of a unit, which determines the on-disk file
// extension and which validation rules apply.
type Kind int

const (
	// KindUnknown represents an unrecognized unit kind
	KindUnknown Kind = iota
	// KindService represents a service unit
	KindService
	// KindTimer represents a timer unit
	KindTimer
	// KindSocket represents a socket unit
	KindSocket
)

// Kind string constants
const (
	kindUnknownStr = "unknown"
	kindServiceStr = "service"
	kindTimerStr   = "timer"
	kindSocketStr  = "socket"
)

// String returns the string representation of Kind, which doubles as the
// unit file extension.
func (k Kind) String() string {
	switch k {
	case KindService:
		return kindServiceStr
	case KindTimer:
		return kindTimerStr
	case KindSocket:
		return kindSocketStr
	default:
		return kindUnknownStr
	}
}

// KindFromString parses a kind name or file extension (with or without the
// leading dot) into a Kind.
func KindFromString(s string) (Kind, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case kindServiceStr:
		return KindService, nil
	case kindTimerStr:
		return KindTimer, nil
	case kindSocketStr:
		return KindSocket, nil
	default:
		return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Kinds returns all known unit kinds in a stable order.
func Kinds() []Kind {
	return []Kind{KindService, KindTimer, KindSocket}
}

// Identity names a unit: its base name plus its kind. The identity decides
// where the unit file and its drop-in directory live on disk.
type Identity struct {
	// Name is the unit name without extension
	Name string
	// Kind is the unit category
	Kind Kind
}

// Filename returns the canonical file name, "{name}.{kind}".
func (id Identity) Filename() string {
	return id.Name + "." + id.Kind.String()
}

func (id Identity) String() string {
	return id.Filename()
}

// check verifies the identity is usable for filesystem operations.
func (id Identity) check() error {
	if id.Name == "" {
		return ErrNoName
	}
	if strings.ContainsAny(id.Name, "/\x00") || id.Name == "." || id.Name == ".." {
		return fmt.Errorf("%w: %q", ErrBadName, id.Name)
	}
	switch id.Kind {
	case KindService, KindTimer, KindSocket:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(id.Kind))
	}
}

// IdentityFromPath derives a unit identity from a file path's basename and
// extension. The parser itself never does this; callers loading an existing
// file use it to recover the identity the path encodes.
func IdentityFromPath(path string) (Identity, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" {
		return Identity{}, fmt.Errorf("%w: %q has no extension", ErrUnknownKind, base)
	}
	kind, err := KindFromString(ext)
	if err != nil {
		return Identity{}, err
	}
	id := Identity{Name: strings.TrimSuffix(base, ext), Kind: kind}
	if err := id.check(); err != nil {
		return Identity{}, err
	}
	return id, nil
}

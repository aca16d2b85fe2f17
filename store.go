package unitfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// Store persists unit configurations under a single unit directory. It
// never talks to the service manager itself; the advisory commands a caller
// should run afterwards ride along on the results.
type Store struct {
	// UnitDir is the directory holding unit files and drop-in directories
	UnitDir string

	fileMode fs.FileMode
	dirMode  fs.FileMode
}

// StoreOption configures a Store
type StoreOption func(*Store)

// WithFileMode sets the mode for written unit files and README artifacts
func WithFileMode(mode fs.FileMode) StoreOption {
	return func(s *Store) {
		s.fileMode = mode
	}
}

// WithDirMode sets the mode for created drop-in directories
func WithDirMode(mode fs.FileMode) StoreOption {
	return func(s *Store) {
		s.dirMode = mode
	}
}

// NewStore creates a Store rooted at unitDir, falling back to
// DefaultUnitDir when unitDir is empty.
func NewStore(unitDir string, opts ...StoreOption) *Store {
	s := &Store{
		UnitDir:  unitDir,
		fileMode: FileMode,
		dirMode:  DirMode,
	}
	if s.UnitDir == "" {
		s.UnitDir = DefaultUnitDir
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UnitPath returns the primary file path for an identity.
func (s *Store) UnitPath(id Identity) string {
	return filepath.Join(s.UnitDir, id.Filename())
}

// DropinPath returns the drop-in directory path for an identity.
func (s *Store) DropinPath(id Identity) string {
	return filepath.Join(s.UnitDir, id.Filename()+DropinSuffix)
}

// SaveResult reports the outcome of a Save. A non-nil DropinErr means the
// primary file was written but the drop-in directory step failed; the save
// as a whole still succeeded.
type SaveResult struct {
	// Path is the written primary unit file
	Path string
	// DropinPath is the drop-in directory, empty when its creation failed
	DropinPath string
	// DropinErr records a failed drop-in step on an otherwise successful save
	DropinErr error
	// Warnings are the validation warnings from the pre-write check
	Warnings []string
	// Identity is the saved unit's identity
	Identity Identity
}

// Degraded reports whether the save succeeded without its drop-in
// directory.
func (r *SaveResult) Degraded() bool {
	return r.DropinErr != nil
}

// NextSteps returns the commands an operator must run for the saved unit to
// take effect. The Store never runs them.
func (r *SaveResult) NextSteps() []string {
	name := r.Identity.Filename()
	return []string{
		"systemctl daemon-reload",
		fmt.Sprintf("systemctl enable %s", name),
		fmt.Sprintf("systemctl start %s", name),
	}
}

// Save validates, serializes, and writes the unit to disk.
//
// Any blocking validation error aborts with a *ValidationError before
// anything touches the filesystem. The primary file is written through a
// temp file and an atomic rename, so a concurrent reader never observes a
// half-written unit. The drop-in directory and its README are best effort:
// if that step fails the primary write stands and the failure is reported
// on the result, not as an error.
func (s *Store) Save(cfg *Config, id Identity) (*SaveResult, error) {
	if err := id.check(); err != nil {
		return nil, err
	}

	vr := Validate(cfg, id.Kind)
	if !vr.OK() {
		return nil, &ValidationError{Errors: vr.Errors, Warnings: vr.Warnings}
	}

	path := s.UnitPath(id)
	content := Serialize(cfg) + "\n"
	if err := renameio.WriteFile(path, []byte(content), s.fileMode); err != nil {
		return nil, &StoreError{Step: StepWriteUnit, Path: path, Err: err}
	}

	result := &SaveResult{Path: path, Warnings: vr.Warnings, Identity: id}

	dropin := s.DropinPath(id)
	if err := os.MkdirAll(dropin, s.dirMode); err != nil {
		result.DropinErr = &StoreError{Step: StepDropin, Path: dropin, Err: err}
		return result, nil
	}
	readme := filepath.Join(dropin, ReadmeName)
	if err := renameio.WriteFile(readme, []byte(dropinReadme), s.fileMode); err != nil {
		result.DropinErr = &StoreError{Step: StepDropin, Path: readme, Err: err}
		return result, nil
	}
	result.DropinPath = dropin

	return result, nil
}

// DeleteResult reports which artifacts Delete actually removed.
type DeleteResult struct {
	// DeletedUnit is true when the primary unit file existed and was removed
	DeletedUnit bool
	// DeletedDropin is true when the drop-in directory existed and was removed
	DeletedDropin bool
}

// Delete removes the unit's on-disk artifacts. It is idempotent: absence of
// either artifact is not an error, and a delete for a unit that was never
// saved succeeds with both flags false.
//
// The drop-in directory is cleared flat: its immediate child files are
// removed, then the directory itself. A failure aborts with a *StoreError
// naming the step; artifacts removed before the failure stay removed.
func (s *Store) Delete(id Identity) (*DeleteResult, error) {
	if err := id.check(); err != nil {
		return nil, err
	}

	result := &DeleteResult{}

	dropin := s.DropinPath(id)
	entries, err := os.ReadDir(dropin)
	switch {
	case err == nil:
		for _, entry := range entries {
			child := filepath.Join(dropin, entry.Name())
			if err := os.Remove(child); err != nil {
				return nil, &StoreError{Step: StepRemoveDropin, Path: child, Err: err}
			}
		}
		if err := os.Remove(dropin); err != nil {
			return nil, &StoreError{Step: StepRemoveDropin, Path: dropin, Err: err}
		}
		result.DeletedDropin = true
	case !os.IsNotExist(err):
		return nil, &StoreError{Step: StepRemoveDropin, Path: dropin, Err: err}
	}

	path := s.UnitPath(id)
	switch err := os.Remove(path); {
	case err == nil:
		result.DeletedUnit = true
	case !os.IsNotExist(err):
		return nil, &StoreError{Step: StepRemoveUnit, Path: path, Err: err}
	}

	return result, nil
}

// Load reads and parses the unit's primary file. The identity stays as
// given; only the file content feeds the parser.
func (s *Store) Load(id Identity) (*Config, error) {
	if err := id.check(); err != nil {
		return nil, err
	}

	path := s.UnitPath(id)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StoreError{Step: StepReadUnit, Path: path, Err: err}
	}
	return Parse(string(data))
}

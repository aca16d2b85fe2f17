package unitfile

import "io/fs"

// Well-known section names. The model does not restrict sections to this
// set; unknown sections are carried as opaque key/value groups.
const (
	// SectionUnit is the [Unit] metadata section
	SectionUnit = "Unit"

	// SectionService is the [Service] execution section
	SectionService = "Service"

	// SectionInstall is the [Install] enablement section
	SectionInstall = "Install"

	// SectionTimer is the [Timer] schedule section
	SectionTimer = "Timer"

	// SectionSocket is the [Socket] activation section
	SectionSocket = "Socket"
)

// On-disk layout constants
const (
	// DefaultUnitDir is the standard system unit directory
	DefaultUnitDir = "/etc/systemd/system"

	// DropinSuffix is appended to a unit file name to form its drop-in
	// directory name
	DropinSuffix = ".d"

	// ReadmeName is the artifact written inside a fresh drop-in directory
	ReadmeName = "README"
)

// File modes
const (
	// DirMode is the default mode for created directories
	DirMode fs.FileMode = 0o755

	// FileMode is the default mode for created files
	FileMode fs.FileMode = 0o644
)

// dropinReadme is the fixed content of the README placed in a newly created
// drop-in directory.
const dropinReadme = `Override files for this unit.

Files in this directory must end in .conf. They are parsed after the main
unit file and applied in lexical order, so later files override earlier
ones. Each file uses the same [Section] / Key=Value format as the unit
file itself.

Changes take effect only after the service manager reloads its
configuration:

    systemctl daemon-reload
`

package unitfile

import (
	"fmt"
	"os"
	"os/user"
	"strings"
)

// Result classifies the findings of a validation run. Errors block
// persistence; warnings are surfaced but never block.
type Result struct {
	// Errors are blocking rule violations
	Errors []string
	// Warnings are findings the operator should see but may ignore
	Warnings []string
}

// OK reports whether the configuration may be persisted.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Clean reports whether validation produced no findings at all.
func (r Result) Clean() bool {
	return len(r.Errors) == 0 && len(r.Warnings) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Validate inspects a Config against the rules for the given unit kind and
// returns every finding. All rules are evaluated; nothing short-circuits.
// Filesystem and account lookups are read-only existence checks.
func Validate(cfg *Config, kind Kind) Result {
	var r Result

	if cfg.Get(SectionUnit, "Description") == "" {
		r.warnf("[Unit] Description is not set")
	}

	switch kind {
	case KindService:
		exec := cfg.Get(SectionService, "ExecStart")
		if exec == "" {
			r.errorf("[Service] ExecStart is required for a service unit")
		} else if strings.HasPrefix(exec, "/") {
			bin := strings.Fields(exec)[0]
			if _, err := os.Stat(bin); err != nil {
				r.warnf("[Service] ExecStart executable %s does not exist", bin)
			}
		}
		if cfg.Get(SectionService, "Type") == "" {
			r.warnf("[Service] Type is not set, the service manager will default to simple")
		}
	case KindTimer:
		if cfg.Get(SectionTimer, "OnCalendar") == "" {
			r.errorf("[Timer] OnCalendar is required for a timer unit")
		}
		if cfg.Get(SectionTimer, "Unit") == "" {
			r.warnf("[Timer] Unit is not set, the timer will activate a unit of its own name")
		}
	case KindSocket:
		if cfg.Get(SectionSocket, "ListenStream") == "" {
			r.warnf("[Socket] ListenStream is not set")
		}
	}

	if dir := cfg.Get(SectionService, "WorkingDirectory"); dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			r.warnf("[Service] WorkingDirectory %s is not an existing directory", dir)
		}
	}

	if name := cfg.Get(SectionService, "User"); name != "" && name != "root" {
		if _, err := user.Lookup(name); err != nil {
			r.warnf("[Service] User %s is not a known system account", name)
		}
	}

	return r
}

package unitfile

import (
	"fmt"
	"sort"
	"strings"
)

// Builder provides a fluent interface for assembling a service unit Config
// without touching raw sections. It covers the common service directives;
// anything beyond them can still be set on the built Config directly.
type Builder struct {
	name        string
	description string
	after       []string
	requires    []string
	svcType     string
	cmd         []string
	restart     string
	restartSec  string
	user        string
	group       string
	cwd         string
	env         map[string]string
	wantedBy    string
}

// NewBuilder creates a Builder for the named service unit.
func NewBuilder(name string) *Builder {
	return &Builder{
		name: name,
		env:  make(map[string]string),
	}
}

// WithDescription sets the [Unit] Description
func (b *Builder) WithDescription(desc string) *Builder {
	b.description = desc
	return b
}

// WithAfter appends units the service orders itself after
func (b *Builder) WithAfter(units ...string) *Builder {
	b.after = append(b.after, units...)
	return b
}

// WithRequires appends hard unit dependencies
func (b *Builder) WithRequires(units ...string) *Builder {
	b.requires = append(b.requires, units...)
	return b
}

// WithType sets the [Service] Type
func (b *Builder) WithType(t string) *Builder {
	b.svcType = t
	return b
}

// WithCmd sets the command and arguments behind ExecStart
func (b *Builder) WithCmd(cmd []string) *Builder {
	b.cmd = cmd
	return b
}

// WithRestart sets the restart policy
func (b *Builder) WithRestart(policy string) *Builder {
	b.restart = policy
	return b
}

// WithRestartSec sets the delay before a restart
func (b *Builder) WithRestartSec(sec string) *Builder {
	b.restartSec = sec
	return b
}

// WithUser sets the account the service runs as
func (b *Builder) WithUser(user string) *Builder {
	b.user = user
	return b
}

// WithGroup sets the group the service runs as
func (b *Builder) WithGroup(group string) *Builder {
	b.group = group
	return b
}

// WithCwd sets the working directory
func (b *Builder) WithCwd(cwd string) *Builder {
	b.cwd = cwd
	return b
}

// WithEnv adds an environment variable
func (b *Builder) WithEnv(key, value string) *Builder {
	b.env[key] = value
	return b
}

// WithWantedBy sets the [Install] WantedBy target
func (b *Builder) WithWantedBy(target string) *Builder {
	b.wantedBy = target
	return b
}

// Identity returns the service identity the builder produces.
func (b *Builder) Identity() Identity {
	return Identity{Name: b.name, Kind: KindService}
}

// Build assembles the Config. The unit name and command are required;
// everything else is optional and omitted when unset.
func (b *Builder) Build() (*Config, error) {
	if b.name == "" {
		return nil, ErrNoName
	}
	if len(b.cmd) == 0 {
		return nil, fmt.Errorf("unitfile: command not specified")
	}

	cfg := NewConfig()

	unit := cfg.Section(SectionUnit)
	if b.description == "" {
		unit.Set("Description", b.name+" service")
	} else {
		unit.Set("Description", b.description)
	}
	if len(b.after) > 0 {
		unit.Set("After", strings.Join(b.after, " "))
	}
	if len(b.requires) > 0 {
		unit.Set("Requires", strings.Join(b.requires, " "))
	}

	svc := cfg.Section(SectionService)
	if b.svcType != "" {
		svc.Set("Type", b.svcType)
	}
	svc.Set("ExecStart", execLine(b.cmd))
	if b.restart != "" {
		svc.Set("Restart", b.restart)
	}
	if b.restartSec != "" {
		svc.Set("RestartSec", b.restartSec)
	}
	if b.user != "" {
		svc.Set("User", b.user)
	}
	if b.group != "" {
		svc.Set("Group", b.group)
	}
	if b.cwd != "" {
		svc.Set("WorkingDirectory", b.cwd)
	}
	if len(b.env) > 0 {
		svc.Set("Environment", envLine(b.env))
	}

	if b.wantedBy != "" {
		cfg.Section(SectionInstall).Set("WantedBy", b.wantedBy)
	}

	return cfg, nil
}

// execLine joins a command vector into an ExecStart value, quoting
// arguments that contain shell-sensitive characters.
func execLine(cmd []string) string {
	line := cmd[0]
	for _, arg := range cmd[1:] {
		if strings.ContainsAny(arg, " \t\n\"'\\$") {
			arg = fmt.Sprintf("%q", arg)
		}
		line += " " + arg
	}
	return line
}

// envLine renders environment variables as a single Environment value with
// each assignment double-quoted, sorted for deterministic output.
func envLine(env map[string]string) string {
	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := strings.ReplaceAll(env[key], `"`, `\"`)
		parts = append(parts, `"`+key+`=`+value+`"`)
	}
	return strings.Join(parts, " ")
}

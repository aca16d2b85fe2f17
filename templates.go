package unitfile

import "fmt"

// Template is a named, predefined unit configuration. Applying a template
// replaces the active configuration wholesale; Config returns a fresh clone
// each call so sessions can edit the result freely.
type Template struct {
	// Name is the catalog key
	Name string
	// Description is a one-line summary for pickers
	Description string
	// Kind is the unit kind the template produces
	Kind Kind

	config *Config
}

// Config returns a fresh copy of the template's configuration.
func (t Template) Config() *Config {
	return t.config.Clone()
}

// Templates returns the built-in template catalog in a stable order.
func Templates() []Template {
	return []Template{
		{
			Name:        "simple-service",
			Description: "long-running service restarted on failure",
			Kind:        KindService,
			config: mustBuild(NewBuilder("simple").
				WithDescription("Simple long-running service").
				WithAfter("network.target").
				WithType("simple").
				WithCmd([]string{"/usr/bin/env", "true"}).
				WithRestart("on-failure").
				WithRestartSec("1").
				WithUser("root").
				WithWantedBy("multi-user.target")),
		},
		{
			Name:        "oneshot-service",
			Description: "run-once task that exits when done",
			Kind:        KindService,
			config: mustBuild(NewBuilder("oneshot").
				WithDescription("One-shot task").
				WithType("oneshot").
				WithCmd([]string{"/usr/bin/env", "true"}).
				WithWantedBy("multi-user.target")),
		},
		{
			Name:        "daily-timer",
			Description: "timer activating a companion service every day",
			Kind:        KindTimer,
			config:      dailyTimerConfig(),
		},
		{
			Name:        "socket-service",
			Description: "socket-activated stream service",
			Kind:        KindSocket,
			config:      socketConfig(),
		},
	}
}

// LookupTemplate returns the catalog entry with the given name.
func LookupTemplate(name string) (Template, error) {
	for _, t := range Templates() {
		if t.Name == name {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrNoTemplate, name)
}

func dailyTimerConfig() *Config {
	cfg := NewConfig()
	cfg.Section(SectionUnit).Set("Description", "Daily scheduled task")
	timer := cfg.Section(SectionTimer)
	timer.Set("OnCalendar", "daily")
	timer.Set("Persistent", "true")
	timer.Set("Unit", "task.service")
	cfg.Section(SectionInstall).Set("WantedBy", "timers.target")
	return cfg
}

func socketConfig() *Config {
	cfg := NewConfig()
	cfg.Section(SectionUnit).Set("Description", "Socket-activated service")
	socket := cfg.Section(SectionSocket)
	socket.Set("ListenStream", "127.0.0.1:8080")
	socket.Set("Accept", "false")
	cfg.Section(SectionInstall).Set("WantedBy", "sockets.target")
	return cfg
}

// mustBuild is for static catalog entries whose builders cannot fail.
func mustBuild(b *Builder) *Config {
	cfg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cfg
}

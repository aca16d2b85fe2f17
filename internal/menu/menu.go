// Package menu implements the interactive unitctl session: a thin
// dispatcher that maps numbered choices onto unitfile operations. The
// session exclusively owns the active configuration; nothing here holds
// global state, and invalid input only ever reprompts.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/axondata/go-unitfile"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Session drives one interactive editing session over a Store. It owns the
// active configuration and identity and hands them to the core operations;
// the core never sees the menu.
type Session struct {
	store *unitfile.Store
	in    *bufio.Scanner
	out   io.Writer
	log   *slog.Logger

	cfg *unitfile.Config
	id  unitfile.Identity
}

// New creates a Session reading choices from in and writing to out.
func New(store *unitfile.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
		log:   slog.Default(),
	}
}

// Run loops over the main menu until the user quits or input ends.
func (s *Session) Run() error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, titleStyle.Render("UNIT FILE EDITOR"))
		if s.cfg != nil {
			fmt.Fprintln(s.out, dimStyle.Render("editing "+s.id.Filename()))
		}
		fmt.Fprintln(s.out, " 1. Create new unit")
		fmt.Fprintln(s.out, " 2. Load existing unit")
		fmt.Fprintln(s.out, " 3. Edit directives")
		fmt.Fprintln(s.out, " 4. Apply template")
		fmt.Fprintln(s.out, " 5. Validate")
		fmt.Fprintln(s.out, " 6. Preview")
		fmt.Fprintln(s.out, " 7. Save")
		fmt.Fprintln(s.out, " 8. Delete")
		fmt.Fprintln(s.out, " 9. Quit")

		choice, ok := s.prompt("Select option (1-9)")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			s.createUnit()
		case "2":
			s.loadUnit()
		case "3":
			s.editDirectives()
		case "4":
			s.applyTemplate()
		case "5":
			s.validate()
		case "6":
			s.preview()
		case "7":
			s.save()
		case "8":
			s.delete()
		case "9":
			return nil
		default:
			fmt.Fprintln(s.out, errStyle.Render("Invalid choice, please try again."))
		}
	}
}

// prompt reads one trimmed line. ok is false when input is exhausted.
func (s *Session) prompt(label string) (value string, ok bool) {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// choose presents numbered options and reprompts until one is picked.
// It returns -1 when input is exhausted.
func (s *Session) choose(label string, options []string) int {
	for {
		fmt.Fprintln(s.out, label+":")
		for i, opt := range options {
			fmt.Fprintf(s.out, " %d. %s\n", i+1, opt)
		}
		text, ok := s.prompt(fmt.Sprintf("Select (1-%d)", len(options)))
		if !ok {
			return -1
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintln(s.out, errStyle.Render("Invalid selection, try again."))
			continue
		}
		return n - 1
	}
}

func (s *Session) requireUnit() bool {
	if s.cfg == nil {
		fmt.Fprintln(s.out, warnStyle.Render("No unit configured. Create or load one first."))
		return false
	}
	return true
}

func (s *Session) createUnit() {
	kinds := unitfile.Kinds()
	labels := make([]string, len(kinds))
	for i, k := range kinds {
		labels[i] = k.String()
	}
	idx := s.choose("Unit type", labels)
	if idx < 0 {
		return
	}
	kind := kinds[idx]

	name, ok := s.prompt("Unit name (without extension)")
	if !ok {
		return
	}
	if name == "" {
		fmt.Fprintln(s.out, errStyle.Render("A unit needs a name."))
		return
	}

	cfg := unitfile.NewConfig()
	if desc, ok := s.prompt("Description"); ok {
		cfg.Set(unitfile.SectionUnit, "Description", desc)
	}

	switch kind {
	case unitfile.KindService:
		s.promptService(cfg)
	case unitfile.KindTimer:
		s.promptTimer(cfg)
	case unitfile.KindSocket:
		s.promptSocket(cfg)
	}

	s.cfg = cfg
	s.id = unitfile.Identity{Name: name, Kind: kind}
	s.log.Debug("unit created", "unit", s.id.Filename())
	fmt.Fprintln(s.out, okStyle.Render("Configured "+s.id.Filename()))
}

func (s *Session) promptService(cfg *unitfile.Config) {
	svc := cfg.Section(unitfile.SectionService)

	types := []string{"simple", "forking", "oneshot", "notify", "dbus"}
	if idx := s.choose("Service type", types); idx >= 0 {
		svc.Set("Type", types[idx])
	}
	if v, ok := s.prompt("ExecStart command"); ok {
		svc.Set("ExecStart", v)
	}
	policies := []string{"no", "always", "on-success", "on-failure", "on-abnormal", "on-abort", "on-watchdog"}
	if idx := s.choose("Restart policy", policies); idx >= 0 {
		svc.Set("Restart", policies[idx])
	}
	if v, ok := s.prompt("Run as user [blank for root]"); ok && v != "" {
		svc.Set("User", v)
	}
	if v, ok := s.prompt("Working directory [optional]"); ok && v != "" {
		svc.Set("WorkingDirectory", v)
	}
}

func (s *Session) promptTimer(cfg *unitfile.Config) {
	timer := cfg.Section(unitfile.SectionTimer)

	if v, ok := s.prompt("Schedule (e.g. daily, hourly, or calendar spec)"); ok {
		timer.Set("OnCalendar", v)
	}
	if idx := s.choose("Persistent timer", []string{"true", "false"}); idx >= 0 {
		timer.Set("Persistent", []string{"true", "false"}[idx])
	}
	if v, ok := s.prompt("Service to activate (e.g. example.service)"); ok {
		timer.Set("Unit", v)
	}
}

func (s *Session) promptSocket(cfg *unitfile.Config) {
	if v, ok := s.prompt("Listen address (e.g. 127.0.0.1:8080)"); ok {
		cfg.Set(unitfile.SectionSocket, "ListenStream", v)
	}
}

func (s *Session) loadUnit() {
	name, ok := s.prompt("Unit file name (e.g. web.service)")
	if !ok || name == "" {
		return
	}

	id, err := unitfile.IdentityFromPath(name)
	if err != nil {
		fmt.Fprintln(s.out, errStyle.Render(err.Error()))
		return
	}

	cfg, err := s.store.Load(id)
	if err != nil {
		fmt.Fprintln(s.out, errStyle.Render(err.Error()))
		return
	}

	s.cfg = cfg
	s.id = id
	s.log.Debug("unit loaded", "unit", id.Filename())
	fmt.Fprintln(s.out, okStyle.Render("Loaded "+id.Filename()))
}

func (s *Session) editDirectives() {
	if !s.requireUnit() {
		return
	}

	names := s.cfg.Sections()
	options := append(append([]string{}, names...), "other section...")
	idx := s.choose("Section", options)
	if idx < 0 {
		return
	}

	var section string
	if idx == len(names) {
		v, ok := s.prompt("Section name")
		if !ok || v == "" {
			return
		}
		section = v
	} else {
		section = names[idx]
	}

	sec := s.cfg.Section(section)
	for _, key := range sec.Keys() {
		if value := sec.Get(key); value != "" {
			fmt.Fprintf(s.out, "  %s=%s\n", key, value)
		}
	}

	key, ok := s.prompt("Directive key")
	if !ok || key == "" {
		return
	}
	value, ok := s.prompt("Value [blank clears]")
	if !ok {
		return
	}

	sec.Set(key, value)
	s.log.Debug("directive set", "section", section, "key", key)
	fmt.Fprintln(s.out, okStyle.Render(fmt.Sprintf("[%s] %s updated", section, key)))
}

func (s *Session) applyTemplate() {
	templates := unitfile.Templates()
	labels := make([]string, len(templates))
	for i, tpl := range templates {
		labels[i] = fmt.Sprintf("%s - %s", tpl.Name, tpl.Description)
	}
	idx := s.choose("Template", labels)
	if idx < 0 {
		return
	}
	tpl := templates[idx]

	name := s.id.Name
	if name == "" {
		v, ok := s.prompt("Unit name (without extension)")
		if !ok || v == "" {
			return
		}
		name = v
	}

	// Wholesale replacement: the template's config becomes the session's.
	s.cfg = tpl.Config()
	s.id = unitfile.Identity{Name: name, Kind: tpl.Kind}
	s.log.Debug("template applied", "template", tpl.Name, "unit", s.id.Filename())
	fmt.Fprintln(s.out, okStyle.Render(fmt.Sprintf("Applied %s to %s", tpl.Name, s.id.Filename())))
}

func (s *Session) validate() {
	if !s.requireUnit() {
		return
	}

	r := unitfile.Validate(s.cfg, s.id.Kind)
	for _, e := range r.Errors {
		fmt.Fprintln(s.out, errStyle.Render("error: "+e))
	}
	for _, w := range r.Warnings {
		fmt.Fprintln(s.out, warnStyle.Render("warning: "+w))
	}
	if r.Clean() {
		fmt.Fprintln(s.out, okStyle.Render("Configuration is clean."))
	}
}

func (s *Session) preview() {
	if !s.requireUnit() {
		return
	}
	fmt.Fprintln(s.out, dimStyle.Render("--- "+s.id.Filename()+" ---"))
	fmt.Fprintln(s.out, unitfile.Serialize(s.cfg))
}

func (s *Session) save() {
	if !s.requireUnit() {
		return
	}

	result, err := s.store.Save(s.cfg, s.id)
	if err != nil {
		fmt.Fprintln(s.out, errStyle.Render(err.Error()))
		return
	}

	fmt.Fprintln(s.out, okStyle.Render("Saved "+result.Path))
	for _, w := range result.Warnings {
		fmt.Fprintln(s.out, warnStyle.Render("warning: "+w))
	}
	if result.Degraded() {
		fmt.Fprintln(s.out, warnStyle.Render("Drop-in directory could not be created: "+result.DropinErr.Error()))
	}
	fmt.Fprintln(s.out, "Remember to run:")
	for _, step := range result.NextSteps() {
		fmt.Fprintln(s.out, "  "+step)
	}
}

func (s *Session) delete() {
	if s.id.Name == "" {
		fmt.Fprintln(s.out, warnStyle.Render("No unit selected. Create or load one first."))
		return
	}

	confirm, ok := s.prompt(fmt.Sprintf("Delete %s and its drop-in directory? [y/N]", s.id.Filename()))
	if !ok || !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(s.out, "Aborted.")
		return
	}

	result, err := s.store.Delete(s.id)
	if err != nil {
		fmt.Fprintln(s.out, errStyle.Render(err.Error()))
		return
	}

	switch {
	case result.DeletedUnit && result.DeletedDropin:
		fmt.Fprintln(s.out, okStyle.Render("Removed unit file and drop-in directory."))
	case result.DeletedUnit:
		fmt.Fprintln(s.out, okStyle.Render("Removed unit file."))
	default:
		fmt.Fprintln(s.out, "Nothing to remove.")
	}
	fmt.Fprintln(s.out, "Remember to run: systemctl daemon-reload")
}

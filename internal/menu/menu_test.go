package menu

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/axondata/go-unitfile"
)

// runSession feeds the scripted lines to a fresh session over a temp unit
// directory and returns the transcript.
func runSession(t *testing.T, lines ...string) (string, *unitfile.Store) {
	t.Helper()

	store := unitfile.NewStore(t.TempDir())
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	if err := New(store, in, &out).Run(); err != nil {
		t.Fatal(err)
	}
	return out.String(), store
}

func TestSessionQuit(t *testing.T) {
	out, _ := runSession(t, "9")
	if !strings.Contains(out, "UNIT FILE EDITOR") {
		t.Errorf("missing menu header in:\n%s", out)
	}
}

func TestSessionEOFEndsRun(t *testing.T) {
	store := unitfile.NewStore(t.TempDir())
	var out bytes.Buffer
	if err := New(store, strings.NewReader(""), &out).Run(); err != nil {
		t.Fatal(err)
	}
}

func TestSessionInvalidChoiceReprompts(t *testing.T) {
	out, _ := runSession(t, "banana", "9")
	if !strings.Contains(out, "Invalid choice") {
		t.Errorf("missing reprompt in:\n%s", out)
	}
}

func TestSessionCreateAndSaveService(t *testing.T) {
	out, store := runSession(t,
		"1",          // create new unit
		"1",          // kind: service
		"web",        // name
		"Web server", // description
		"1",          // type: simple
		"/bin/true",  // ExecStart
		"2",          // restart: always
		"",           // user (root)
		"",           // working directory
		"7",          // save
		"9",          // quit
	)

	if !strings.Contains(out, "Saved") {
		t.Fatalf("save not reported in:\n%s", out)
	}
	if !strings.Contains(out, "systemctl daemon-reload") {
		t.Errorf("next steps not shown in:\n%s", out)
	}

	id := unitfile.Identity{Name: "web", Kind: unitfile.KindService}
	data, err := os.ReadFile(store.UnitPath(id))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"[Unit]", "Description=Web server", "ExecStart=/bin/true", "Restart=always"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("unit file missing %q:\n%s", want, data)
		}
	}
	if _, err := os.Stat(filepath.Join(store.DropinPath(id), unitfile.ReadmeName)); err != nil {
		t.Errorf("drop-in README missing: %v", err)
	}
}

func TestSessionSaveWithoutUnit(t *testing.T) {
	out, _ := runSession(t, "7", "9")
	if !strings.Contains(out, "No unit configured") {
		t.Errorf("missing guard message in:\n%s", out)
	}
}

func TestSessionValidationBlocksSave(t *testing.T) {
	out, store := runSession(t,
		"1",    // create new unit
		"1",    // kind: service
		"web",  // name
		"desc", // description
		"1",    // type
		"",     // ExecStart left empty
		"1",    // restart: no
		"",     // user
		"",     // working directory
		"7",    // save refuses
		"9",
	)

	if !strings.Contains(out, "validation") {
		t.Errorf("validation failure not surfaced in:\n%s", out)
	}

	id := unitfile.Identity{Name: "web", Kind: unitfile.KindService}
	if _, err := os.Stat(store.UnitPath(id)); !os.IsNotExist(err) {
		t.Error("blocked save still wrote the unit file")
	}
}

func TestSessionApplyTemplateAndPreview(t *testing.T) {
	out, _ := runSession(t,
		"4",      // apply template
		"3",      // daily-timer
		"backup", // unit name
		"6",      // preview
		"9",
	)

	if !strings.Contains(out, "Applied daily-timer to backup.timer") {
		t.Errorf("template application not reported in:\n%s", out)
	}
	if !strings.Contains(out, "OnCalendar=daily") {
		t.Errorf("preview missing template content in:\n%s", out)
	}
}

func TestSessionEditDirective(t *testing.T) {
	out, _ := runSession(t,
		"4",       // apply template
		"1",       // simple-service
		"web",     // name
		"3",       // edit directives
		"2",       // [Service] section
		"Nice",    // key
		"5",       // value
		"6",       // preview
		"9",
	)

	if !strings.Contains(out, "Nice=5") {
		t.Errorf("edited directive missing from preview:\n%s", out)
	}
}

func TestSessionDeleteLifecycle(t *testing.T) {
	store := unitfile.NewStore(t.TempDir())
	id := unitfile.Identity{Name: "web", Kind: unitfile.KindService}

	cfg := unitfile.NewConfig()
	cfg.Set(unitfile.SectionUnit, "Description", "x")
	cfg.Set(unitfile.SectionService, "Type", "simple")
	cfg.Set(unitfile.SectionService, "ExecStart", "/bin/true")
	if _, err := store.Save(cfg, id); err != nil {
		t.Fatal(err)
	}

	in := strings.NewReader("2\nweb.service\n8\ny\n9\n")
	var out bytes.Buffer
	if err := New(store, in, &out).Run(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "Removed unit file and drop-in directory.") {
		t.Errorf("delete not reported in:\n%s", out.String())
	}
	if _, err := os.Stat(store.UnitPath(id)); !os.IsNotExist(err) {
		t.Error("unit file still present after delete")
	}
}

// Package unitfile models systemd-style unit configuration files: an
// ordered, sectioned Key=Value representation with a parser, a semantic
// validator, a canonical serializer, and a Store that manages the on-disk
// artifacts (the unit file plus its drop-in directory).
//
// The core type is Config, an ordered mapping from section name to ordered
// directives. Sections exist on first reference, so unknown sections pass
// through untouched:
//
//	cfg := unitfile.NewConfig()
//	cfg.Set(unitfile.SectionUnit, "Description", "My service")
//	cfg.Set(unitfile.SectionService, "ExecStart", "/usr/local/bin/myapp")
//
//	id := unitfile.Identity{Name: "myapp", Kind: unitfile.KindService}
//	store := unitfile.NewStore("/etc/systemd/system")
//	result, err := store.Save(cfg, id)
//
// Save validates first and refuses to write anything when a blocking rule
// fails. The primary file goes through a temp file and an atomic rename;
// the drop-in directory is best effort, and a failure there is reported on
// the SaveResult instead of undoing the write.
//
// # Design Philosophy
//
// This library prioritizes:
//
//   - Zero interaction with a running service manager (reload/enable/start
//     are advisory strings on results, never invoked)
//   - Round-trip fidelity between Parse and Serialize
//   - Precise per-step failure reporting over all-or-nothing errors
//   - Synchronous, exclusively owned state (no globals, no background work)
//
// The interactive layer in cmd/unitctl is a thin dispatcher over these
// operations; all invariants live here.
package unitfile

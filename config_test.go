package herald

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "herald.toml")
	want := Config{
		Quiet:       true,
		ProgName:    "myprog",
		Colorscheme: SchemeLight,
		LogfilePath: "/tmp/run.log",
		CulpritSep:  ":",
	}

	if err := SaveConfig(path, want); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if got.Quiet != want.Quiet ||
		got.ProgName != want.ProgName ||
		got.Colorscheme != want.Colorscheme ||
		got.LogfilePath != want.LogfilePath ||
		got.CulpritSep != want.CulpritSep {
		t.Errorf("round trip changed config: got %+v, want %+v", got, want)
	}
}

func TestLoadConfigIntoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "herald.toml")
	content := "verbose = true\nprog_name = \"fromfile\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	s := newTestSession(t, cfg)

	if !s.n.Verbose || s.n.ProgName != "fromfile" {
		t.Errorf("session = verbose %v prog %q", s.n.Verbose, s.n.ProgName)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

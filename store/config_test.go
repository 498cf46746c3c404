package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
snapshot_path: /var/lib/redisdoc/keys.snapshot
listen_addr: 0.0.0.0:7000
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SnapshotPath != "/var/lib/redisdoc/keys.snapshot" {
		t.Errorf("SnapshotPath = %q", cfg.SnapshotPath)
	}
	if cfg.ListenAddr != "0.0.0.0:7000" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "snapshot_path: keys.snapshot\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != DefaultConfig().ListenAddr {
		t.Errorf("ListenAddr = %q, want default", cfg.ListenAddr)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := LoadConfig(writeConfig(t, "listen_addr: [broken\n")); err == nil {
		t.Error("bad yaml should fail")
	}
}

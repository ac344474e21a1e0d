package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDotenvLookup(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", "MYCONFIG_SOME_INT=42\nMYCONFIG_EMPTY=\n")

	d, err := NewDotenv(WithDotenvPath(path))
	if err != nil {
		t.Fatalf("NewDotenv failed: %v", err)
	}
	if d.Name() != "dotenv" {
		t.Errorf("expected name 'dotenv', got %q", d.Name())
	}

	v, found, err := d.Lookup("MYCONFIG_SOME_INT")
	if err != nil || !found || v != "42" {
		t.Errorf("expected (42, true, nil), got (%q, %v, %v)", v, found, err)
	}

	v, found, err = d.Lookup("MYCONFIG_EMPTY")
	if err != nil || !found || v != "" {
		t.Errorf("empty value must be present: got (%q, %v, %v)", v, found, err)
	}

	_, found, err = d.Lookup("MYCONFIG_MISSING")
	if err != nil || found {
		t.Errorf("expected absent, got (found=%v, err=%v)", found, err)
	}
}

func TestDotenvExplicitPathMissingIsFatal(t *testing.T) {
	_, err := NewDotenv(WithDotenvPath(filepath.Join(t.TempDir(), "nope.env")))
	if err == nil {
		t.Fatal("expected error for missing explicit env file")
	}
}

func TestDotenvEnvFileOverride(t *testing.T) {
	path := writeFile(t, t.TempDir(), "custom.env", "KEY=from_override\n")
	t.Setenv(EnvFileVar, path)

	d, err := NewDotenv()
	if err != nil {
		t.Fatalf("NewDotenv failed: %v", err)
	}
	if d.Path() != path {
		t.Errorf("expected path %q, got %q", path, d.Path())
	}
	v, found, _ := d.Lookup("KEY")
	if !found || v != "from_override" {
		t.Errorf("expected value from overridden file, got (%q, %v)", v, found)
	}
}

func TestDotenvEnvFileOverrideMissingIsFatal(t *testing.T) {
	t.Setenv(EnvFileVar, filepath.Join(t.TempDir(), "absent.env"))
	if _, err := NewDotenv(); err == nil {
		t.Fatal("expected error when ENV_FILE names a missing file")
	}
}

func TestDotenvImplicitPathMissingIsEmpty(t *testing.T) {
	t.Setenv(EnvFileVar, "")
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldWD) })

	d, err := NewDotenv()
	if err != nil {
		t.Fatalf("implicit missing .env must yield an empty source, got %v", err)
	}
	if _, found, _ := d.Lookup("ANYTHING"); found {
		t.Error("empty source must report everything absent")
	}
}

func TestDotenvMalformedIsFatal(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.env", "not a valid line\n===\n")
	_, err := NewDotenv(WithDotenvPath(path))
	if err == nil {
		t.Fatal("expected parse error for malformed env file")
	}
	if !strings.Contains(err.Error(), "bad.env") {
		t.Errorf("error should name the file, got %q", err.Error())
	}
}

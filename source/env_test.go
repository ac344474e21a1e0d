package source

import "testing"

func TestEnvLookup(t *testing.T) {
	t.Setenv("ENVBIND_TEST_PRESENT", "value")
	t.Setenv("ENVBIND_TEST_EMPTY", "")

	env := NewEnv()
	if env.Name() != "env" {
		t.Errorf("expected name 'env', got %q", env.Name())
	}

	t.Run("present", func(t *testing.T) {
		v, found, err := env.Lookup("ENVBIND_TEST_PRESENT")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found || v != "value" {
			t.Errorf("expected (value, true), got (%q, %v)", v, found)
		}
	})

	t.Run("empty string is present", func(t *testing.T) {
		v, found, err := env.Lookup("ENVBIND_TEST_EMPTY")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Error("empty string value must be reported as present")
		}
		if v != "" {
			t.Errorf("expected empty string, got %q", v)
		}
	})

	t.Run("absent", func(t *testing.T) {
		_, found, err := env.Lookup("ENVBIND_TEST_DEFINITELY_UNSET")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("expected absent for unset variable")
		}
	})
}

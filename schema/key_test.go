package schema

import "testing"

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name       string
		schemaName string
		fieldName  string
		opts       Options
		want       string
	}{
		{"default rule", "MyConfig", "some_int", Options{}, "MYCONFIG_SOME_INT"},
		{"underscored field", "MyConfig", "some_string", Options{}, "MYCONFIG_SOME_STRING"},
		{"prefix override", "MyConfig", "port", Options{Prefix: "app"}, "APP_PORT"},
		{"custom separator", "MyConfig", "port", Options{Separator: "__"}, "MYCONFIG__PORT"},
		{"already uppercase", "SERVICE", "HOST", Options{}, "SERVICE_HOST"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveKey(tc.schemaName, tc.fieldName, tc.opts)
			if got != tc.want {
				t.Errorf("DeriveKey(%q, %q) = %q, want %q", tc.schemaName, tc.fieldName, got, tc.want)
			}
		})
	}
}

func TestDeriveKeyIsStable(t *testing.T) {
	opts := Options{Prefix: "svc", Separator: "_"}
	first := DeriveKey("MyConfig", "some_int", opts)
	for i := 0; i < 100; i++ {
		if got := DeriveKey("MyConfig", "some_int", opts); got != first {
			t.Fatalf("derivation not stable: got %q after %q", got, first)
		}
	}
}

func TestKeyForHonorsOverride(t *testing.T) {
	s, err := New("MyConfig").
		Int("port", WithKey("LISTEN_PORT")).
		String("host").
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	fields := s.Fields()
	if got := s.KeyFor(fields[0]); got != "LISTEN_PORT" {
		t.Errorf("expected override key LISTEN_PORT, got %q", got)
	}
	if got := s.KeyFor(fields[1]); got != "MYCONFIG_HOST" {
		t.Errorf("expected derived key MYCONFIG_HOST, got %q", got)
	}
}

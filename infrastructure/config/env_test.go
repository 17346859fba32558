package config

import (
	"errors"
	"strings"
	"testing"

	domainconfig "github.com/felixgeelhaar/graphs/domain/config"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("GRAPHS_TEST_DIR", "/tmp/charts")
	t.Setenv("GRAPHS_TEST_EMPTY", "")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bracketed", "dir: ${GRAPHS_TEST_DIR}", "dir: /tmp/charts"},
		{"simple", "dir: $GRAPHS_TEST_DIR", "dir: /tmp/charts"},
		{"default used when unset", "${GRAPHS_TEST_UNSET:-./out}", "./out"},
		{"default used when empty", "${GRAPHS_TEST_EMPTY:-fallback}", "fallback"},
		{"default ignored when set", "${GRAPHS_TEST_DIR:-./out}", "/tmp/charts"},
		{"unset becomes empty", "[${GRAPHS_TEST_UNSET}]", "[]"},
		{"no variables", "title: Sales", "title: Sales"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandEnv(tt.input); got != tt.want {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandEnvStrict(t *testing.T) {
	t.Setenv("GRAPHS_TEST_TITLE", "Revenue")

	got, err := ExpandEnvStrict("title: ${GRAPHS_TEST_TITLE}")
	if err != nil || got != "title: Revenue" {
		t.Errorf("ExpandEnvStrict() = %q, %v", got, err)
	}

	_, err = ExpandEnvStrict("dir: ${GRAPHS_TEST_MISSING} $GRAPHS_TEST_ALSO_MISSING")
	if !errors.Is(err, domainconfig.ErrMissingEnvVar) {
		t.Fatalf("error = %v, want ErrMissingEnvVar", err)
	}
	for _, name := range []string{"GRAPHS_TEST_MISSING", "GRAPHS_TEST_ALSO_MISSING"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q should name %s", err, name)
		}
	}
}

func TestExpand_Required(t *testing.T) {
	_, err := expand("${GRAPHS_TEST_REQUIRED:?output dir must be set}", false)
	if !errors.Is(err, domainconfig.ErrMissingEnvVar) {
		t.Fatalf("error = %v, want ErrMissingEnvVar", err)
	}
	if !strings.Contains(err.Error(), "output dir must be set") {
		t.Errorf("error %q should carry the message", err)
	}

	t.Setenv("GRAPHS_TEST_REQUIRED", "/srv/charts")
	got, err := expand("${GRAPHS_TEST_REQUIRED:?output dir must be set}", false)
	if err != nil || got != "/srv/charts" {
		t.Errorf("expand() = %q, %v", got, err)
	}
}

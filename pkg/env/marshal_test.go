package env

import (
	"strings"
	"testing"
)

type sampleConfig struct {
	Name    string `env:"APP_NAME"`
	Port    int    `env:"APP_PORT"`
	Debug   bool   `env:"APP_DEBUG"`
	Skipped string
	Empty   string `env:"APP_EMPTY"`
	Token   string `env:"APP_TOKEN,required,notEmpty"`
}

func TestMarshal(t *testing.T) {
	cfg := &sampleConfig{
		Name:  "tarictl",
		Port:  18189,
		Debug: true,
		Token: "secret",
	}

	out, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"APP_NAME=tarictl\n", "APP_PORT=18189\n", "APP_DEBUG=true\n", "APP_TOKEN=secret\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "APP_EMPTY") {
		t.Error("zero-valued field was serialized")
	}
	if strings.Contains(out, "Skipped") {
		t.Error("untagged field was serialized")
	}
}

func TestMarshal_QuotesValuesWithSpaces(t *testing.T) {
	cfg := &sampleConfig{Name: ">> prompt"}
	out, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `APP_NAME=">> prompt"`) {
		t.Errorf("value with spaces not quoted:\n%s", out)
	}
}

func TestMarshal_RejectsNonStruct(t *testing.T) {
	if _, err := Marshal(42); err == nil {
		t.Error("expected error for non-struct input")
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"

	"github.com/open-condo-software/condo-sub035/uri"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "urinorm.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.OutputCfg.Format != FormatJSON || !c.OutputCfg.WithOffsets {
		t.Errorf("output = %+v", c.OutputCfg)
	}
	if c.AnalyzerCfg.MaxInputBytes != 1<<20 || len(c.AnalyzerCfg.Families) != 0 {
		t.Errorf("analyzer = %+v", c.AnalyzerCfg)
	}
	if c.LogCfg.Verbosity != 0 {
		t.Errorf("log = %+v", c.LogCfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[analyzer]
families = ["identifier", "Email"]

[output]
format = "YAML"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.OutputCfg.Format != FormatYAML {
		t.Errorf("format = %q, want yaml", c.OutputCfg.Format)
	}
	if !c.OutputCfg.WithOffsets || c.AnalyzerCfg.MaxInputBytes != 1<<20 {
		t.Errorf("defaults lost: %+v", c)
	}

	a, err := c.NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	if got, want := a.Families(), []uri.Family{uri.Identifier, uri.Email}; !reflect.DeepEqual(got, want) {
		t.Errorf("Families() = %v, want %v", got, want)
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"unknown format", "[output]\nformat = \"xml\"\n"},
		{"unknown family", "[analyzer]\nfamilies = [\"telepathy\"]\n"},
		{"zero input limit", "[analyzer]\nmax-input-bytes = 0\n"},
		{"negative verbosity", "[log]\nverbosity = -1\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.body))
			if errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadDecodeErrors(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}
	_, err := Load(writeConfig(t, "[output\n"))
	if err == nil || errors.Cause(err) == ErrInvalidConfig {
		t.Errorf("malformed file: err = %v", err)
	}
}

func TestSchemesFileOption(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	schemes := filepath.Join(dir, "schemes.txt")
	if err := os.WriteFile(schemes, []byte("condo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(writeConfig(t, "[analyzer]\nschemes-file = \""+filepath.ToSlash(schemes)+"\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	a, err := c.NewAnalyzer()
	if err != nil {
		t.Fatalf("NewAnalyzer: %v", err)
	}
	if a.Keywords().Find("CONDO") == nil {
		t.Error("keyword from schemes-file not loaded")
	}
}

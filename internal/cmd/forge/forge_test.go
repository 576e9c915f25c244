package forge

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunProducesSheet(t *testing.T) {
	cfg := Config{
		DatabasePath:  filepath.Join(t.TempDir(), "forge.db"),
		CharacterName: "Mara",
	}
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"Mara  (level 1, tier 0, 150 XP",
		"attributes:",
		"statistics:",
		"speeds:",
		"survival",
		"talent points remaining:",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}
}

func TestRunFlagOverrides(t *testing.T) {
	cfg := Config{
		DatabasePath:  "ignored.db",
		CharacterName: "Ignored",
	}
	dbPath := filepath.Join(t.TempDir(), "override.db")
	var out bytes.Buffer
	err := Run(context.Background(), cfg, []string{"-db", dbPath, "-name", "Orrin Scout"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Orrin Scout") {
		t.Fatalf("flag name not used:\n%s", out.String())
	}
}

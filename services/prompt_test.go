package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildEmbedsStatementVerbatim(t *testing.T) {
	tmpl, err := PromptProfile("general")
	if err != nil {
		t.Fatal(err)
	}

	statement := `Drinking bleach cures "everything" — even colds.`
	prompt := tmpl.Build(statement)

	if !strings.Contains(prompt, `"""`+statement+`"""`) {
		t.Fatalf("statement not embedded verbatim:\n%s", prompt)
	}
	for _, want := range []string{
		"conclusion, explanation, sources",
		"valid JSON only",
		"WHO, NIH, CDC, PubMed, Mayo Clinic",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestPromptProfilesDifferBySubject(t *testing.T) {
	general, _ := PromptProfile("general")
	pcos, err := PromptProfile("pcos")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pcos.Build("x"), "PCOS") {
		t.Fatal("pcos profile does not mention PCOS")
	}
	if strings.Contains(general.Build("x"), "PCOS") {
		t.Fatal("general profile should not mention PCOS")
	}
}

func TestPromptProfileUnknown(t *testing.T) {
	if _, err := PromptProfile("nope"); err == nil {
		t.Fatal("expected error for unknown profile")
	}
}

func TestLoadPromptProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.json")
	content := `{"profiles":[{"name":"cardio","subject":"heart disease, blood pressure, or cardiovascular claim"},{"name":"","subject":"ignored"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	n, err := LoadPromptProfiles(path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 loaded profile, got %d", n)
	}

	tmpl, err := PromptProfile("cardio")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(tmpl.Build("x"), "cardiovascular") {
		t.Fatal("loaded profile subject not used")
	}
}

func TestLoadPromptProfilesMissingFile(t *testing.T) {
	if _, err := LoadPromptProfiles(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

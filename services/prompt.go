package services

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// PromptTemplate renders the fact-checking instructions around a user
// statement. Subject narrows what kind of statements the checker covers,
// which is the only difference between the deployed variants.
type PromptTemplate struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

var promptProfiles = map[string]*PromptTemplate{
	"general": {
		Name:    "general",
		Subject: "disease, symptom, treatment, or health claim",
	},
	"pcos": {
		Name:    "pcos",
		Subject: "PCOS (polycystic ovary syndrome) symptom, treatment, or health claim",
	},
}

// PromptProfile returns a registered template by name.
func PromptProfile(name string) (*PromptTemplate, error) {
	tmpl, ok := promptProfiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown prompt profile %q", name)
	}
	return tmpl, nil
}

// LoadPromptProfiles registers (or overrides) templates from a JSON file
// of the form {"profiles": [{"name": "...", "subject": "..."}]}.
func LoadPromptProfiles(path string) (int, error) {
	log.Printf("[PROMPT] Loading prompt profiles from: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read profiles file: %w", err)
	}

	var file struct {
		Profiles []PromptTemplate `json:"profiles"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse profiles file: %w", err)
	}

	count := 0
	for i := range file.Profiles {
		p := file.Profiles[i]
		if p.Name == "" || p.Subject == "" {
			continue
		}
		promptProfiles[p.Name] = &p
		count++
	}

	log.Printf("[PROMPT] ✓ Loaded %d profile(s)", count)
	return count, nil
}

// Build renders the full prompt for one user statement. The statement is
// embedded verbatim between the triple quotes; no escaping is applied.
func (t *PromptTemplate) Build(userText string) string {
	var b strings.Builder

	b.WriteString("You are a careful medical-information fact-checking assistant.\n\n")
	fmt.Fprintf(&b, "A user will provide a short statement about a **%s**.\n\n", t.Subject)

	b.WriteString("Your task:\n")
	b.WriteString("1) Judge whether the user's statement is **accurate**, **partially correct**, or **medical misinformation (rumor)**.\n")
	b.WriteString("2) Provide a short, clear explanation (1-3 sentences) to clarify the truth.\n")
	b.WriteString("3) Provide **authoritative reference links ONLY** from scientific papers or recognized medical organizations (e.g., WHO, NIH, CDC, PubMed, Mayo Clinic).\n")
	b.WriteString("4) Reply in **STRICT JSON format** with keys: conclusion, explanation, sources (list).\n\n")

	b.WriteString("User statement:\n")
	fmt.Fprintf(&b, "\"\"\"%s\"\"\"\n\n", userText)

	b.WriteString("Respond strictly in JSON like:\n")
	b.WriteString(`{
  "conclusion": "accurate",
  "explanation": "Short reason with clarification.",
  "sources": [
     {"title": "Relevant Scientific Source", "link": "https://www.ncbi.nlm.nih.gov/pmc/articles/"}
  ]
}`)
	b.WriteString("\n\nIMPORTANT:\n")
	b.WriteString("- Output must be valid JSON only (no markdown or extra text).\n")
	b.WriteString("- Keys and values must use double quotes.\n")
	b.WriteString("- Do NOT include comments or trailing commas.\n")
	b.WriteString("- Do NOT wrap the JSON in code blocks.\n")

	return b.String()
}

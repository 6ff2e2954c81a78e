package services

import (
	"rumor-checker/models"
)

// NormalizeResponse turns the invoker's JSON string into the final
// AnalysisResult. It re-extracts and re-parses the JSON itself, so a
// caller that bypassed the invoker's validation still gets a well-formed
// result. The raw input is carried along verbatim.
func NormalizeResponse(raw string) *models.AnalysisResult {
	parsed, ok := parseModelJSON(raw)
	if !ok {
		parsed = map[string]interface{}{
			"conclusion":  "unknown",
			"explanation": "The model returned an unparseable result.",
		}
	}

	result := &models.AnalysisResult{
		Conclusion:     stringField(parsed, "conclusion"),
		Explanation:    stringField(parsed, "explanation"),
		Sources:        sourceList(parsed["sources"]),
		RawModelOutput: raw,
	}

	// Sources must never be empty.
	if len(result.Sources) == 0 {
		result.Sources = []models.Source{models.PlaceholderSource()}
	}

	return result
}

func stringField(data map[string]interface{}, key string) string {
	if str, ok := data[key].(string); ok {
		return str
	}
	return ""
}

// sourceList converts the model's sources value into typed entries.
// Anything that is not a list of objects (null, "", a bare string) yields
// nil so the placeholder rule kicks in.
func sourceList(value interface{}) []models.Source {
	items, ok := value.([]interface{})
	if !ok {
		return nil
	}

	sources := make([]models.Source, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		src := models.Source{
			Title: stringField(entry, "title"),
			Link:  stringField(entry, "link"),
		}
		if src.Link == "" {
			// Some models label the field "url" instead.
			src.Link = stringField(entry, "url")
		}
		if src.Title == "" && src.Link == "" {
			continue
		}
		sources = append(sources, src)
	}

	if len(sources) == 0 {
		return nil
	}
	return sources
}

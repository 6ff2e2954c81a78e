package models

// AnalysisRequest is the body of POST /analyze.
type AnalysisRequest struct {
	Text string `json:"text"`
}

// Source is one reference link returned by the model.
type Source struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// AnalysisResult is the final structure returned to the caller.
// Sources is never empty: a placeholder entry is substituted when the
// model provides none. RawModelOutput carries the pre-normalization
// model text verbatim for auditability.
type AnalysisResult struct {
	Conclusion     string   `json:"conclusion"`
	Explanation    string   `json:"explanation"`
	Sources        []Source `json:"sources"`
	RawModelOutput string   `json:"raw_model_output"`
}

// LogEntry is one row of the request log.
type LogEntry struct {
	Timestamp string
	UserText  string
	Result    string
}

// TokenUsage mirrors the usage block of a chat-completion response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// PlaceholderSource is substituted whenever the model returns no usable
// sources list.
func PlaceholderSource() Source {
	return Source{
		Title: "Example Scientific Source",
		Link:  "https://www.ncbi.nlm.nih.gov/pmc/articles/",
	}
}

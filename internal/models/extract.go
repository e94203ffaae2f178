package models

// ExtractResponse is returned by the extraction and result endpoints.
type ExtractResponse struct {
	// Raw LaTeX snippet as returned by the model. Empty when the model returned nothing.
	Snippet string `json:"snippet" example:"\\[ E = mc^2 \\]"`
	// Snippet with math delimiters removed, ready for a math-mode renderer.
	Display string `json:"display,omitempty" example:"E = mc^2"`
	// Set when the display form cannot be rendered.
	PreviewError string   `json:"preview_error,omitempty" example:"could not render the LaTeX equation"`
	Warnings     []string `json:"warnings,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Error processing image: api_error: ..."`
}

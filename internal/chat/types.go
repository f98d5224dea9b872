package chat

// ChatRequest describes a single prompt submission. It is immutable
// once handed to Submit.
type ChatRequest struct {
	Model  string `json:"model"`
	Runner string `json:"runner"`
	Prompt string `json:"prompt"`
}

// Delta represents a single event from a streaming chat response.
type Delta struct {
	// Chunk is the text fragment. Empty chunks are never emitted.
	Chunk string
	// Done is true when the stream completed normally.
	Done bool
	// Err is non-nil if the stream failed. Always the last delta when set.
	Err error
}

// Status is the gateway's report on the local Ollama daemon.
type Status struct {
	Running bool     `json:"running"`
	Models  []string `json:"models"`
}

// fallbackResponse is the JSON body of a non-streaming reply.
type fallbackResponse struct {
	Response string `json:"response"`
}

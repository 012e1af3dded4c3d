package flow

import "time"

// Fixed node names for the flow's input document. These match the
// FlowInputNode/document pair configured on the Bedrock side.
const (
	inputNodeName  = "FlowInputNode"
	outputNodeName = "document"
)

// InputPayload is the JSON document sent as the flow input content.
type InputPayload struct {
	Query     string `json:"query"`
	Timestamp string `json:"timestamp"`
}

// NewInputPayload builds the payload shape shared by the HTTP facade
// and the scripted test path.
func NewInputPayload(query string) InputPayload {
	return InputPayload{
		Query:     query,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// OutputEvent is one normalized flow output event from the response stream.
type OutputEvent struct {
	NodeName string `json:"nodeName,omitempty"`
	NodeType string `json:"nodeType,omitempty"`
	Content  any    `json:"content"`
}

// Result is the uniform envelope returned by every invocation.
// Exactly one of Data (success) or Error (failure) is populated;
// Data is non-nil, possibly empty, on success.
type Result struct {
	Success   bool          `json:"success"`
	Data      []OutputEvent `json:"data,omitempty"`
	Error     string        `json:"error,omitempty"`
	Timestamp string        `json:"timestamp"`
}

// Failure builds a failure envelope with the current timestamp.
func Failure(msg string) Result {
	return Result{
		Success:   false,
		Error:     msg,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func success(events []OutputEvent) Result {
	return Result{
		Success:   true,
		Data:      events,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// Package wbtools defines the four World Bank document tools: search,
// get-details, explore-facets, and search-by-project. Each tool validates
// its input, issues one upstream request, normalizes the response, and
// renders the result.
package wbtools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool pairs an MCP tool descriptor with its execution logic.
type Tool struct {
	mcp.Tool
	Execute func(ctx context.Context, args map[string]any) (*Result, error)
}

// Result is the outcome of one tool execution.
type Result struct {
	Status  ResultStatus   `json:"status"`
	Content []ContentBlock `json:"content,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// ContentBlock is one piece of tool output.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// ResultStatus indicates the outcome of tool execution.
type ResultStatus string

const (
	ResultSuccess ResultStatus = "success"
	ResultError   ResultStatus = "error"
)

// TextResult wraps text in a successful result.
func TextResult(text string) *Result {
	return &Result{
		Status:  ResultSuccess,
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// ErrorResult wraps an explanatory message in an error result. Expected
// failures (bad input, not found, upstream trouble) surface this way so the
// calling agent gets guidance text rather than a bare status code.
func ErrorResult(message string) *Result {
	return &Result{
		Status:  ResultError,
		Content: []ContentBlock{{Type: "text", Text: message}},
		Error:   message,
	}
}

// Text returns the first text block, or the error message for error results.
func (r *Result) Text() string {
	for _, block := range r.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text
		}
	}
	return r.Error
}

// MCP converts the result into the MCP tools/call result shape.
func (r *Result) MCP() map[string]any {
	blocks := make([]map[string]any, 0, len(r.Content))
	for _, block := range r.Content {
		blocks = append(blocks, map[string]any{"type": block.Type, "text": block.Text})
	}
	out := map[string]any{"content": blocks}
	if r.Status == ResultError {
		out["isError"] = true
	}
	return out
}

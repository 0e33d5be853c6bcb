package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonwraymond/wbdocs/wbtools"
)

// Config configures a Registry.
type Config struct {
	ServerInfo ServerInfo
	Logger     zerolog.Logger
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Registry holds the fixed tool table and dispatches MCP requests to it.
// Tools are registered once at startup; calls share no mutable state, so no
// locking is needed at call time.
type Registry struct {
	config Config
	order  []string
	tools  map[string]*wbtools.Tool
}

// New creates an empty Registry with the given config.
func New(cfg Config) *Registry {
	return &Registry{
		config: cfg,
		tools:  make(map[string]*wbtools.Tool),
	}
}

// Register adds one tool. Registration order is the order tools/list
// reports.
func (r *Registry) Register(tool *wbtools.Tool) error {
	if tool.Name == "" {
		return fmt.Errorf("%w: tool has no name", ErrInvalidTool)
	}
	if tool.Execute == nil {
		return fmt.Errorf("%w: tool %s has no execute function", ErrInvalidTool, tool.Name)
	}
	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name)
	}
	r.order = append(r.order, tool.Name)
	r.tools[tool.Name] = tool
	return nil
}

// RegisterAll registers tools in the given order.
func (r *Registry) RegisterAll(tools []*wbtools.Tool) error {
	for _, tool := range tools {
		if err := r.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

// ListAll returns all registered tools in registration order.
func (r *Registry) ListAll() []*wbtools.Tool {
	tools := make([]*wbtools.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Execute runs a tool by name with the given arguments.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (*wbtools.Result, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	start := time.Now()
	result, err := tool.Execute(ctx, args)
	logEvent := r.config.Logger.Debug().
		Str("tool", name).
		Dur("took", time.Since(start))
	if err != nil {
		logEvent.Err(err).Msg("tool call failed")
		return nil, fmt.Errorf("%w: %s: %v", ErrExecutionFailed, name, err)
	}
	logEvent.Str("status", string(result.Status)).Msg("tool call")
	return result, nil
}

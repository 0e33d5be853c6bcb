package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonwraymond/wbdocs/config"
	"github.com/jonwraymond/wbdocs/registry"
	"github.com/jonwraymond/wbdocs/render"
	"github.com/jonwraymond/wbdocs/wbapi"
	"github.com/jonwraymond/wbdocs/wbtools"
)

func main() {
	root := &cobra.Command{
		Use:   "wbdocs",
		Short: "World Bank Documents & Reports MCP server",
	}
	root.AddCommand(serveCMD(), serveHTTPCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger writes human-readable logs to stderr. Stdout stays reserved for
// the stdio transport.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// buildRegistry wires the full pipeline: upstream client, renderer, the four
// tools, and the registry that fronts them.
func buildRegistry(cfg *config.Config, log zerolog.Logger) (*registry.Registry, error) {
	client := wbapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log)
	renderer := render.New(cfg.Render.CharacterLimit)
	toolset := wbtools.New(client, renderer)

	reg := registry.New(registry.Config{
		ServerInfo: registry.ServerInfo{
			Name:    cfg.Server.Name,
			Version: cfg.Server.Version,
		},
		Logger: log,
	})
	if err := reg.RegisterAll(toolset.Tools()); err != nil {
		return nil, err
	}
	return reg, nil
}

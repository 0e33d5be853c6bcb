// Package registry exposes the World Bank document tools over the MCP
// protocol: a fixed tool table, JSON-RPC request handling (initialize,
// tools/list, tools/call), and three transports (stdio, streamable HTTP,
// SSE).
//
// Example usage:
//
//	reg := registry.New(registry.Config{
//	    ServerInfo: registry.ServerInfo{
//	        Name:    "worldbank-docs",
//	        Version: "1.0.0",
//	    },
//	})
//	if err := reg.RegisterAll(toolset.Tools()); err != nil {
//	    log.Fatal(err)
//	}
//	registry.ServeStdio(ctx, reg, os.Stdin, os.Stdout)
package registry

// Package mcp exposes a typeguard engine as an MCP server, so agent
// infrastructure can run structural checks and single-value matches as
// tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/typeguard"
	"github.com/aretw0/typeguard/pkg/schema"
)

// Server wraps the typeguard engine and exposes it as an MCP server.
type Server struct {
	engine    *typeguard.Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(engine *typeguard.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("typeguard-mcp", typeguard.Version),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: check_structure
	s.mcpServer.AddTool(mcp.NewTool("check_structure",
		mcp.WithDescription("Validate a JSON value against a structural schema. Returns every violation with its path."),
		mcp.WithString("schema", mcp.Required(), mcp.Description("JSON object mapping field names to type expressions")),
		mcp.WithString("value", mcp.Required(), mcp.Description("JSON object to validate")),
		mcp.WithBoolean("strict", mcp.Description("Reject keys the schema does not declare")),
	), s.handleCheckStructure)

	// TOOL: match_type
	s.mcpServer.AddTool(mcp.NewTool("match_type",
		mcp.WithDescription("Test whether a JSON value satisfies a type expression such as \"string|number\"."),
		mcp.WithString("value", mcp.Required(), mcp.Description("JSON-encoded value to test")),
		mcp.WithString("types", mcp.Required(), mcp.Description("Type expression, \"|\"-delimited for unions")),
	), s.handleMatchType)

	// TOOL: list_types
	s.mcpServer.AddTool(mcp.NewTool("list_types",
		mcp.WithDescription("List every registered type name."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, _ := json.Marshal(s.engine.ListTypes())
		return mcp.NewToolResultText(string(names)), nil
	})
}

func (s *Server) handleCheckStructure(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	schemaDoc, err := decodeObjectArg(args, "schema")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	valueRaw, _ := args["value"].(string)
	var value any
	if err := json.Unmarshal([]byte(valueRaw), &value); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("value is not valid JSON: %v", err)), nil
	}

	var opts []schema.CheckOption
	if strict, _ := args["strict"].(bool); strict {
		opts = append(opts, schema.WithStrict())
	}

	result := s.engine.CheckStructure(schemaDoc, value, opts...)
	if result.Errors == nil {
		result.Errors = []string{}
	}

	body, _ := json.Marshal(result)
	return mcp.NewToolResultText(string(body)), nil
}

func (s *Server) handleMatchType(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	valueRaw, _ := args["value"].(string)
	var value any
	if err := json.Unmarshal([]byte(valueRaw), &value); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("value is not valid JSON: %v", err)), nil
	}

	types, _ := args["types"].(string)
	ok, err := s.engine.Is(value, types)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("match failed: %v", err)), nil
	}

	body, _ := json.Marshal(map[string]bool{"match": ok})
	return mcp.NewToolResultText(string(body)), nil
}

func decodeObjectArg(args map[string]any, key string) (map[string]any, error) {
	raw, _ := args[key].(string)
	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("%s is not a valid JSON object: %v", key, err)
	}
	return doc, nil
}

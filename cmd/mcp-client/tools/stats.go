package tools

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestStats generates some spell-checking activity and then fetches the
// usage statistics
func TestStats(ctx context.Context, c client.MCPClient) error {
	// Run a quick scan so the spell activity counters have something to show
	testFilePath := filepath.Join(os.TempDir(), "mcp_test_stats.js")
	err := os.WriteFile(testFilePath, []byte("// a speling mistake for the counters\n"), 0644)
	if err != nil {
		log.Printf("Failed to create test file: %v", err)
		return err
	}
	defer os.Remove(testFilePath)

	scanReq := mcp.CallToolRequest{}
	scanReq.Params.Name = "spellcheck"
	scanReq.Params.Arguments = map[string]interface{}{
		"path":               testFilePath,
		"use_relative_paths": false,
	}

	if _, err := c.CallTool(ctx, scanReq); err != nil {
		log.Printf("Failed to call spellcheck: %v", err)
	}

	log.Printf("Running stats test")

	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = "stats"
	callReq.Params.Arguments = map[string]interface{}{}

	result, err := c.CallTool(ctx, callReq)
	if err != nil {
		log.Printf("Failed to call stats: %v", err)
		return err
	}

	if len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(mcp.TextContent); ok {
			log.Printf("Stats result:\n%s", textContent.Text)
		}
	}

	return nil
}

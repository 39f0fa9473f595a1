package tools

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestIgnoreWord tests the ignoreword tool
func TestIgnoreWord(ctx context.Context, c client.MCPClient) error {
	// Create a temporary test file with two distinct misspellings
	tempDir := os.TempDir()
	testFilePath := filepath.Join(tempDir, "mcp_test_ignoreword.js")

	testContent := `// A speling mistake and a coment mistake
function run() {
	// The speling issue appears again here
	return true;
}
`

	err := os.WriteFile(testFilePath, []byte(testContent), 0644)
	if err != nil {
		log.Printf("Failed to create test file: %v", err)
		return err
	}

	defer func() {
		// Clean up the test file
		os.Remove(testFilePath)
		log.Println("Test file removed")
	}()

	log.Printf("Created test file at: %s", testFilePath)

	sessionID := "ignoreword-test-session"

	// Scan first so the session has diagnostics to ignore
	log.Printf("Running ignoreword test: Initial scan")
	if err := runSpellCheck(ctx, c, testFilePath, sessionID); err != nil {
		return err
	}

	// Ignore one word and rescan
	log.Printf("Running ignoreword test: Ignore a single word")
	if err := runIgnoreOperation(ctx, c, sessionID, map[string]interface{}{
		"operation": "ignore",
		"word":      "speling",
	}); err != nil {
		return err
	}
	if err := runSpellCheck(ctx, c, testFilePath, sessionID); err != nil {
		return err
	}

	// Ignore everything still reported and rescan
	log.Printf("Running ignoreword test: Ignore all reported words")
	if err := runIgnoreOperation(ctx, c, sessionID, map[string]interface{}{
		"operation": "ignore_all",
	}); err != nil {
		return err
	}
	if err := runSpellCheck(ctx, c, testFilePath, sessionID); err != nil {
		return err
	}

	// List the ignored words
	log.Printf("Running ignoreword test: List ignored words")
	return runIgnoreOperation(ctx, c, sessionID, map[string]interface{}{
		"operation": "list",
	})
}

// runSpellCheck scans one file in the given session and logs the result
func runSpellCheck(ctx context.Context, c client.MCPClient, path, sessionID string) error {
	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = "spellcheck"
	callReq.Params.Arguments = map[string]interface{}{
		"path":               path,
		"session_id":         sessionID,
		"use_relative_paths": false,
	}

	result, err := c.CallTool(ctx, callReq)
	if err != nil {
		log.Printf("Failed to call spellcheck: %v", err)
		return err
	}

	if len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(mcp.TextContent); ok {
			log.Printf("Spellcheck result:\n%s", textContent.Text)
		}
	}
	return nil
}

// runIgnoreOperation calls the ignoreword tool and logs the result
func runIgnoreOperation(ctx context.Context, c client.MCPClient, sessionID string, arguments map[string]interface{}) error {
	arguments["session_id"] = sessionID

	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = "ignoreword"
	callReq.Params.Arguments = arguments

	result, err := c.CallTool(ctx, callReq)
	if err != nil {
		log.Printf("Failed to call ignoreword: %v", err)
		return err
	}

	if len(result.Content) > 0 {
		if textContent, ok := result.Content[0].(mcp.TextContent); ok {
			log.Printf("Ignoreword result:\n%s", textContent.Text)
		}
	}
	return nil
}

// Package tools provides test functions for MCP tools
package tools

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

// TestSpellCheckTrickyComments tests the spellcheck tool against comment
// forms that could confuse the extractor
func TestSpellCheckTrickyComments(ctx context.Context, c client.MCPClient) error {
	// Create a temporary test directory
	tempDir := os.TempDir()
	testDir := filepath.Join(tempDir, "mcp_test_spellcheck_tricky")

	// Create the test directory
	err := os.MkdirAll(testDir, 0755)
	if err != nil {
		log.Printf("Failed to create test directory: %v", err)
		return err
	}

	defer func() {
		// Clean up the test directory
		os.RemoveAll(testDir)
		log.Println("Test directory removed")
	}()

	log.Printf("Created test directory at: %s", testDir)

	// Create test files with comment delimiters in awkward places
	testFiles := map[string]string{
		"nested_markers.js": `// Line coment with a /* block opener inside
function calculate(a, b) {
	/* Block coment with a // line marker inside */
	return a + b; // Trailing coment
}

/*
   Multi-line block coment with a speling
   mistake on its second line
*/
const result = calculate(5, 10);
`,
		"identifier_mentions.ts": `// The call fetchData(url, options) is mentioned in this coment
function fetchData(url: string, options: object) {
	// Words like url and options match identifiers and are skipped
	return fetch(url, options);
}
`,
		"unterminated.js": `// A normal coment before the problem
let counter = 1;
counter += 1; /* this block never closes, so nothing after it is checked
`,
	}

	// Write the test files
	for filename, content := range testFiles {
		filePath := filepath.Join(testDir, filename)
		err := os.WriteFile(filePath, []byte(content), 0644)
		if err != nil {
			log.Printf("Failed to create test file %s: %v", filename, err)
			return err
		}
		log.Printf("Created test file: %s", filePath)
	}

	// Define test cases
	testCases := []struct {
		name      string
		arguments map[string]interface{}
	}{
		{
			name: "Nested comment markers",
			arguments: map[string]interface{}{
				"path":               filepath.Join(testDir, "nested_markers.js"),
				"use_relative_paths": false,
			},
		},
		{
			name: "Identifiers mentioned in comments",
			arguments: map[string]interface{}{
				"path":               filepath.Join(testDir, "identifier_mentions.ts"),
				"use_relative_paths": false,
			},
		},
		{
			name: "Unterminated block comment",
			arguments: map[string]interface{}{
				"path":               filepath.Join(testDir, "unterminated.js"),
				"use_relative_paths": false,
			},
		},
	}

	// Run test cases
	for _, tc := range testCases {
		log.Printf("Running tricky comment test: %s", tc.name)

		callReq := mcp.CallToolRequest{}
		callReq.Params.Name = "spellcheck"
		callReq.Params.Arguments = tc.arguments

		result, err := c.CallTool(ctx, callReq)
		if err != nil {
			log.Printf("Failed to call spellcheck: %v", err)
			continue
		}

		if len(result.Content) > 0 {
			if textContent, ok := result.Content[0].(mcp.TextContent); ok {
				log.Printf("Spellcheck result:\n%s", textContent.Text)
			}
		}
	}

	return nil
}

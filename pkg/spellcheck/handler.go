// Package spellcheck implements spell checking of source code comments:
// comment extraction, identifier exclusion, misspelling detection with
// suggestions, session-scoped ignores, and whole-word auto-correction
package spellcheck

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Code-Monger/CommentSpell/pkg/document"
	"github.com/Code-Monger/CommentSpell/pkg/stats"
	"github.com/Code-Monger/CommentSpell/pkg/workspace"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Service wires the spell-checking tools to their dictionary and the
// session store
type Service struct {
	dict     Dictionary
	sessions *workspace.Store
}

// NewService creates the tool service
func NewService(dict Dictionary, sessions *workspace.Store) *Service {
	return &Service{
		dict:     dict,
		sessions: sessions,
	}
}

// scanRequest carries the arguments shared by the spellcheck and
// autocorrect tools
type scanRequest struct {
	fullPath         string
	recursive        bool
	useRelativePaths bool
	language         string
	session          workspace.Session
	rootDir          string
}

// parseScanRequest extracts and resolves the shared tool arguments
func (s *Service) parseScanRequest(arguments map[string]interface{}) (*scanRequest, error) {
	path, ok := arguments["path"].(string)
	if !ok {
		return nil, fmt.Errorf("path must be a string")
	}

	req := &scanRequest{
		recursive:        true,
		useRelativePaths: true,
	}
	if recursiveVal, ok := arguments["recursive"].(bool); ok {
		req.recursive = recursiveVal
	}
	if relativeVal, ok := arguments["use_relative_paths"].(bool); ok {
		req.useRelativePaths = relativeVal
	}

	req.language, _ = arguments["language"].(string)
	if req.language != "" {
		if _, found := GetLanguageByName(req.language); !found {
			return nil, fmt.Errorf("unsupported language: %s", req.language)
		}
	}

	sessionID, _ := arguments["session_id"].(string)
	req.session = s.sessions.Ensure(sessionID)
	req.rootDir = s.sessions.RootDir(req.session.ID)

	if filepath.IsAbs(path) {
		req.fullPath = path
	} else {
		req.fullPath = filepath.Join(req.rootDir, path)
	}

	return req, nil
}

// displayPath renders a file path for tool output, relative to the
// workspace root when requested
func (req *scanRequest) displayPath(path string) string {
	if !req.useRelativePaths {
		return path
	}

	relPath, err := filepath.Rel(req.rootDir, path)
	if err != nil {
		return path
	}

	return relPath
}

// target is one file selected for scanning together with its language
type target struct {
	path string
	lang Language
}

// collectTargets resolves a path to the files to scan. For directories
// the tree is walked, honoring the recursive flag, and files with
// unsupported extensions are skipped. A forced language narrows a
// directory scan to that language's extensions and overrides detection
// for a single file.
func collectTargets(fullPath string, recursive bool, language string) ([]target, error) {
	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("error accessing path: %v", err)
	}

	if !info.IsDir() {
		var lang Language
		var found bool
		if language != "" {
			lang, found = GetLanguageByName(language)
		} else {
			lang, found = GetLanguageByExtension(fullPath)
			if !found {
				return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(fullPath))
			}
		}
		if !found {
			return nil, fmt.Errorf("unsupported language: %s", language)
		}
		return []target{{path: fullPath, lang: lang}}, nil
	}

	var targets []target
	walkErr := filepath.Walk(fullPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path != fullPath && !recursive {
				return filepath.SkipDir
			}
			return nil
		}

		lang, found := GetLanguageByExtension(path)
		if !found {
			return nil
		}
		if language != "" && !strings.EqualFold(lang.Name, language) {
			return nil
		}

		targets = append(targets, target{path: path, lang: lang})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("error walking directory: %v", walkErr)
	}

	return targets, nil
}

// fileResult is the outcome of scanning one file
type fileResult struct {
	doc      *document.Document
	findings []Finding
	tokens   int
}

// scanFile checks one file and records its document and diagnostics in
// the session
func (s *Service) scanFile(t target, session workspace.Session) (fileResult, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		return fileResult{}, fmt.Errorf("error reading file: %v", err)
	}
	text := string(data)

	findings := ScanText(text, t.lang, s.dict, session.Ignore)

	doc := document.New(t.path, text)
	doc.Diagnostics = Diagnostics(findings)
	session.Documents.Put(doc)

	return fileResult{
		doc:      doc,
		findings: findings,
		tokens:   CountTokens(text, t.lang),
	}, nil
}

// handleSpellCheck is the handler function for the spellcheck tool
func (s *Service) handleSpellCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := s.parseScanRequest(request.Params.Arguments)
	if err != nil {
		return nil, err
	}

	targets, err := collectTargets(req.fullPath, req.recursive, req.language)
	if err != nil {
		return nil, err
	}

	var results []fileResult
	totalFindings := 0
	totalTokens := 0
	for _, t := range targets {
		result, err := s.scanFile(t, req.session)
		if err != nil {
			log.Printf("[SpellCheck] Error checking file %s: %v", t.path, err)
			continue
		}
		results = append(results, result)
		totalFindings += len(result.findings)
		totalTokens += result.tokens
	}

	stats.AddSpellActivity(totalTokens, totalFindings, 0, 0)

	if totalFindings == 0 {
		text := fmt.Sprintf("No spelling issues found in %d file(s).\nSession: %s\n", len(results), req.session.ID)
		return textResult(text), nil
	}

	filesWithIssues := 0
	for _, result := range results {
		if len(result.findings) > 0 {
			filesWithIssues++
		}
	}

	var summary strings.Builder
	summary.WriteString(fmt.Sprintf("Found %d spelling issue(s) in %d of %d file(s):\n\n", totalFindings, filesWithIssues, len(results)))

	for _, result := range results {
		if len(result.findings) == 0 {
			continue
		}

		summary.WriteString(fmt.Sprintf("File: %s\n", req.displayPath(result.doc.Path)))
		for _, finding := range result.findings {
			pos := result.doc.PositionFor(finding.Diagnostic.Start)
			summary.WriteString(fmt.Sprintf("  Line %d, Col %d: %s\n", pos.Line, pos.Column, finding.Diagnostic.Message))
			summary.WriteString(fmt.Sprintf("    %s\n", SuggestionText(finding.Record)))
		}
		summary.WriteString("\n")
	}

	summary.WriteString(fmt.Sprintf("Session: %s\n", req.session.ID))

	return textResult(summary.String()), nil
}

// handleAutoCorrect is the handler function for the autocorrect tool
func (s *Service) handleAutoCorrect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	req, err := s.parseScanRequest(arguments)
	if err != nil {
		return nil, err
	}

	preview, _ := arguments["preview"].(bool)

	targets, err := collectTargets(req.fullPath, req.recursive, req.language)
	if err != nil {
		return nil, err
	}

	var summary strings.Builder
	totalApplied := 0
	filesChanged := 0

	for _, t := range targets {
		data, err := os.ReadFile(t.path)
		if err != nil {
			log.Printf("[AutoCorrect] Error reading file %s: %v", t.path, err)
			continue
		}
		text := string(data)

		correction := CorrectText(text, t.lang, s.dict, req.session.Ignore)
		if len(correction.Replacements) == 0 && len(correction.Unfixable) == 0 {
			continue
		}

		summary.WriteString(fmt.Sprintf("File: %s\n", req.displayPath(t.path)))

		if len(correction.Replacements) > 0 {
			newText, err := document.ApplyReplacements(text, correction.Replacements)
			if err != nil {
				log.Printf("[AutoCorrect] Error applying corrections to %s: %v", t.path, err)
				summary.WriteString(fmt.Sprintf("  Error applying corrections: %v\n\n", err))
				continue
			}

			if preview {
				summary.WriteString(fmt.Sprintf("  Would fix %d occurrence(s) in %d comment(s):\n", correction.Applied, len(correction.Replacements)))
			} else {
				mode := os.FileMode(0644)
				if info, err := os.Stat(t.path); err == nil {
					mode = info.Mode()
				}
				if err := os.WriteFile(t.path, []byte(newText), mode); err != nil {
					log.Printf("[AutoCorrect] Error writing file %s: %v", t.path, err)
					summary.WriteString(fmt.Sprintf("  Error writing file: %v\n\n", err))
					continue
				}

				// Rescan the corrected text so the session's diagnostics
				// reflect what is now on disk
				findings := ScanText(newText, t.lang, s.dict, req.session.Ignore)
				doc := document.New(t.path, newText)
				doc.Diagnostics = Diagnostics(findings)
				req.session.Documents.Put(doc)

				summary.WriteString(fmt.Sprintf("  Fixed %d occurrence(s) in %d comment(s):\n", correction.Applied, len(correction.Replacements)))
			}

			for _, fix := range correction.Fixes {
				summary.WriteString(fmt.Sprintf("    %s -> %s (%d)\n", fix.Word, fix.Replacement, fix.Count))
			}

			totalApplied += correction.Applied
			filesChanged++
		}

		if len(correction.Unfixable) > 0 {
			summary.WriteString(fmt.Sprintf("  No suggestions for: %s\n", strings.Join(correction.Unfixable, ", ")))
		}
		summary.WriteString("\n")
	}

	if !preview {
		stats.AddSpellActivity(0, 0, totalApplied, 0)
	}

	var header string
	if preview {
		header = "Auto-Correct Preview\n\n"
	} else {
		header = "Auto-Correct Results\n\n"
	}

	if filesChanged == 0 && summary.Len() == 0 {
		text := header + fmt.Sprintf("No correctable spelling issues found in %d file(s).\nSession: %s\n", len(targets), req.session.ID)
		return textResult(text), nil
	}

	var tail string
	if preview {
		tail = fmt.Sprintf("Would correct %d occurrence(s) in %d file(s)\nSession: %s\n", totalApplied, filesChanged, req.session.ID)
	} else {
		tail = fmt.Sprintf("Corrected %d occurrence(s) in %d file(s)\nSession: %s\n", totalApplied, filesChanged, req.session.ID)
	}

	return textResult(header + summary.String() + tail), nil
}

// handleIgnoreWord is the handler function for the ignoreword tool
func (s *Service) handleIgnoreWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	operation, ok := arguments["operation"].(string)
	if !ok {
		return nil, fmt.Errorf("operation must be a string")
	}

	sessionID, _ := arguments["session_id"].(string)
	session := s.sessions.Ensure(sessionID)

	switch operation {
	case "ignore":
		word, ok := arguments["word"].(string)
		if !ok {
			return nil, fmt.Errorf("word must be a string")
		}

		cleaned := CleanWord(word)
		if cleaned == "" {
			return nil, fmt.Errorf("word %q contains no letters", word)
		}

		added := 0
		if session.Ignore.Ignore(cleaned) {
			added = 1
		}
		stats.AddSpellActivity(0, 0, 0, added)

		text := fmt.Sprintf("Ignoring %q for session %s\n\nNewly ignored: %d\nTotal ignored words: %d\n", cleaned, session.ID, added, session.Ignore.Len())
		return textResult(text), nil

	case "ignore_all":
		var words []string
		if wordsVal, ok := arguments["words"].([]interface{}); ok {
			for _, wordVal := range wordsVal {
				if wordStr, ok := wordVal.(string); ok {
					if cleaned := CleanWord(wordStr); cleaned != "" {
						words = append(words, cleaned)
					}
				}
			}
		} else {
			// Without an explicit list, ignore every currently reported
			// misspelling in the session's documents
			for _, path := range session.Documents.Paths() {
				doc, ok := session.Documents.Get(path)
				if !ok {
					continue
				}
				for _, diag := range doc.Diagnostics {
					words = append(words, diag.Code)
				}
			}
		}

		added := session.Ignore.IgnoreAll(words)
		stats.AddSpellActivity(0, 0, 0, added)

		text := fmt.Sprintf("Ignored %d new word(s) for session %s\nTotal ignored words: %d\n", added, session.ID, session.Ignore.Len())
		return textResult(text), nil

	case "list":
		words := session.Ignore.Words()
		if len(words) == 0 {
			return textResult(fmt.Sprintf("No words ignored for session %s\n", session.ID)), nil
		}

		var builder strings.Builder
		builder.WriteString(fmt.Sprintf("Ignored words for session %s (%d):\n", session.ID, len(words)))
		for _, word := range words {
			builder.WriteString(fmt.Sprintf("  - %s\n", word))
		}
		return textResult(builder.String()), nil

	default:
		return nil, fmt.Errorf("unsupported operation: %s", operation)
	}
}

// handleDiagnosticsResource serves the spelling diagnostics resource
func (s *Service) handleDiagnosticsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	// Format: spellcheck://diagnostics/session_id
	uri := request.Params.URI
	sessionID := ""
	if strings.HasPrefix(uri, "spellcheck://diagnostics/") {
		sessionID = strings.TrimPrefix(uri, "spellcheck://diagnostics/")
	}

	if sessionID == "" {
		sessions := s.sessions.List()

		var builder strings.Builder
		builder.WriteString(fmt.Sprintf("Spelling Diagnostics (%d session(s)):\n\n", len(sessions)))
		for _, session := range sessions {
			builder.WriteString(fmt.Sprintf("Session %s: %d document(s), %d diagnostic(s)\n", session.ID, session.Documents.Len(), session.Documents.DiagnosticCount()))
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     builder.String(),
			},
		}, nil
	}

	session, exists := s.sessions.Get(sessionID)
	if !exists {
		return nil, fmt.Errorf("session not found: %s", sessionID)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Spelling Diagnostics for session %s:\n\n", session.ID))

	total := 0
	for _, path := range session.Documents.Paths() {
		doc, ok := session.Documents.Get(path)
		if !ok || len(doc.Diagnostics) == 0 {
			continue
		}

		builder.WriteString(fmt.Sprintf("%s (%d):\n", doc.Path, len(doc.Diagnostics)))
		for _, diag := range doc.Diagnostics {
			pos := doc.PositionFor(diag.Start)
			builder.WriteString(fmt.Sprintf("  Line %d, Col %d [%s]: %s\n", pos.Line, pos.Column, diag.Severity, diag.Message))
			total++
		}
		builder.WriteString("\n")
	}

	if total == 0 {
		builder.WriteString("No diagnostics recorded.\n")
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     builder.String(),
		},
	}, nil
}

// textResult wraps plain text in a tool result
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: text,
			},
		},
	}
}

// RegisterSpellCheck registers the spell-checking tools and resources
// with the MCP server
func RegisterSpellCheck(mcpServer *server.MCPServer, dict Dictionary, sessions *workspace.Store) {
	service := NewService(dict, sessions)

	spellcheckTool := mcp.NewTool("spellcheck",
		mcp.WithDescription("Checks spelling in source code comments. Extracts line and block comments, skips identifier-like tokens, and reports unknown words with ranked suggestions and line/column positions. Plain text files are checked whole."),
		mcp.WithString("path",
			mcp.Description("The path of the file or directory to check (absolute or relative to the workspace root)"),
			mcp.Required(),
		),
		mcp.WithString("language",
			mcp.Description("The document kind to check: 'JavaScript', 'TypeScript' or 'Plain Text' (default: detect from file extension)"),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Whether to check files recursively in subdirectories (default: true)"),
		),
		mcp.WithBoolean("use_relative_paths",
			mcp.Description("Whether to use relative paths in the results (default: true)"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session whose workspace root and ignored words apply"),
		),
	)
	mcpServer.AddTool(spellcheckTool, stats.WrapHandler("spellcheck", service.handleSpellCheck))

	autocorrectTool := mcp.NewTool("autocorrect",
		mcp.WithDescription("Replaces misspelled words in comments with their best suggestion. Replacement is whole-word and case-sensitive, and each file is rewritten in one atomic batch. Words without suggestions are reported and left in place."),
		mcp.WithString("path",
			mcp.Description("The path of the file or directory to correct (absolute or relative to the workspace root)"),
			mcp.Required(),
		),
		mcp.WithString("language",
			mcp.Description("The document kind to correct (default: detect from file extension)"),
		),
		mcp.WithBoolean("recursive",
			mcp.Description("Whether to correct files recursively in subdirectories (default: true)"),
		),
		mcp.WithBoolean("preview",
			mcp.Description("Report what would change without writing any file (default: false)"),
		),
		mcp.WithBoolean("use_relative_paths",
			mcp.Description("Whether to use relative paths in the results (default: true)"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session whose workspace root and ignored words apply"),
		),
	)
	mcpServer.AddTool(autocorrectTool, stats.WrapHandler("autocorrect", service.handleAutoCorrect))

	ignoreTool := mcp.NewTool("ignoreword",
		mcp.WithDescription("Manages the words a session skips while spell checking. 'ignore' skips one word, 'ignore_all' skips a list of words or, without a list, every currently reported misspelling, and 'list' shows the ignored words. Ignores last for the lifetime of the session."),
		mcp.WithString("operation",
			mcp.Description("Operation to perform: 'ignore', 'ignore_all' or 'list'"),
			mcp.Required(),
		),
		mcp.WithString("word",
			mcp.Description("The word to ignore (for 'ignore' operation)"),
		),
		mcp.WithArray("words",
			mcp.Description("The words to ignore (for 'ignore_all' operation; defaults to all currently reported misspellings)"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session whose ignore list is modified"),
		),
	)
	mcpServer.AddTool(ignoreTool, stats.WrapHandler("ignoreword", service.handleIgnoreWord))

	mcpServer.AddResource(
		mcp.NewResource(
			"spellcheck://diagnostics",
			"Spelling Diagnostics",
			mcp.WithMIMEType("text/plain"),
		),
		service.handleDiagnosticsResource,
	)

	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"spellcheck://diagnostics/{session_id}",
			"Session Spelling Diagnostics",
			mcp.WithTemplateMIMEType("text/plain"),
			mcp.WithTemplateDescription("Spelling diagnostics recorded for a specific session"),
		),
		service.handleDiagnosticsResource,
	)

	log.Printf("[SpellCheck] Registered spellcheck, autocorrect and ignoreword tools")
}

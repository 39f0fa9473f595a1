// Package workspace manages client sessions: the workspace root each
// session operates on, its ignored words, and the documents it has checked
package workspace

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Code-Monger/CommentSpell/pkg/document"
	"github.com/Code-Monger/CommentSpell/pkg/stats"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultSessionID is used when a tool is called without a session ID, so
// single-client setups work without an explicit initialize
const DefaultSessionID = "default"

// Session holds the per-session state. Ignore and Documents are shared
// across copies of the struct and are safe for concurrent use.
type Session struct {
	ID         string    `json:"session_id"`
	RootDir    string    `json:"root_dir"`
	UserTask   string    `json:"user_task"`
	InitTime   time.Time `json:"init_time"`
	LastAccess time.Time `json:"last_access"`

	Ignore    *IgnoreSet      `json:"-"`
	Documents *document.Store `json:"-"`
}

// Store manages the sessions known to the server
type Store struct {
	mutex    sync.RWMutex
	sessions map[string]Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]Session),
	}
}

// Initialize creates a session or reconfigures an existing one. When the
// session ID is empty a new ID is generated. Reinitializing keeps the
// session's ignore set and tracked documents.
func (s *Store) Initialize(sessionID, rootDir, userTask string) Session {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := time.Now()
	session, exists := s.sessions[sessionID]
	if !exists {
		session = Session{
			ID:        sessionID,
			InitTime:  now,
			Ignore:    NewIgnoreSet(),
			Documents: document.NewStore(),
		}
	}
	session.RootDir = rootDir
	session.UserTask = userTask
	session.LastAccess = now
	s.sessions[sessionID] = session

	return session
}

// Get returns the session for an ID and updates its last access time
func (s *Store) Get(sessionID string) (Session, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, exists := s.sessions[sessionID]
	if exists {
		session.LastAccess = time.Now()
		s.sessions[sessionID] = session
	}

	return session, exists
}

// Ensure returns the session for an ID, creating a bare one if it does not
// exist yet. An empty ID maps to DefaultSessionID.
func (s *Store) Ensure(sessionID string) Session {
	if sessionID == "" {
		sessionID = DefaultSessionID
	}

	if session, exists := s.Get(sessionID); exists {
		return session
	}

	return s.Initialize(sessionID, ".", "")
}

// List returns all sessions sorted by ID
func (s *Store) List() []Session {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	sessions := make([]Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ID < sessions[j].ID
	})

	return sessions
}

// Len returns the number of sessions
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.sessions)
}

// RootDir returns the workspace root directory for a session, defaulting
// to the current directory for unknown sessions
func (s *Store) RootDir(sessionID string) string {
	session, exists := s.Get(sessionID)
	if !exists || session.RootDir == "" {
		return "."
	}

	return session.RootDir
}

// ResolveRelativePath resolves a path against the session's workspace root
func (s *Store) ResolveRelativePath(path, sessionID string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(s.RootDir(sessionID), path)
}

// formatSession renders one session for tool and resource output
func formatSession(session Session) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Session ID: %s\n", session.ID))
	builder.WriteString(fmt.Sprintf("Root directory: %s\n", session.RootDir))
	builder.WriteString(fmt.Sprintf("User task: %s\n", session.UserTask))
	builder.WriteString(fmt.Sprintf("Initialized: %s\n", session.InitTime.Format(time.RFC3339)))
	builder.WriteString(fmt.Sprintf("Last accessed: %s\n", session.LastAccess.Format(time.RFC3339)))
	builder.WriteString(fmt.Sprintf("Ignored words: %d\n", session.Ignore.Len()))
	builder.WriteString(fmt.Sprintf("Documents tracked: %d (%d diagnostics)\n", session.Documents.Len(), session.Documents.DiagnosticCount()))

	return builder.String()
}

// handleWorkspace is the handler function for the workspace tool
func (s *Store) handleWorkspace(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	arguments := request.Params.Arguments

	operation, ok := arguments["operation"].(string)
	if !ok {
		return nil, fmt.Errorf("operation must be a string")
	}

	switch operation {
	case "initialize":
		rootDir, ok := arguments["root_dir"].(string)
		if !ok {
			return nil, fmt.Errorf("root_dir must be a string")
		}

		userTask, _ := arguments["user_task"].(string)
		sessionID, _ := arguments["session_id"].(string)

		session := s.Initialize(sessionID, rootDir, userTask)

		resultText := "Workspace initialized successfully\n\n"
		resultText += formatSession(session)

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: resultText,
				},
			},
		}, nil

	case "get":
		sessionID, ok := arguments["session_id"].(string)
		if !ok {
			return nil, fmt.Errorf("session_id must be a string")
		}

		session, exists := s.Get(sessionID)
		if !exists {
			return nil, fmt.Errorf("session not found: %s", sessionID)
		}

		resultText := "Workspace Information\n\n"
		resultText += formatSession(session)

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: resultText,
				},
			},
		}, nil

	case "list":
		sessions := s.List()

		resultText := fmt.Sprintf("Active Sessions (%d)\n\n", len(sessions))
		for i, session := range sessions {
			resultText += fmt.Sprintf("%d. %s\n", i+1, formatSession(session))
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.TextContent{
					Type: "text",
					Text: resultText,
				},
			},
		}, nil

	default:
		return nil, fmt.Errorf("unsupported operation: %s", operation)
	}
}

// handleWorkspaceResource is the handler function for the workspace resource
func (s *Store) handleWorkspaceResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	// Format: workspace://info/session_id
	uri := request.Params.URI
	sessionID := ""
	if strings.HasPrefix(uri, "workspace://info/") {
		sessionID = strings.TrimPrefix(uri, "workspace://info/")
	}

	if sessionID == "" {
		sessions := s.List()

		infoStr := fmt.Sprintf("Active Sessions (%d):\n\n", len(sessions))
		for i, session := range sessions {
			infoStr += fmt.Sprintf("%d. %s\n", i+1, formatSession(session))
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/plain",
				Text:     infoStr,
			},
		}, nil
	}

	session, exists := s.Get(sessionID)
	if !exists {
		return nil, fmt.Errorf("session not found: %s", sessionID)
	}

	infoStr := "Workspace Information:\n\n"
	infoStr += formatSession(session)

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     infoStr,
		},
	}, nil
}

// RegisterWorkspace registers the workspace tool and resources with the
// MCP server
func RegisterWorkspace(mcpServer *server.MCPServer, store *Store) {
	workspaceTool := mcp.NewTool("workspace",
		mcp.WithDescription("Initializes and manages the workspace for the model"),
		mcp.WithString("operation",
			mcp.Description("Operation to perform: 'initialize' to set up the workspace, 'get' to retrieve workspace information, 'list' to list all sessions"),
			mcp.Required(),
		),
		mcp.WithString("root_dir",
			mcp.Description("Root directory of the source code (for 'initialize' operation)"),
		),
		mcp.WithString("user_task",
			mcp.Description("Task the user has set for the model (for 'initialize' operation)"),
		),
		mcp.WithString("session_id",
			mcp.Description("Session ID (required for 'get' operation, optional for 'initialize' operation)"),
		),
	)

	mcpServer.AddTool(workspaceTool, stats.WrapHandler("workspace", store.handleWorkspace))

	mcpServer.AddResource(
		mcp.NewResource(
			"workspace://info",
			"Workspace Information",
			mcp.WithMIMEType("text/plain"),
		),
		store.handleWorkspaceResource,
	)

	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"workspace://info/{session_id}",
			"Workspace Session Information",
			mcp.WithTemplateMIMEType("text/plain"),
			mcp.WithTemplateDescription("Information about a specific workspace session"),
		),
		store.handleWorkspaceResource,
	)

	log.Printf("[Workspace] Registered workspace tool and resource")
}

package serverinfo

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/Code-Monger/CommentSpell/pkg/dictionary"
	"github.com/Code-Monger/CommentSpell/pkg/spellcheck"
	"github.com/Code-Monger/CommentSpell/pkg/workspace"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Service serves runtime and spell-checker information
type Service struct {
	dict     *dictionary.Dictionary
	sessions *workspace.Store
}

// HandleServerInfo is the handler function for the server info resource
func (s *Service) HandleServerInfo(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	info := map[string]interface{}{
		"timestamp":      time.Now().Format(time.RFC3339),
		"go_version":     runtime.Version(),
		"os":             runtime.GOOS,
		"architecture":   runtime.GOARCH,
		"cpu_cores":      runtime.NumCPU(),
		"goroutines":     runtime.NumGoroutine(),
		"memory_stats":   getMemoryStats(),
		"uptime_seconds": getUptime(),
	}

	infoStr := fmt.Sprintf("Server Information:\n\n")
	for k, v := range info {
		infoStr += fmt.Sprintf("%s: %v\n", k, v)
	}

	infoStr += fmt.Sprintf("\nDictionary:\n")
	infoStr += fmt.Sprintf("locale: %s\n", s.dict.Locale())
	infoStr += fmt.Sprintf("words: %d\n", s.dict.WordCount())
	infoStr += fmt.Sprintf("source: %s\n", s.dict.Source())

	infoStr += fmt.Sprintf("\nActive sessions: %d\n", s.sessions.Len())

	infoStr += fmt.Sprintf("\nSupported document kinds:\n")
	for _, lang := range spellcheck.GetSupportedLanguages() {
		infoStr += fmt.Sprintf("%s: %s\n", lang.Name, strings.Join(lang.FileExtensions, ", "))
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     infoStr,
		},
	}, nil
}

// RegisterServerInfo registers the server info resource with the MCP server
func RegisterServerInfo(mcpServer *server.MCPServer, dict *dictionary.Dictionary, sessions *workspace.Store) {
	service := &Service{
		dict:     dict,
		sessions: sessions,
	}

	mcpServer.AddResource(
		mcp.NewResource(
			"server://info",
			"Server Information",
			mcp.WithMIMEType("text/plain"),
		),
		service.HandleServerInfo,
	)
}

// getMemoryStats returns memory statistics
func getMemoryStats() map[string]interface{} {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return map[string]interface{}{
		"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
		"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
		"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
		"num_gc":         memStats.NumGC,
	}
}

// startTime is used to calculate uptime
var startTime = time.Now()

// getUptime returns the server uptime in seconds
func getUptime() float64 {
	return time.Since(startTime).Seconds()
}

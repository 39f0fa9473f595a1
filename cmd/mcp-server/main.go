package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/Code-Monger/CommentSpell/pkg/dictionary"
	"github.com/Code-Monger/CommentSpell/pkg/serverinfo"
	"github.com/Code-Monger/CommentSpell/pkg/spellcheck"
	"github.com/Code-Monger/CommentSpell/pkg/stats"
	"github.com/Code-Monger/CommentSpell/pkg/workspace"
	"github.com/mark3labs/mcp-go/server"
)

var (
	port         = flag.Int("port", 8080, "Port to listen on")
	baseURL      = flag.String("baseurl", "", "Base URL for the server (e.g., http://localhost:8080)")
	serverName   = flag.String("name", "CommentSpell MCP Server", "Server name")
	serverVer    = flag.String("version", "1.0.0", "Server version")
	timeoutSecs  = flag.Int("timeout", 30, "Shutdown timeout in seconds")
	instructions = flag.String("instructions", "This server checks the spelling of source code comments and can auto-correct them.", "Server instructions")
	dataDir      = flag.String("data-dir", filepath.Join(".", "data"), "Directory to store data files")
	dictDir      = flag.String("dict-dir", "", "Directory with hunspell-style dictionary files (default: embedded word list)")
	locale       = flag.String("locale", "en_US", "Dictionary locale to load from the dictionary directory")
)

func main() {
	flag.Parse()

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Load the dictionary before serving any requests
	dict, err := dictionary.Load(dictionary.Config{
		DictDir: *dictDir,
		Locale:  *locale,
	})
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}

	// Create the MCP server
	mcpServer := server.NewMCPServer(
		*serverName,
		*serverVer,
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithInstructions(*instructions),
	)

	// Initialize stats service
	if err := stats.InitStatsManager(*dataDir); err != nil {
		log.Fatalf("Failed to initialize stats manager: %v", err)
	}

	// Register tools and resources
	sessions := workspace.NewStore()
	workspace.RegisterWorkspace(mcpServer, sessions)
	spellcheck.RegisterSpellCheck(mcpServer, dict, sessions)
	serverinfo.RegisterServerInfo(mcpServer, dict, sessions)

	// Register stats tool
	if err := stats.RegisterStats(mcpServer, *dataDir); err != nil {
		log.Fatalf("Failed to register stats tool: %v", err)
	}

	// Create the SSE server
	baseURLValue := *baseURL
	if baseURLValue == "" {
		baseURLValue = fmt.Sprintf("http://localhost:%d", *port)
	}

	// Create SSE server
	sseServer := server.NewSSEServer(
		mcpServer,
		server.WithBaseURL(baseURLValue),
		server.WithSSEEndpoint("/"),
		server.WithMessageEndpoint("/messages"),
	)

	// Set up HTTP server
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: sseServer,
	}

	// Set up signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		log.Printf("[Server] Starting MCP server on port %d...", *port)
		log.Printf("[Server] Base URL: %s", baseURLValue)
		log.Printf("[Server] Dictionary: %s (%d words)", dict.Source(), dict.WordCount())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Server] Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	<-stop

	// Create a deadline for shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(*timeoutSecs)*time.Second)
	defer shutdownCancel()

	// Shutdown the server
	log.Println("[Server] Shutting down server...")

	// Print final stats before shutdown
	if statsManager := stats.GetStatsManager(); statsManager != nil {
		sessionStats := statsManager.GetSessionStats()
		persistentStats := statsManager.GetPersistentStats()
		statsText := stats.FormatStats(sessionStats, persistentStats)
		log.Printf("[Server] Final server statistics:\n%s", statsText)
	}

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("[Server] Server shutdown failed: %v", err)
	}
	log.Println("[Server] Server stopped")
}

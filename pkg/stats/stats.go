// Package stats records tool usage and spell-checking activity, both for
// the current session and persisted across server runs
package stats

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// ToolStats represents call statistics for a single tool
type ToolStats struct {
	Name                 string        `json:"name"`
	CallCount            int           `json:"call_count"`
	TotalExecutionTime   time.Duration `json:"total_execution_time"`
	AverageExecutionTime time.Duration `json:"average_execution_time"`
	LastUsed             time.Time     `json:"last_used"`
}

// SpellTotals aggregates the spell-checking work performed
type SpellTotals struct {
	WordsChecked       int `json:"words_checked"`
	MisspellingsFound  int `json:"misspellings_found"`
	CorrectionsApplied int `json:"corrections_applied"`
	WordsIgnored       int `json:"words_ignored"`
}

// add accumulates another set of totals into this one
func (t *SpellTotals) add(delta SpellTotals) {
	t.WordsChecked += delta.WordsChecked
	t.MisspellingsFound += delta.MisspellingsFound
	t.CorrectionsApplied += delta.CorrectionsApplied
	t.WordsIgnored += delta.WordsIgnored
}

// SessionStats represents statistics for the current session
type SessionStats struct {
	StartTime time.Time             `json:"start_time"`
	Tools     map[string]*ToolStats `json:"tools"`
	Spell     SpellTotals           `json:"spell"`
}

// PersistentStats represents statistics persisted across all sessions
type PersistentStats struct {
	FirstRecorded time.Time             `json:"first_recorded"`
	LastUpdated   time.Time             `json:"last_updated"`
	Tools         map[string]*ToolStats `json:"tools"`
	Spell         SpellTotals           `json:"spell"`
}

// StatsManager manages tool usage statistics
type StatsManager struct {
	sessionStats    *SessionStats
	persistentStats *PersistentStats
	statsFilePath   string
	mutex           sync.RWMutex
}

// NewStatsManager creates a new StatsManager, loading any previously
// persisted statistics from the stats file
func NewStatsManager(statsFilePath string) (*StatsManager, error) {
	manager := &StatsManager{
		sessionStats: &SessionStats{
			StartTime: time.Now(),
			Tools:     make(map[string]*ToolStats),
		},
		persistentStats: &PersistentStats{
			FirstRecorded: time.Now(),
			LastUpdated:   time.Now(),
			Tools:         make(map[string]*ToolStats),
		},
		statsFilePath: statsFilePath,
	}

	dir := filepath.Dir(statsFilePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for stats file: %v", err)
	}

	if _, err := os.Stat(statsFilePath); err == nil {
		data, err := ioutil.ReadFile(statsFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read stats file: %v", err)
		}

		if err := json.Unmarshal(data, &manager.persistentStats); err != nil {
			return nil, fmt.Errorf("failed to parse stats file: %v", err)
		}
	}

	return manager, nil
}

// RecordToolUsage records one call of a tool
func (m *StatsManager) RecordToolUsage(toolName string, executionTime time.Duration) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	sessionTool, ok := m.sessionStats.Tools[toolName]
	if !ok {
		sessionTool = &ToolStats{Name: toolName}
		m.sessionStats.Tools[toolName] = sessionTool
	}

	sessionTool.CallCount++
	sessionTool.TotalExecutionTime += executionTime
	sessionTool.AverageExecutionTime = sessionTool.TotalExecutionTime / time.Duration(sessionTool.CallCount)
	sessionTool.LastUsed = time.Now()

	persistentTool, ok := m.persistentStats.Tools[toolName]
	if !ok {
		persistentTool = &ToolStats{Name: toolName}
		m.persistentStats.Tools[toolName] = persistentTool
	}

	persistentTool.CallCount++
	persistentTool.TotalExecutionTime += executionTime
	persistentTool.AverageExecutionTime = persistentTool.TotalExecutionTime / time.Duration(persistentTool.CallCount)
	persistentTool.LastUsed = time.Now()
	m.persistentStats.LastUpdated = time.Now()

	return m.savePersistentStats()
}

// RecordSpellActivity accumulates spell-checking totals
func (m *StatsManager) RecordSpellActivity(delta SpellTotals) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sessionStats.Spell.add(delta)
	m.persistentStats.Spell.add(delta)
	m.persistentStats.LastUpdated = time.Now()

	return m.savePersistentStats()
}

// GetSessionStats returns statistics for the current session
func (m *StatsManager) GetSessionStats() *SessionStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	// Deep copy to avoid race conditions
	stats := &SessionStats{
		StartTime: m.sessionStats.StartTime,
		Tools:     make(map[string]*ToolStats),
		Spell:     m.sessionStats.Spell,
	}

	for name, tool := range m.sessionStats.Tools {
		toolCopy := *tool
		stats.Tools[name] = &toolCopy
	}

	return stats
}

// GetPersistentStats returns statistics persisted across all sessions
func (m *StatsManager) GetPersistentStats() *PersistentStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	// Deep copy to avoid race conditions
	stats := &PersistentStats{
		FirstRecorded: m.persistentStats.FirstRecorded,
		LastUpdated:   m.persistentStats.LastUpdated,
		Tools:         make(map[string]*ToolStats),
		Spell:         m.persistentStats.Spell,
	}

	for name, tool := range m.persistentStats.Tools {
		toolCopy := *tool
		stats.Tools[name] = &toolCopy
	}

	return stats
}

// savePersistentStats saves persistent stats to file
func (m *StatsManager) savePersistentStats() error {
	data, err := json.MarshalIndent(m.persistentStats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}

	if err := ioutil.WriteFile(m.statsFilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %v", err)
	}

	return nil
}

// formatToolTable renders tool statistics sorted by name
func formatToolTable(tools map[string]*ToolStats) string {
	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)

	result := "Tool                  | Calls | Avg Time  | Total Time\n"
	result += "----------------------|-------|-----------|-----------\n"
	for _, name := range names {
		tool := tools[name]
		result += fmt.Sprintf("%-22s| %5d | %9s | %10s\n",
			tool.Name,
			tool.CallCount,
			tool.AverageExecutionTime.Round(time.Millisecond).String(),
			tool.TotalExecutionTime.Round(time.Millisecond).String())
	}

	return result
}

// formatSpellTotals renders the spell-checking counters
func formatSpellTotals(totals SpellTotals) string {
	result := fmt.Sprintf("Words checked: %d\n", totals.WordsChecked)
	result += fmt.Sprintf("Misspellings found: %d\n", totals.MisspellingsFound)
	result += fmt.Sprintf("Corrections applied: %d\n", totals.CorrectionsApplied)
	result += fmt.Sprintf("Words ignored: %d\n", totals.WordsIgnored)

	return result
}

// FormatStats formats statistics as a string
func FormatStats(sessionStats *SessionStats, persistentStats *PersistentStats) string {
	result := "Tool Usage Statistics\n\n"

	result += "Current Session Statistics:\n"
	result += fmt.Sprintf("Session started: %s\n", sessionStats.StartTime.Format(time.RFC3339))
	result += fmt.Sprintf("Session duration: %s\n\n", time.Since(sessionStats.StartTime).Round(time.Second))

	if len(sessionStats.Tools) > 0 {
		result += formatToolTable(sessionStats.Tools)
	} else {
		result += "No tools used in this session.\n"
	}
	result += "\n"
	result += formatSpellTotals(sessionStats.Spell)

	result += "\nAll-Time Statistics:\n"
	result += fmt.Sprintf("First recorded: %s\n", persistentStats.FirstRecorded.Format(time.RFC3339))
	result += fmt.Sprintf("Last updated: %s\n\n", persistentStats.LastUpdated.Format(time.RFC3339))

	if len(persistentStats.Tools) > 0 {
		result += formatToolTable(persistentStats.Tools)
	} else {
		result += "No tools used across all sessions.\n"
	}
	result += "\n"
	result += formatSpellTotals(persistentStats.Spell)

	return result
}

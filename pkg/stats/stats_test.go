package stats

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestRecordToolUsage(t *testing.T) {
	statsFile := filepath.Join(t.TempDir(), "stats.json")

	manager, err := NewStatsManager(statsFile)
	if err != nil {
		t.Fatalf("NewStatsManager failed: %v", err)
	}

	if err := manager.RecordToolUsage("spellcheck", 100*time.Millisecond); err != nil {
		t.Fatalf("RecordToolUsage failed: %v", err)
	}
	if err := manager.RecordToolUsage("spellcheck", 300*time.Millisecond); err != nil {
		t.Fatalf("RecordToolUsage failed: %v", err)
	}

	session := manager.GetSessionStats()
	tool, ok := session.Tools["spellcheck"]
	if !ok {
		t.Fatal("spellcheck tool missing from session stats")
	}
	if tool.CallCount != 2 {
		t.Errorf("CallCount = %d, want 2", tool.CallCount)
	}
	if tool.TotalExecutionTime != 400*time.Millisecond {
		t.Errorf("TotalExecutionTime = %v, want 400ms", tool.TotalExecutionTime)
	}
	if tool.AverageExecutionTime != 200*time.Millisecond {
		t.Errorf("AverageExecutionTime = %v, want 200ms", tool.AverageExecutionTime)
	}
}

func TestRecordSpellActivity(t *testing.T) {
	statsFile := filepath.Join(t.TempDir(), "stats.json")

	manager, err := NewStatsManager(statsFile)
	if err != nil {
		t.Fatalf("NewStatsManager failed: %v", err)
	}

	if err := manager.RecordSpellActivity(SpellTotals{WordsChecked: 10, MisspellingsFound: 2}); err != nil {
		t.Fatalf("RecordSpellActivity failed: %v", err)
	}
	if err := manager.RecordSpellActivity(SpellTotals{WordsChecked: 5, CorrectionsApplied: 1, WordsIgnored: 1}); err != nil {
		t.Fatalf("RecordSpellActivity failed: %v", err)
	}

	spell := manager.GetSessionStats().Spell
	if spell.WordsChecked != 15 || spell.MisspellingsFound != 2 || spell.CorrectionsApplied != 1 || spell.WordsIgnored != 1 {
		t.Errorf("spell totals = %+v, want {15 2 1 1}", spell)
	}
}

func TestPersistentStatsSurviveReload(t *testing.T) {
	statsFile := filepath.Join(t.TempDir(), "stats.json")

	first, err := NewStatsManager(statsFile)
	if err != nil {
		t.Fatalf("NewStatsManager failed: %v", err)
	}
	if err := first.RecordToolUsage("autocorrect", 50*time.Millisecond); err != nil {
		t.Fatalf("RecordToolUsage failed: %v", err)
	}
	if err := first.RecordSpellActivity(SpellTotals{WordsChecked: 7}); err != nil {
		t.Fatalf("RecordSpellActivity failed: %v", err)
	}

	second, err := NewStatsManager(statsFile)
	if err != nil {
		t.Fatalf("reloading stats failed: %v", err)
	}

	persistent := second.GetPersistentStats()
	tool, ok := persistent.Tools["autocorrect"]
	if !ok || tool.CallCount != 1 {
		t.Errorf("persistent tool stats not reloaded: %+v", persistent.Tools)
	}
	if persistent.Spell.WordsChecked != 7 {
		t.Errorf("persistent spell totals not reloaded: %+v", persistent.Spell)
	}

	// The new session starts clean
	if len(second.GetSessionStats().Tools) != 0 {
		t.Error("session stats should start empty after reload")
	}
}

func TestFormatStats(t *testing.T) {
	statsFile := filepath.Join(t.TempDir(), "stats.json")

	manager, err := NewStatsManager(statsFile)
	if err != nil {
		t.Fatalf("NewStatsManager failed: %v", err)
	}
	if err := manager.RecordToolUsage("spellcheck", 10*time.Millisecond); err != nil {
		t.Fatalf("RecordToolUsage failed: %v", err)
	}

	text := FormatStats(manager.GetSessionStats(), manager.GetPersistentStats())
	for _, want := range []string{"Current Session Statistics:", "All-Time Statistics:", "spellcheck", "Words checked:"} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatStats output missing %q", want)
		}
	}
}

package catalog

import (
	"testing"
)

func TestCourseIntegrity(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range AllCourses() {
		if c.ID == "" || c.Title == "" {
			t.Fatalf("course with empty ID or title: %+v", c)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate course ID %q", c.ID)
		}
		seen[c.ID] = true

		if len(c.Topics) == 0 {
			t.Errorf("course %s has no topics", c.ID)
		}
		topicSeen := make(map[string]bool)
		for _, topic := range c.Topics {
			if topic == "" {
				t.Errorf("course %s has an empty topic", c.ID)
			}
			if topicSeen[topic] {
				t.Errorf("course %s has duplicate topic %q", c.ID, topic)
			}
			topicSeen[topic] = true
		}

		switch c.Difficulty {
		case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		default:
			t.Errorf("course %s has unknown difficulty %q", c.ID, c.Difficulty)
		}
	}
	if len(seen) != 15 {
		t.Fatalf("expected 15 course modules, got %d", len(seen))
	}
}

func TestToolIntegrity(t *testing.T) {
	valid := make(map[Category]bool)
	for _, c := range Categories() {
		valid[c] = true
	}

	seen := make(map[string]bool)
	for _, tool := range AllTools() {
		if tool.Name == "" || tool.Description == "" {
			t.Fatalf("tool with empty name or description: %+v", tool)
		}
		if seen[tool.Name] {
			t.Errorf("duplicate tool %q", tool.Name)
		}
		seen[tool.Name] = true
		if !valid[tool.Category] {
			t.Errorf("tool %s has unknown category %q", tool.Name, tool.Category)
		}
	}
}

func TestFindCourse(t *testing.T) {
	c, err := FindCourse("mod-linux-base")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "Module 4 : Linux - Les Bases" {
		t.Fatalf("unexpected title %q", c.Title)
	}
	if c.FirstTopic() != "Noyau, Distributions (Debian/RedHat) et FHS" {
		t.Fatalf("unexpected first topic %q", c.FirstTopic())
	}

	if _, err := FindCourse("mod-nonexistent"); err == nil {
		t.Fatal("expected error for unknown course")
	}
}

func TestHasTopic(t *testing.T) {
	c, err := FindCourse("mod-recon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.HasTopic("Google Dorking") {
		t.Fatal("expected Google Dorking to be a topic of mod-recon")
	}
	if c.HasTopic("Nmap Expert") {
		t.Fatal("Nmap Expert belongs to mod-scan, not mod-recon")
	}
}

func TestFindTool(t *testing.T) {
	tool, ok := FindTool("NMAP")
	if !ok {
		t.Fatal("expected to find nmap case-insensitively")
	}
	if tool.Category != CategoryInfoGathering {
		t.Fatalf("unexpected category %q", tool.Category)
	}

	if _, ok := FindTool("definitely-not-a-tool"); ok {
		t.Fatal("expected lookup miss")
	}
}

func TestSearchTools(t *testing.T) {
	hits := SearchTools("paquets")
	if len(hits) == 0 {
		t.Fatal("expected description matches for 'paquets'")
	}

	hits = SearchTools("hash")
	found := false
	for _, tool := range hits {
		if tool.Name == "hashcat" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected hashcat in 'hash' results")
	}

	if got := SearchTools(""); len(got) != len(AllTools()) {
		t.Fatalf("empty query should match everything, got %d", len(got))
	}
}

func TestToolsByCategory(t *testing.T) {
	system := ToolsByCategory(CategorySystem)
	if len(system) == 0 {
		t.Fatal("expected system tools")
	}
	for _, tool := range system {
		if tool.Category != CategorySystem {
			t.Fatalf("tool %s has category %q", tool.Name, tool.Category)
		}
	}
}

func TestCustomTool(t *testing.T) {
	tool := CustomTool("  masscan  ")
	if tool.Name != "masscan" {
		t.Fatalf("expected trimmed name, got %q", tool.Name)
	}
	if tool.Category != CategoryOther {
		t.Fatalf("expected %q, got %q", CategoryOther, tool.Category)
	}
}

func TestTotalTopics(t *testing.T) {
	total := TotalTopics()
	sum := 0
	for _, c := range AllCourses() {
		sum += len(c.Topics)
	}
	if total != sum {
		t.Fatalf("TotalTopics = %d, want %d", total, sum)
	}
	if total == 0 {
		t.Fatal("expected a non-empty program")
	}
}

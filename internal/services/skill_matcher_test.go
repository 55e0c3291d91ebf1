package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumeats/checker/internal/vocab"
)

func newTestMatcher(t *testing.T) SkillMatcher {
	t.Helper()
	return NewSkillMatcher(vocab.Default())
}

func TestSkillMatcher_ExactMatch(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.Match("experienced in python, docker and kubernetes")
	assert.Equal(t, []string{"docker", "kubernetes", "python"}, matches.HardSkills)
}

func TestSkillMatcher_WordBoundaries(t *testing.T) {
	m := newTestMatcher(t)

	tests := []struct {
		name     string
		text     string
		wantSkill string
		found    bool
	}{
		{"sql inside postgresql does not count as sql", "built on postgresql", "sql", false},
		{"postgresql itself matches", "built on postgresql", "postgresql", true},
		{"r does not match inside words", "restructured the department", "r", false},
		{"java does not bleed from javascript", "wrote javascript daily", "java", false},
		{"plural form matches", "maintained rest apis and microservices", "rest api", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := m.Match(tt.text).HardSkills
			assert.Equal(t, tt.found, contains(skills, tt.wantSkill))
		})
	}
}

func TestSkillMatcher_SynonymResolution(t *testing.T) {
	m := newTestMatcher(t)

	tests := []struct {
		surface   string
		canonical string
	}{
		{"golang", "go"},
		{"k8s", "kubernetes"},
		{"postgres", "postgresql"},
		{"reactjs", "react"},
		{"nodejs", "node.js"},
	}

	for _, tt := range tests {
		t.Run(tt.surface, func(t *testing.T) {
			skills := m.Match("expert in " + tt.surface).HardSkills
			assert.True(t, contains(skills, tt.canonical), "surface form %q should resolve to %q, got %v", tt.surface, tt.canonical, skills)
			assert.False(t, contains(skills, tt.surface), "surface form must not appear alongside its canonical name")
		})
	}
}

func TestSkillMatcher_NoDuplicates(t *testing.T) {
	m := newTestMatcher(t)

	// Both the canonical name and a synonym are present.
	skills := m.Match("go and golang services with postgres and postgresql").HardSkills

	seen := map[string]int{}
	for _, s := range skills {
		seen[s]++
	}
	for skill, count := range seen {
		assert.Equal(t, 1, count, "skill %q appears %d times", skill, count)
	}
}

func TestSkillMatcher_OrderIndependent(t *testing.T) {
	m := newTestMatcher(t)

	words := []string{"python", "leadership", "docker", "communication", "terraform"}
	forward := m.Match(strings.Join(words, " "))

	reversed := make([]string, len(words))
	for i, w := range words {
		reversed[len(words)-1-i] = w
	}
	backward := m.Match(strings.Join(reversed, " "))

	assert.Equal(t, forward.HardSkills, backward.HardSkills)
	assert.Equal(t, forward.SoftSkills, backward.SoftSkills)
}

func TestSkillMatcher_SeparatesCategories(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.Match("senior engineer with python and strong leadership")
	assert.Contains(t, matches.HardSkills, "python")
	assert.Contains(t, matches.SoftSkills, "leadership")
	assert.Contains(t, matches.Titles, "engineer")
	assert.NotContains(t, matches.HardSkills, "leadership")
}

func TestSkillMatcher_EmptyText(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.Match("")
	assert.Empty(t, matches.HardSkills)
	assert.Empty(t, matches.SoftSkills)
	assert.Empty(t, matches.Titles)
}

func TestIndexOfTerm(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want int
	}{
		{"standalone word", "we use go here", "go", 7},
		{"skips substring hits", "good ongoing work with go", "go", 23},
		{"absent", "good ongoing work", "go", -1},
		{"plural form", "built rest apis", "rest api", 6},
		{"empty term", "anything", "", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, indexOfTerm(tt.text, tt.term))
		})
	}
}

func TestCountTerm(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want int
	}{
		{"repeated word", "docker builds, docker runs", "docker", 2},
		{"substrings do not count", "good ongoing go work", "go", 1},
		{"absent", "nothing relevant", "docker", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countTerm(tt.text, tt.term))
		})
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

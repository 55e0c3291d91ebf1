package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"resumeats/checker/internal/models"
	"resumeats/checker/internal/vocab"
)

func newTestJobMatcher() JobMatcherService {
	v := vocab.Default()
	return NewJobMatcherService(v, NewAnalyzerService(v, zap.NewNop()), zap.NewNop())
}

const sampleJob = `Software Engineer

We are looking for a software engineer with docker and kubernetes
experience. You will build services in python deployed with docker
on aws. Requires 3+ years of experience and a bachelor degree.
Strong communication skills expected. Please include a cover letter.`

func TestCompare_SkillPartition(t *testing.T) {
	report := newTestJobMatcher().Compare(sampleResume, sampleJob)
	ka := report.KeywordAnalysis

	// matched and missing partition the job's skills.
	assert.ElementsMatch(t, ka.JobSkills, append(append([]string{}, ka.MatchedSkills...), ka.MissingSkills...))

	for _, s := range ka.MatchedSkills {
		assert.Contains(t, ka.ResumeSkills, s)
	}
	for _, s := range ka.MissingSkills {
		assert.NotContains(t, ka.ResumeSkills, s)
	}
	for _, s := range ka.ExtraSkills {
		assert.NotContains(t, ka.JobSkills, s)
	}
}

func TestCompare_IdenticalTexts(t *testing.T) {
	report := newTestJobMatcher().Compare(sampleResume, sampleResume)

	assert.Equal(t, 100.0, report.MatchScore)
	assert.Empty(t, report.KeywordAnalysis.MissingSkills)
	assert.Empty(t, report.KeywordAnalysis.ExtraSkills)
	assert.Empty(t, report.Cons)
	assert.NotEmpty(t, report.Pros)
}

func TestCompare_MissingSkillRecommended(t *testing.T) {
	resume := `John Smith
john@example.com

Work Experience
Software Engineer, Jan 2020 - Present
Built services in python and kubernetes on aws.`
	job := `We need docker expertise. The role uses docker daily,
alongside python, kubernetes, and aws in production.`

	report := newTestJobMatcher().Compare(resume, job)

	assert.Contains(t, report.KeywordAnalysis.MissingSkills, "docker")
	assert.Contains(t, report.KeywordAnalysis.MatchedSkills, "python")

	var dockerRec *models.Recommendation
	for i := range report.Recommendations {
		if report.Recommendations[i].Action == models.ActionAdd &&
			containsTerm(report.Recommendations[i].Text, "docker") {
			dockerRec = &report.Recommendations[i]
			break
		}
	}
	require.NotNil(t, dockerRec, "expected an add recommendation for docker")
	assert.Equal(t, models.PriorityHigh, dockerRec.Priority)
}

func TestCompare_FullSkillCoverageScoresPerfect(t *testing.T) {
	resume := `John Smith
john@example.com

Work Experience
Software Engineer, Jan 2020 - Present
Shipped billing services written in python, deployed with docker.`
	job := `Our platform team wants python and docker expertise to grow our
payments product.`

	report := newTestJobMatcher().Compare(resume, job)

	assert.Equal(t, 100.0, report.MatchScore)
	assert.Empty(t, report.KeywordAnalysis.MissingSkills)
	assert.Empty(t, report.Cons, "differing prose must not produce cons when every required skill matches")
}

func TestCompare_PartialCoverageAddsHighPriorityRec(t *testing.T) {
	resume := `John Smith
john@example.com
Experienced engineer, strong with python and sql in production systems.`
	job := `Candidates must have experience with python, sql, docker.`

	report := newTestJobMatcher().Compare(resume, job)

	assert.Equal(t, []string{"docker"}, report.KeywordAnalysis.MissingSkills)
	assert.Greater(t, report.MatchScore, 0.0)
	assert.Less(t, report.MatchScore, 100.0)

	var dockerRec *models.Recommendation
	for i := range report.Recommendations {
		if report.Recommendations[i].Action == models.ActionAdd &&
			containsTerm(report.Recommendations[i].Text, "docker") {
			dockerRec = &report.Recommendations[i]
			break
		}
	}
	require.NotNil(t, dockerRec, "expected an add recommendation for docker")
	assert.Equal(t, models.PriorityHigh, dockerRec.Priority)
}

func TestCompare_JobWithoutSkillsFallsBack(t *testing.T) {
	job := "A wonderful opportunity awaits the right candidate at our growing firm."
	matcher := newTestJobMatcher()

	report := matcher.Compare(sampleResume, job)
	ats := NewAnalyzerService(vocab.Default(), zap.NewNop()).Analyze(sampleResume)

	assert.Empty(t, report.KeywordAnalysis.JobSkills)
	assert.Equal(t, ats.OverallScore, report.MatchScore)
	require.NotEmpty(t, report.Pros)
	assert.Contains(t, report.Pros[0], "score reflects your resume's own ATS rating")
}

func TestCompare_RecommendationOrdering(t *testing.T) {
	resume := "John Smith\njohn@example.com\nA short resume mentioning python only."
	job := `Role requires docker, kubernetes, terraform, go, and sql.
Minimum 5 years. Cover letter required.`

	report := newTestJobMatcher().Compare(resume, job)
	require.NotEmpty(t, report.Recommendations)

	lastAction := -1
	lastPriority := -1
	for _, rec := range report.Recommendations {
		action := actionRank(rec.Action)
		if action != lastAction {
			assert.Greater(t, action, lastAction, "actions must appear in add, adjust, remove order")
			lastAction = action
			lastPriority = -1
		}
		priority := rec.Priority.Rank()
		assert.GreaterOrEqual(t, priority, lastPriority, "priorities must not rise within an action group")
		lastPriority = priority
	}
}

func TestCompare_CoverLetterRecommendation(t *testing.T) {
	report := newTestJobMatcher().Compare(sampleResume, sampleJob)

	found := false
	for _, rec := range report.Recommendations {
		if rec.Action == models.ActionAdjust && containsTerm(rec.Text, "cover letter") {
			found = true
			assert.Equal(t, models.PriorityMedium, rec.Priority)
		}
	}
	assert.True(t, found, "cover letter mention should produce an adjust recommendation")
}

func TestCompare_ExperienceAndEducationGaps(t *testing.T) {
	resume := `John Smith
john@example.com

Work Experience
Junior Developer, Jan 2024 - Present
Wrote python scripts.`
	job := `Requires 8+ years of experience with python and a master degree.`

	report := newTestJobMatcher().Compare(resume, job)

	joined := ""
	for _, c := range report.Cons {
		joined += c + "\n"
	}
	assert.Contains(t, joined, "Experience gap")
	assert.Contains(t, joined, "Education gap")
}

func TestExtractYearsRequirement(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"plus years of experience", "5+ years of experience with go", 5},
		{"minimum phrasing", "minimum 3 years in a similar role", 3},
		{"years with", "2 years with kubernetes", 2},
		{"no requirement", "we value passion over tenure", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractYearsRequirement(tt.text))
		})
	}
}

func TestOrderByProminence(t *testing.T) {
	job := "we want terraform first, then docker, then go"
	got := orderByProminence([]string{"docker", "go", "terraform", "zig"}, job)
	assert.Equal(t, []string{"terraform", "docker", "go", "zig"}, got)
}

func TestOrderByProminence_WordBoundaries(t *testing.T) {
	// "good" and "ongoing" must not count as early mentions of "go".
	job := "a good ongoing docker rollout that also needs go"
	got := orderByProminence([]string{"docker", "go"}, job)
	assert.Equal(t, []string{"docker", "go"}, got)
}

func TestMissingSkillPriority(t *testing.T) {
	filler := strings.Repeat("notes about the company mission and office culture here ", 10)

	tests := []struct {
		name    string
		skill   string
		jobText string
		want    models.Priority
	}{
		{
			name:    "short job description is always high",
			skill:   "docker",
			jobText: "candidates must have experience with python, sql, docker.",
			want:    models.PriorityHigh,
		},
		{
			name:    "early mention in a long description",
			skill:   "go",
			jobText: "go services are the core of this role. " + filler,
			want:    models.PriorityHigh,
		},
		{
			name:    "repeated late mentions in a long description",
			skill:   "docker",
			jobText: filler + " docker images, docker registries.",
			want:    models.PriorityHigh,
		},
		{
			name:    "single late mention in a long description",
			skill:   "docker",
			jobText: filler + " familiarity with docker is a plus.",
			want:    models.PriorityMedium,
		},
		{
			name:    "substring hits do not promote",
			skill:   "go",
			jobText: "good ongoing collaboration matters. " + filler + " some go exposure helps.",
			want:    models.PriorityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, missingSkillPriority(tt.skill, tt.jobText))
		})
	}
}

func TestSignificantKeywords_FiltersStopwords(t *testing.T) {
	j := &jobMatcherService{vocab: vocab.Default()}
	keywords := j.significantKeywords("with experience that from kubernetes deployments")

	assert.Contains(t, keywords, "kubernetes")
	assert.Contains(t, keywords, "deployments")
	assert.NotContains(t, keywords, "with")
	assert.NotContains(t, keywords, "that")
	assert.NotContains(t, keywords, "from")
}

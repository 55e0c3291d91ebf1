package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"resumeats/checker/internal/models"
	"resumeats/checker/internal/vocab"
)

var (
	wordPattern = regexp.MustCompile(`\b[a-z]{4,}\b`)

	yearsRequirementPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s+)?(?:experience|exp)`),
		regexp.MustCompile(`(?:minimum|at least|min)\s*(\d+)\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:in|of|with)`),
	}

	coverLetterPattern = regexp.MustCompile(`cover letter|letter of interest`)
)

// JobMatcherService compares a resume against a job description and produces
// a match score, pros and cons, and prioritized recommendations.
type JobMatcherService interface {
	Compare(resumeText, jobText string) *models.ComparisonReport
}

type jobMatcherService struct {
	vocab      *vocab.Vocabulary
	normalizer Normalizer
	matcher    SkillMatcher
	analyzer   AnalyzerService
	now        func() time.Time
	logger     *zap.Logger
}

func NewJobMatcherService(v *vocab.Vocabulary, analyzer AnalyzerService, logger *zap.Logger) JobMatcherService {
	return &jobMatcherService{
		vocab:      v,
		normalizer: NewNormalizer(),
		matcher:    NewSkillMatcher(v),
		analyzer:   analyzer,
		now:        time.Now,
		logger:     logger,
	}
}

func (j *jobMatcherService) Compare(resumeText, jobText string) *models.ComparisonReport {
	resume := j.normalizer.Normalize(resumeText)
	job := j.normalizer.Normalize(jobText)

	resumeSkills := toTermSet(j.matcher.Match(resume.NormalizedText).All())
	jobSkills := toTermSet(j.matcher.Match(job.NormalizedText).All())

	matched := intersect(jobSkills, resumeSkills)
	missing := subtract(jobSkills, resumeSkills)
	extra := subtract(resumeSkills, jobSkills)

	resumeKeywords := j.significantKeywords(resume.NormalizedText)
	jobKeywords := j.significantKeywords(job.NormalizedText)
	matchedKeywords := intersect(jobKeywords, resumeKeywords)
	missingKeywords := subtract(jobKeywords, resumeKeywords)

	score, scoreFallback := j.matchScore(resume, jobSkills, matched, jobKeywords, matchedKeywords)

	pros := j.buildPros(resume, job, matched, extra, matchedKeywords, scoreFallback)
	cons := j.buildCons(resume, job, missing, missingKeywords)
	recs := j.buildRecommendations(job.NormalizedText, missing, missingKeywords, extra, pros)

	report := &models.ComparisonReport{
		MatchScore:      score,
		Pros:            pros,
		Cons:            cons,
		Recommendations: recs,
		KeywordAnalysis: models.KeywordAnalysis{
			JobSkills:            sortedTerms(jobSkills),
			ResumeSkills:         sortedTerms(resumeSkills),
			MatchedSkills:        sortedTerms(matched),
			MissingSkills:        sortedTerms(missing),
			ExtraSkills:          sortedTerms(extra),
			JobKeywordsCount:     len(jobKeywords),
			MatchedKeywordsCount: len(matchedKeywords),
		},
	}

	j.logger.Info("resume compared against job description",
		zap.Float64("match_score", report.MatchScore),
		zap.Int("matched_skills", len(matched)),
		zap.Int("missing_skills", len(missing)),
	)
	return report
}

// matchScore blends required-skill coverage (60%) with keyword coverage
// (40%). Full required-skill coverage is a perfect match: the keyword blend
// only discounts partial coverage, never a resume that has everything the
// job asks for. When the job description yields no extractable skills at
// all, the resume's own ATS overall score stands in; the boolean reports
// that fallback so a pro can explain it.
func (j *jobMatcherService) matchScore(
	resume *models.ExtractedDocument,
	jobSkills, matched, jobKeywords, matchedKeywords map[string]bool,
) (float64, bool) {
	if len(jobSkills) == 0 {
		report := j.analyzer.Analyze(resume.RawText)
		return report.OverallScore, true
	}

	skillPct := float64(len(matched)) / float64(len(jobSkills)) * 100
	if skillPct >= 100 {
		return 100, false
	}
	keywordPct := 50.0
	if len(jobKeywords) > 0 {
		keywordPct = float64(len(matchedKeywords)) / float64(len(jobKeywords)) * 100
	}
	return clampScore(roundScore(skillPct*0.6 + keywordPct*0.4)), false
}

func (j *jobMatcherService) buildPros(
	resume, job *models.ExtractedDocument,
	matched, extra, matchedKeywords map[string]bool,
	scoreFallback bool,
) []string {
	var pros []string

	if scoreFallback {
		pros = append(pros, "No extractable requirements found in the job description; the score reflects your resume's own ATS rating.")
	}
	if len(matched) > 0 {
		pros = append(pros, fmt.Sprintf("Your resume matches %s: %s",
			countNoun(len(matched), "required skill"), joinFirst(sortedTerms(matched), 12)))
	}
	if len(matchedKeywords) > 0 {
		pros = append(pros, fmt.Sprintf("%s found in your resume", countNoun(len(matchedKeywords), "job keyword")))
	}

	jobYears := extractYearsRequirement(job.NormalizedText)
	resumeYears := estimateResumeYears(resume.RawText, j.now())
	if jobYears > 0 && resumeYears >= jobYears {
		pros = append(pros, fmt.Sprintf("Your experience (~%d years) meets the %d+ year requirement", resumeYears, jobYears))
	}

	jobDegree := highestDegreeLevel(job.NormalizedText, j.vocab.DegreeLevels)
	resumeDegree := highestDegreeLevel(resume.NormalizedText, j.vocab.DegreeLevels)
	if jobDegree > 0 && resumeDegree >= jobDegree {
		pros = append(pros, fmt.Sprintf("Your education level (%s) meets the requirement", vocab.DegreeName(resumeDegree)))
	}

	if len(extra) > 0 {
		pros = append(pros, fmt.Sprintf("Additional skills you bring: %s", joinFirst(sortedTerms(extra), 8)))
	}
	return pros
}

func (j *jobMatcherService) buildCons(
	resume, job *models.ExtractedDocument,
	missing, missingKeywords map[string]bool,
) []string {
	var cons []string

	if len(missing) > 0 {
		ordered := orderByProminence(sortedTerms(missing), job.NormalizedText)
		cons = append(cons, fmt.Sprintf("Missing %s: %s",
			countNoun(len(missing), "required skill"), joinFirst(ordered, 12)))

		// Missing key terms only count alongside missing required skills.
		if len(missingKeywords) > 0 {
			cons = append(cons, fmt.Sprintf("Missing key terms from job description: %s",
				joinFirst(sortedTerms(missingKeywords), 8)))
		}
	}

	jobYears := extractYearsRequirement(job.NormalizedText)
	resumeYears := estimateResumeYears(resume.RawText, j.now())
	if jobYears > 0 && resumeYears > 0 && resumeYears < jobYears {
		cons = append(cons, fmt.Sprintf("Experience gap: job requires %d+ years, your resume shows ~%d years", jobYears, resumeYears))
	}

	jobDegree := highestDegreeLevel(job.NormalizedText, j.vocab.DegreeLevels)
	resumeDegree := highestDegreeLevel(resume.NormalizedText, j.vocab.DegreeLevels)
	if jobDegree > 0 && resumeDegree < jobDegree {
		cons = append(cons, fmt.Sprintf("Education gap: job requires %s, your resume shows %s",
			vocab.DegreeName(jobDegree), vocab.DegreeName(resumeDegree)))
	}
	return cons
}

// buildRecommendations emits tagged, deterministic recommendations: every
// "add" before "adjust" before "remove", each bucket sorted high to low and
// ties kept in first-appearance order in the job text.
func (j *jobMatcherService) buildRecommendations(
	jobText string,
	missing, missingKeywords, extra map[string]bool,
	pros []string,
) []models.Recommendation {
	var recs []models.Recommendation

	for _, skill := range orderByProminence(sortedTerms(missing), jobText) {
		recs = append(recs, models.Recommendation{
			Text:     fmt.Sprintf("Add '%s' to your resume if you have that experience.", skill),
			Priority: missingSkillPriority(skill, jobText),
			Action:   models.ActionAdd,
		})
	}

	if len(missingKeywords) > 0 {
		recs = append(recs, models.Recommendation{
			Text:     fmt.Sprintf("Incorporate these keywords naturally into your resume: %s", joinFirst(sortedTerms(missingKeywords), 8)),
			Priority: models.PriorityMedium,
			Action:   models.ActionAdd,
		})
	}

	if len(pros) == 0 {
		recs = append(recs, models.Recommendation{
			Text:     "Your resume has very low overlap with this job description. Consider tailoring it specifically for this role.",
			Priority: models.PriorityHigh,
			Action:   models.ActionAdjust,
		})
	}

	if coverLetterPattern.MatchString(jobText) {
		recs = append(recs, models.Recommendation{
			Text:     "The job listing mentions a cover letter, make sure to prepare one.",
			Priority: models.PriorityMedium,
			Action:   models.ActionAdjust,
		})
	}

	recs = append(recs, models.Recommendation{
		Text:     "Mirror the job description's language. Use their exact terms where possible.",
		Priority: models.PriorityMedium,
		Action:   models.ActionAdjust,
	})

	if len(extra) > 10 {
		recs = append(recs, models.Recommendation{
			Text:     "Consider removing irrelevant skills to keep your resume focused on this role.",
			Priority: models.PriorityLow,
			Action:   models.ActionRemove,
		})
	}

	sort.SliceStable(recs, func(a, b int) bool {
		if recs[a].Action != recs[b].Action {
			return actionRank(recs[a].Action) < actionRank(recs[b].Action)
		}
		return recs[a].Priority.Rank() < recs[b].Priority.Rank()
	})
	return recs
}

// longJobTextChars is the job-description length above which a single late
// skill mention reads as incidental rather than a core requirement.
const longJobTextChars = 400

// missingSkillPriority ranks a missing required skill. Missing requirements
// default to high; only a skill mentioned once, in the second half of a long
// job description, drops to medium.
func missingSkillPriority(skill, jobText string) models.Priority {
	if len(jobText) < longJobTextChars {
		return models.PriorityHigh
	}
	if countTerm(jobText, skill) >= 2 {
		return models.PriorityHigh
	}
	if idx := indexOfTerm(jobText, skill); idx >= 0 && idx*2 <= len(jobText) {
		return models.PriorityHigh
	}
	return models.PriorityMedium
}

func actionRank(a models.Action) int {
	switch a {
	case models.ActionAdd:
		return 0
	case models.ActionAdjust:
		return 1
	default:
		return 2
	}
}

// significantKeywords extracts meaningful single words: longer than three
// letters, not a stopword, appearing between 1 and 20 times.
func (j *jobMatcherService) significantKeywords(normalizedText string) map[string]bool {
	counts := make(map[string]int)
	for _, w := range wordPattern.FindAllString(normalizedText, -1) {
		counts[w]++
	}

	keywords := make(map[string]bool)
	for w, c := range counts {
		if c >= 1 && c <= 20 && !j.vocab.IsStopword(w) {
			keywords[w] = true
		}
	}
	return keywords
}

// extractYearsRequirement pulls a years-of-experience requirement out of a
// job description, zero when none is stated.
func extractYearsRequirement(normalizedText string) int {
	for _, p := range yearsRequirementPatterns {
		if m := p.FindStringSubmatch(normalizedText); m != nil {
			years, err := strconv.Atoi(m[1])
			if err == nil {
				return years
			}
		}
	}
	return 0
}

// estimateResumeYears approximates experience from the resume's date ranges,
// falling back to the span between the earliest and latest year mentioned.
func estimateResumeYears(rawText string, now time.Time) int {
	merged := MergeRanges(ExtractDateRanges(rawText, now))
	if months := TotalMonths(merged); months > 0 {
		return months / 12
	}
	years := yearPattern.FindAllString(rawText, -1)
	if len(years) >= 2 {
		return yearSpan(years)
	}
	return 0
}

func highestDegreeLevel(normalizedText string, levels map[string]int) int {
	max := 0
	for keyword, level := range levels {
		if level > max && containsTerm(normalizedText, keyword) {
			max = level
		}
	}
	return max
}

// orderByProminence sorts terms by first word-bounded appearance in the job
// text; terms not present keep their incoming (alphabetical) order at the end.
func orderByProminence(terms []string, jobText string) []string {
	type pos struct {
		term string
		idx  int
	}
	positions := make([]pos, len(terms))
	for i, t := range terms {
		idx := indexOfTerm(jobText, t)
		if idx < 0 {
			idx = len(jobText) + i
		}
		positions[i] = pos{term: t, idx: idx}
	}
	sort.SliceStable(positions, func(a, b int) bool { return positions[a].idx < positions[b].idx })

	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = p.term
	}
	return out
}

func toTermSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}

func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for t := range a {
		if b[t] {
			out[t] = true
		}
	}
	return out
}

func subtract(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for t := range a {
		if !b[t] {
			out[t] = true
		}
	}
	return out
}

func sortedTerms(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

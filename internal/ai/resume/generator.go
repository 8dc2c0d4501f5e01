// Package resume builds AI-backed resume optimizations, job-match insights,
// and structured resume parsing on top of the provider gateway.
package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"jobpilot/internal/ai"
)

// Caller is the slice of the gateway this package needs.
type Caller interface {
	Call(ctx context.Context, req ai.Request) (ai.Response, error)
}

// Generator produces resume artifacts. Optimization and insights never fail:
// any AI-class error degrades to a deterministic fallback.
type Generator struct {
	ai     Caller
	logger *log.Logger
}

func NewGenerator(c Caller, logger *log.Logger) *Generator {
	return &Generator{ai: c, logger: logger}
}

// OptimizeRequest carries the inputs for a resume optimization.
type OptimizeRequest struct {
	OriginalResume string
	JobDescription string
	JobTitle       string
	RequiredSkills []string
}

// OptimizeResult is the optimization output. On fallback, OptimizedResume is
// the unchanged original.
type OptimizeResult struct {
	OptimizedResume string   `json:"optimizedResume"`
	CoverLetter     string   `json:"coverLetter"`
	KeyChanges      []string `json:"keyChanges"`
}

// InsightProfile is the candidate summary fed into insight generation.
type InsightProfile struct {
	Skills          string
	ExperienceYears string
	WorkHistory     string
}

const optimizePromptTemplate = `
You are an expert resume optimization specialist. Given the original resume and job description below, please:

1. Optimize the resume to better match the job requirements
2. Generate a personalized cover letter
3. Provide a list of key changes made

Original Resume:
%s

Job Title: %s
Job Description:
%s

Required Skills: %s

Please respond with JSON in this exact format:
{
  "optimizedResume": "The optimized resume text with improved keyword matching and relevant experience highlighted",
  "coverLetter": "A personalized cover letter for this specific job",
  "keyChanges": ["List of key changes made to optimize the resume"]
}

Guidelines:
- Maintain truthfulness - don't add false experience
- Emphasize relevant skills and experience that match the job
- Use industry keywords and ATS-friendly formatting
- Keep the same basic structure but improve content presentation
- Make the cover letter specific to the company and role
`

const insightsPromptTemplate = `
Analyze the match between this user profile and job description. Provide 3-5 specific insights about why this job is a good match or what the user should emphasize.

User Profile:
Skills: %s
Experience: %s
Work History: %s

Job Description:
%s

Respond with JSON in this format:
{
  "insights": ["Insight 1", "Insight 2", "Insight 3"]
}
`

// OptimizeResume tailors the resume to the job and drafts a cover letter.
func (g *Generator) OptimizeResume(ctx context.Context, req OptimizeRequest, cfg ai.Config) OptimizeResult {
	prompt := fmt.Sprintf(optimizePromptTemplate,
		req.OriginalResume, req.JobTitle, req.JobDescription, strings.Join(req.RequiredSkills, ", "))

	resp, err := g.ai.Call(ctx, ai.Request{
		Provider:       cfg.Provider,
		Credential:     cfg.APIKey,
		Prompt:         prompt,
		SystemMessage:  "You are an expert resume optimization specialist. Respond only with valid JSON in the specified format.",
		ResponseFormat: ai.ResponseFormatJSON,
		Temperature:    0.7,
		MaxTokens:      2000,
	})
	if err != nil || !resp.Success {
		g.logFallback("resume optimization", err, resp.Error)
		return fallbackOptimization(req)
	}

	var parsed OptimizeResult
	if err := json.Unmarshal([]byte(extractJSON(resp.Content)), &parsed); err != nil {
		g.logFallback("resume optimization", err, "")
		return fallbackOptimization(req)
	}

	if parsed.OptimizedResume == "" {
		parsed.OptimizedResume = req.OriginalResume
	}
	if parsed.CoverLetter == "" {
		parsed.CoverLetter = "Thank you for considering my application."
	}
	if parsed.KeyChanges == nil {
		parsed.KeyChanges = []string{}
	}
	return parsed
}

// GenerateInsights explains why the job fits the candidate.
func (g *Generator) GenerateInsights(ctx context.Context, profile InsightProfile, jobDescription string, cfg ai.Config) []string {
	prompt := fmt.Sprintf(insightsPromptTemplate,
		profile.Skills, profile.ExperienceYears, profile.WorkHistory, jobDescription)

	resp, err := g.ai.Call(ctx, ai.Request{
		Provider:       cfg.Provider,
		Credential:     cfg.APIKey,
		Prompt:         prompt,
		ResponseFormat: ai.ResponseFormatJSON,
		Temperature:    0.5,
		MaxTokens:      500,
	})
	if err != nil || !resp.Success {
		g.logFallback("insight generation", err, resp.Error)
		return fallbackInsights()
	}

	var parsed struct {
		Insights []string `json:"insights"`
	}
	if err := json.Unmarshal([]byte(extractJSON(resp.Content)), &parsed); err != nil {
		g.logFallback("insight generation", err, "")
		return fallbackInsights()
	}
	if parsed.Insights == nil {
		return []string{}
	}
	return parsed.Insights
}

func fallbackOptimization(req OptimizeRequest) OptimizeResult {
	skills := req.RequiredSkills
	if len(skills) > 3 {
		skills = skills[:3]
	}

	coverLetter := fmt.Sprintf(`Dear Hiring Manager,

I am writing to express my interest in the %s position. With my experience in %s, I believe I would be a valuable addition to your team.

I look forward to discussing how my skills and experience can contribute to your organization.

Best regards`, req.JobTitle, strings.Join(skills, ", "))

	return OptimizeResult{
		OptimizedResume: req.OriginalResume,
		CoverLetter:     coverLetter,
		KeyChanges:      []string{"Applied basic formatting improvements"},
	}
}

func fallbackInsights() []string {
	return []string{"This job matches your technical skills and experience level."}
}

func (g *Generator) logFallback(op string, err error, apiErr string) {
	if g.logger == nil {
		return
	}
	if err != nil {
		g.logger.Printf("%s fell back: %v", op, err)
		return
	}
	g.logger.Printf("%s fell back: %s", op, apiErr)
}

// extractJSON strips a surrounding markdown code fence, which some models
// emit even when asked for bare JSON.
func extractJSON(content string) string {
	s := strings.TrimSpace(content)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

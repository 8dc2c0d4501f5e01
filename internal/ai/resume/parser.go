package resume

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jobpilot/internal/ai"
)

// ErrParse marks resume parsing failures. Unlike optimization and insights,
// parsing has no fallback: the caller needs the structured result or nothing.
var ErrParse = errors.New("resume parse failed")

// ParsedResume is the structured profile draft extracted from resume text.
type ParsedResume struct {
	JobTitles       []string `json:"jobTitles"`
	Location        string   `json:"location"`
	LocationType    string   `json:"locationType"`
	MinSalary       *int     `json:"minSalary,omitempty"`
	MaxSalary       *int     `json:"maxSalary,omitempty"`
	ExperienceYears string   `json:"experienceYears"`
	Skills          string   `json:"skills"`
	WorkHistory     string   `json:"workHistory"`
}

var (
	locationTypes     = []string{"remote", "onsite", "hybrid"}
	experienceBuckets = []string{"0-1", "2-3", "4-6", "7-10", "10+"}
)

const parsePromptTemplate = `
Extract and structure the following information from this resume text. Return the response as a JSON object with these exact fields:

{
  "jobTitles": ["array of job titles/roles the person has held or is targeting"],
  "location": "preferred work location (city, state or 'Remote' if not specified)",
  "locationType": "remote, onsite, or hybrid (default to 'remote' if unclear)",
  "experienceYears": "0-1, 2-3, 4-6, 7-10, or 10+ based on total work experience",
  "skills": "comma-separated list of technical skills, programming languages, tools, etc.",
  "workHistory": "detailed work experience summary including companies, roles, achievements, and key projects"
}

Guidelines:
- For jobTitles, include both past positions and target roles
- For location, extract city/state or use "Remote" if not specified
- For experienceYears, calculate total years and map to the ranges above
- For skills, focus on technical skills, tools, programming languages, frameworks
- For workHistory, provide a comprehensive summary that would be suitable for job applications

Resume text:
%s

Return only the JSON object, no additional text.`

// ParseResume extracts a structured profile draft from raw resume text.
// Unsupported-provider and provider-unavailable errors from the gateway
// pass through unchanged so callers can distinguish bad input and upstream
// outages from a failed parse.
func (g *Generator) ParseResume(ctx context.Context, resumeText string, cfg ai.Config) (ParsedResume, error) {
	if strings.TrimSpace(resumeText) == "" {
		return ParsedResume{}, fmt.Errorf("%w: resume text is empty", ErrParse)
	}

	resp, err := g.ai.Call(ctx, ai.Request{
		Provider:       cfg.Provider,
		Credential:     cfg.APIKey,
		Prompt:         fmt.Sprintf(parsePromptTemplate, resumeText),
		SystemMessage:  "You are an expert resume parser. Extract structured information from resumes and return it as valid JSON.",
		ResponseFormat: ai.ResponseFormatJSON,
		Temperature:    0.1,
	})
	if err != nil {
		if errors.Is(err, ai.ErrUnsupportedProvider) || errors.Is(err, ai.ErrProviderUnavailable) {
			return ParsedResume{}, err
		}
		return ParsedResume{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if !resp.Success {
		return ParsedResume{}, fmt.Errorf("%w: %s", ErrParse, resp.Error)
	}

	var parsed ParsedResume
	if err := json.Unmarshal([]byte(extractJSON(resp.Content)), &parsed); err != nil {
		return ParsedResume{}, fmt.Errorf("%w: invalid model output: %v", ErrParse, err)
	}

	if parsed.JobTitles == nil {
		parsed.JobTitles = []string{}
	}
	if parsed.Location == "" {
		parsed.Location = "Remote"
	}
	parsed.LocationType = clamp(strings.ToLower(parsed.LocationType), locationTypes, "remote")
	parsed.ExperienceYears = clamp(parsed.ExperienceYears, experienceBuckets, "2-3")

	return parsed, nil
}

func clamp(value string, allowed []string, fallback string) string {
	for _, a := range allowed {
		if value == a {
			return value
		}
	}
	return fallback
}

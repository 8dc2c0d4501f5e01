package dto

import "jobpilot/internal/domain/nlp"

type AnalysisResponse struct {
	Keywords     []string `json:"keywords"`
	Skills       []string `json:"skills"`
	Requirements []string `json:"requirements"`
}

func FromExtraction(e nlp.Extraction) AnalysisResponse {
	out := AnalysisResponse{Keywords: e.Keywords, Skills: e.Skills, Requirements: e.Requirements}
	if out.Keywords == nil {
		out.Keywords = []string{}
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}
	if out.Requirements == nil {
		out.Requirements = []string{}
	}
	return out
}

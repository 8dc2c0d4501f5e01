package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"jobpilot/internal/ai"
	"jobpilot/internal/ai/resume"
	"jobpilot/internal/domain/user"
	"jobpilot/internal/repository"
)

type ProfileInput struct {
	JobTitles       []string
	Location        string
	LocationType    string
	MinSalary       *int
	MaxSalary       *int
	ExperienceYears string
	Skills          string
	WorkHistory     string
	ResumeURL       *string
}

// ProfileUpdate carries a partial update; nil fields keep their value.
type ProfileUpdate struct {
	JobTitles       *[]string
	Location        *string
	LocationType    *string
	MinSalary       *int
	MaxSalary       *int
	ExperienceYears *string
	Skills          *string
	WorkHistory     *string
	ResumeURL       *string
}

type resumeParser interface {
	ParseResume(ctx context.Context, resumeText string, cfg ai.Config) (resume.ParsedResume, error)
}

type ProfileUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error)
	Get(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, in ProfileUpdate) (user.Profile, error)
	ParseResume(ctx context.Context, userID uuid.UUID, resumeText string, cfg ai.Config) (resume.ParsedResume, error)
}

type Profile struct {
	profiles repository.ProfileRepository
	parser   resumeParser
}

func NewProfileUsecase(profiles repository.ProfileRepository, parser resumeParser) *Profile {
	return &Profile{profiles: profiles, parser: parser}
}

func (u *Profile) Create(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrInvalidInput
	}
	if err := validateProfileFields(in.Location, in.LocationType, in.ExperienceYears, in.MinSalary, in.MaxSalary); err != nil {
		return user.Profile{}, err
	}

	created, err := u.profiles.Create(ctx, user.Profile{
		UserID:          userID,
		JobTitles:       normalizeTitles(in.JobTitles),
		Location:        strings.TrimSpace(in.Location),
		LocationType:    in.LocationType,
		MinSalary:       in.MinSalary,
		MaxSalary:       in.MaxSalary,
		ExperienceYears: in.ExperienceYears,
		Skills:          strings.TrimSpace(in.Skills),
		WorkHistory:     in.WorkHistory,
		ResumeURL:       in.ResumeURL,
	})
	if err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			return user.Profile{}, err
		}
		return user.Profile{}, ErrInternal
	}
	return created, nil
}

func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrInvalidInput
	}
	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.Profile{}, err
		}
		return user.Profile{}, ErrInternal
	}
	return p, nil
}

// Update applies a partial update. The profile's user binding never
// changes.
func (u *Profile) Update(ctx context.Context, userID uuid.UUID, in ProfileUpdate) (user.Profile, error) {
	if userID == uuid.Nil {
		return user.Profile{}, ErrInvalidInput
	}

	p, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.Profile{}, err
		}
		return user.Profile{}, ErrInternal
	}

	if in.JobTitles != nil {
		p.JobTitles = normalizeTitles(*in.JobTitles)
	}
	if in.Location != nil {
		p.Location = strings.TrimSpace(*in.Location)
	}
	if in.LocationType != nil {
		p.LocationType = *in.LocationType
	}
	if in.MinSalary != nil {
		p.MinSalary = in.MinSalary
	}
	if in.MaxSalary != nil {
		p.MaxSalary = in.MaxSalary
	}
	if in.ExperienceYears != nil {
		p.ExperienceYears = *in.ExperienceYears
	}
	if in.Skills != nil {
		p.Skills = strings.TrimSpace(*in.Skills)
	}
	if in.WorkHistory != nil {
		p.WorkHistory = *in.WorkHistory
	}
	if in.ResumeURL != nil {
		p.ResumeURL = in.ResumeURL
	}

	if err := validateProfileFields(p.Location, p.LocationType, p.ExperienceYears, p.MinSalary, p.MaxSalary); err != nil {
		return user.Profile{}, err
	}

	updated, err := u.profiles.Update(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return user.Profile{}, err
		}
		return user.Profile{}, ErrInternal
	}
	return updated, nil
}

// ParseResume extracts a profile draft from resume text. The result is
// returned to the client for review, not written to the profile.
func (u *Profile) ParseResume(ctx context.Context, userID uuid.UUID, resumeText string, cfg ai.Config) (resume.ParsedResume, error) {
	if userID == uuid.Nil || cfg.Provider == "" || cfg.APIKey == "" {
		return resume.ParsedResume{}, ErrInvalidInput
	}
	return u.parser.ParseResume(ctx, resumeText, cfg)
}

func validateProfileFields(location, locationType, experienceYears string, minSalary, maxSalary *int) error {
	if strings.TrimSpace(location) == "" {
		return ErrInvalidInput
	}
	if !oneOf(locationType, user.LocationTypes) {
		return ErrInvalidInput
	}
	if !oneOf(experienceYears, user.ExperienceBuckets) {
		return ErrInvalidInput
	}
	if minSalary != nil && *minSalary < 0 {
		return ErrInvalidInput
	}
	if maxSalary != nil && *maxSalary < 0 {
		return ErrInvalidInput
	}
	if minSalary != nil && maxSalary != nil && *minSalary > *maxSalary {
		return ErrInvalidInput
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

func normalizeTitles(titles []string) []string {
	out := make([]string, 0, len(titles))
	for _, t := range titles {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devconnector/internal/model"
	"devconnector/internal/repository"
)

// ProfileService handles developer profile operations, including the owned
// experience/education sub-collections.
type ProfileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// GetMe returns the caller's own profile with the owner populated.
func (s *ProfileService) GetMe(ctx context.Context, userID int64) (*model.Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// GetByUserID returns another user's profile.
func (s *ProfileService) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// GetAll returns every profile with owners populated.
func (s *ProfileService) GetAll(ctx context.Context) ([]model.Profile, error) {
	return s.repo.GetAll(ctx)
}

// Upsert creates or fully overwrites the caller's profile scalar fields.
// Skills arrive as a comma-separated string and are split and trimmed.
func (s *ProfileService) Upsert(ctx context.Context, userID int64, req *model.ProfileRequest) (*model.Profile, error) {
	profile := &model.Profile{
		UserID: userID,
		Status: req.Status,
		Skills: splitSkills(req.Skills),
	}
	profile.Company = optional(req.Company)
	profile.Website = optional(req.Website)
	profile.Location = optional(req.Location)
	profile.Bio = optional(req.Bio)
	profile.GithubUsername = optional(req.GithubUsername)
	profile.Youtube = optional(req.Youtube)
	profile.Twitter = optional(req.Twitter)
	profile.Facebook = optional(req.Facebook)
	profile.Linkedin = optional(req.Linkedin)
	profile.Instagram = optional(req.Instagram)

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	// Reload to pick up owner and sub-entries
	return s.repo.GetByUserID(ctx, userID)
}

// AddExperience inserts an entry into the caller's experience collection and
// returns the updated profile, newest entry first.
func (s *ProfileService) AddExperience(ctx context.Context, userID int64, req *model.ExperienceRequest) (*model.Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, to, err := parseDateRange(req.From, req.To, req.Current)
	if err != nil {
		return nil, err
	}

	exp := &model.Experience{
		Title:       req.Title,
		Company:     req.Company,
		Location:    optional(req.Location),
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: optional(req.Description),
	}

	if err := s.repo.AddExperience(ctx, profile.ID, exp); err != nil {
		return nil, fmt.Errorf("add experience: %w", err)
	}

	return s.repo.GetByUserID(ctx, userID)
}

// DeleteExperience removes an entry from the caller's own profile. A missing
// entry is reported, never silently ignored.
func (s *ProfileService) DeleteExperience(ctx context.Context, userID, expID int64) (*model.Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}

	return s.repo.GetByUserID(ctx, userID)
}

// AddEducation mirrors AddExperience for the education collection.
func (s *ProfileService) AddEducation(ctx context.Context, userID int64, req *model.EducationRequest) (*model.Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	from, to, err := parseDateRange(req.From, req.To, req.Current)
	if err != nil {
		return nil, err
	}

	edu := &model.Education{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  optional(req.Description),
	}

	if err := s.repo.AddEducation(ctx, profile.ID, edu); err != nil {
		return nil, fmt.Errorf("add education: %w", err)
	}

	return s.repo.GetByUserID(ctx, userID)
}

func (s *ProfileService) DeleteEducation(ctx context.Context, userID, eduID int64) (*model.Profile, error) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}

	return s.repo.GetByUserID(ctx, userID)
}

// splitSkills turns "HTML, CSS,Go" into ["HTML", "CSS", "Go"].
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// parseDateRange parses "YYYY-MM-DD" bounds. A current entry has no end date:
// any supplied "to" is discarded.
func parseDateRange(fromStr, toStr string, current bool) (time.Time, *time.Time, error) {
	from, err := time.Parse("2006-01-02", fromStr)
	if err != nil {
		return time.Time{}, nil, model.ErrInvalidDate
	}

	if current || toStr == "" {
		return from, nil, nil
	}

	to, err := time.Parse("2006-01-02", toStr)
	if err != nil {
		return time.Time{}, nil, model.ErrInvalidDate
	}
	return from, &to, nil
}

// optional maps an empty string to NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

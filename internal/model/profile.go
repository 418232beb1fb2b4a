package model

import (
	"errors"
	"time"

	"github.com/lib/pq"
)

// Profile is a user's developer profile. One per user.
type Profile struct {
	ID             int64          `db:"id" json:"id"`
	UserID         int64          `db:"user_id" json:"user_id"`
	Company        *string        `db:"company" json:"company"`
	Website        *string        `db:"website" json:"website"`
	Location       *string        `db:"location" json:"location"`
	Status         string         `db:"status" json:"status"`
	Skills         pq.StringArray `db:"skills" json:"skills"`
	Bio            *string        `db:"bio" json:"bio"`
	GithubUsername *string        `db:"github_username" json:"githubusername"`
	Youtube        *string        `db:"youtube" json:"youtube"`
	Twitter        *string        `db:"twitter" json:"twitter"`
	Facebook       *string        `db:"facebook" json:"facebook"`
	Linkedin       *string        `db:"linkedin" json:"linkedin"`
	Instagram      *string        `db:"instagram" json:"instagram"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`

	// Joined fields (not in profiles table)
	User       *UserSummary `json:"user,omitempty"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

// Experience is one entry in a profile's work history.
// Entries are listed most recent insertion first.
type Experience struct {
	ID          int64      `db:"id" json:"id"`
	ProfileID   int64      `db:"profile_id" json:"-"`
	Title       string     `db:"title" json:"title"`
	Company     string     `db:"company" json:"company"`
	Location    *string    `db:"location" json:"location"`
	From        time.Time  `db:"from_date" json:"from"`
	To          *time.Time `db:"to_date" json:"to"`
	Current     bool       `db:"current" json:"current"`
	Description *string    `db:"description" json:"description"`
}

// Education is one entry in a profile's education history.
type Education struct {
	ID           int64      `db:"id" json:"id"`
	ProfileID    int64      `db:"profile_id" json:"-"`
	School       string     `db:"school" json:"school"`
	Degree       string     `db:"degree" json:"degree"`
	FieldOfStudy string     `db:"field_of_study" json:"fieldofstudy"`
	From         time.Time  `db:"from_date" json:"from"`
	To           *time.Time `db:"to_date" json:"to"`
	Current      bool       `db:"current" json:"current"`
	Description  *string    `db:"description" json:"description"`
}

// ProfileRequest is the body for profile creation/update (upsert).
// Skills is a comma-separated string, split and trimmed server-side.
type ProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// ExperienceRequest is the body for adding an experience entry.
// Dates are "YYYY-MM-DD" strings.
type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationRequest is the body for adding an education entry.
type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// Profile errors
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrEducationNotFound  = errors.New("education not found")
	ErrInvalidDate        = errors.New("invalid date")

	// ErrGithubUserNotFound covers every upstream failure when fetching
	// repositories; the API does not distinguish them.
	ErrGithubUserNotFound = errors.New("github profile not found")
)

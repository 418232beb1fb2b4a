package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"devconnector/internal/model"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Upsert creates the profile if the user has none, otherwise overwrites all
// scalar fields. Sub-collections (experience/education) are separate tables
// and survive the overwrite.
func (r *profileRepository) Upsert(ctx context.Context, p *model.Profile) error {
	query := `
		INSERT INTO profiles (user_id, company, website, location, status, skills, bio,
		                      github_username, youtube, twitter, facebook, linkedin, instagram,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			company = EXCLUDED.company,
			website = EXCLUDED.website,
			location = EXCLUDED.location,
			status = EXCLUDED.status,
			skills = EXCLUDED.skills,
			bio = EXCLUDED.bio,
			github_username = EXCLUDED.github_username,
			youtube = EXCLUDED.youtube,
			twitter = EXCLUDED.twitter,
			facebook = EXCLUDED.facebook,
			linkedin = EXCLUDED.linkedin,
			instagram = EXCLUDED.instagram,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		p.UserID,
		p.Company,
		p.Website,
		p.Location,
		p.Status,
		p.Skills,
		p.Bio,
		p.GithubUsername,
		p.Youtube,
		p.Twitter,
		p.Facebook,
		p.Linkedin,
		p.Instagram,
	)

	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

// profileRow scans a profile joined with its owner's display fields.
type profileRow struct {
	model.Profile
	OwnerID     int64  `db:"owner.id"`
	OwnerName   string `db:"owner.name"`
	OwnerAvatar string `db:"owner.avatar"`
}

const profileSelect = `
	SELECT p.id, p.user_id, p.company, p.website, p.location, p.status, p.skills,
	       p.bio, p.github_username, p.youtube, p.twitter, p.facebook, p.linkedin,
	       p.instagram, p.created_at, p.updated_at,
	       u.id as "owner.id", u.name as "owner.name", u.avatar as "owner.avatar"
	FROM profiles p
	JOIN users u ON u.id = p.user_id
`

// GetByUserID retrieves a profile with the owner's name/avatar populated and
// its experience/education entries loaded, newest insertion first.
func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row, profileSelect+`WHERE p.user_id = $1`, userID)
	if err == sql.ErrNoRows {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile := row.Profile
	profile.User = &model.UserSummary{
		ID:     row.OwnerID,
		Name:   row.OwnerName,
		Avatar: row.OwnerAvatar,
	}

	if err := r.loadSubEntries(ctx, []*model.Profile{&profile}); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetAll retrieves every profile with owners populated and sub-entries loaded.
func (r *profileRepository) GetAll(ctx context.Context) ([]model.Profile, error) {
	var rows []profileRow
	err := r.db.SelectContext(ctx, &rows, profileSelect+`ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}

	profiles := make([]model.Profile, len(rows))
	refs := make([]*model.Profile, len(rows))
	for i, row := range rows {
		profiles[i] = row.Profile
		profiles[i].User = &model.UserSummary{
			ID:     row.OwnerID,
			Name:   row.OwnerName,
			Avatar: row.OwnerAvatar,
		}
		refs[i] = &profiles[i]
	}

	if err := r.loadSubEntries(ctx, refs); err != nil {
		return nil, err
	}

	return profiles, nil
}

// AddExperience inserts a new experience entry. Listing order (id DESC) puts
// the newest insertion at index 0.
func (r *profileRepository) AddExperience(ctx context.Context, profileID int64, exp *model.Experience) error {
	query := `
		INSERT INTO profile_experiences (profile_id, title, company, location, from_date, to_date, current, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		profileID, exp.Title, exp.Company, exp.Location, exp.From, exp.To, exp.Current, exp.Description,
	).Scan(&exp.ID)
	if err != nil {
		return fmt.Errorf("failed to insert experience: %w", err)
	}
	exp.ProfileID = profileID
	return nil
}

// DeleteExperience removes one entry, scoped to the owning profile. A missing
// entry is an explicit error, never a silent no-op.
func (r *profileRepository) DeleteExperience(ctx context.Context, profileID, expID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM profile_experiences WHERE id = $1 AND profile_id = $2`, expID, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrExperienceNotFound
	}
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, profileID int64, edu *model.Education) error {
	query := `
		INSERT INTO profile_educations (profile_id, school, degree, field_of_study, from_date, to_date, current, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		profileID, edu.School, edu.Degree, edu.FieldOfStudy, edu.From, edu.To, edu.Current, edu.Description,
	).Scan(&edu.ID)
	if err != nil {
		return fmt.Errorf("failed to insert education: %w", err)
	}
	edu.ProfileID = profileID
	return nil
}

func (r *profileRepository) DeleteEducation(ctx context.Context, profileID, eduID int64) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM profile_educations WHERE id = $1 AND profile_id = $2`, eduID, profileID)
	if err != nil {
		return fmt.Errorf("failed to delete education: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrEducationNotFound
	}
	return nil
}

// loadSubEntries fetches experience and education entries for many profiles
// in two queries and attaches them in newest-first order.
func (r *profileRepository) loadSubEntries(ctx context.Context, profiles []*model.Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	ids := make([]int64, len(profiles))
	index := make(map[int64]*model.Profile, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
		index[p.ID] = p
		p.Experience = []model.Experience{}
		p.Education = []model.Education{}
	}

	var experiences []model.Experience
	err := r.db.SelectContext(ctx, &experiences, `
		SELECT id, profile_id, title, company, location, from_date, to_date, current, description
		FROM profile_experiences
		WHERE profile_id = ANY($1)
		ORDER BY id DESC
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get experiences: %w", err)
	}
	for _, exp := range experiences {
		p := index[exp.ProfileID]
		p.Experience = append(p.Experience, exp)
	}

	var educations []model.Education
	err = r.db.SelectContext(ctx, &educations, `
		SELECT id, profile_id, school, degree, field_of_study, from_date, to_date, current, description
		FROM profile_educations
		WHERE profile_id = ANY($1)
		ORDER BY id DESC
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to get educations: %w", err)
	}
	for _, edu := range educations {
		p := index[edu.ProfileID]
		p.Education = append(p.Education, edu)
	}

	return nil
}

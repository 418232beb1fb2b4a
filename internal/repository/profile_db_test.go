package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"devconnector/internal/model"
)

func createTestProfile(t *testing.T, db *sqlx.DB, userID int64) *model.Profile {
	t.Helper()

	repo := NewProfileRepository(db)
	profile := &model.Profile{
		UserID: userID,
		Status: "Developer",
		Skills: pq.StringArray{"Go", "SQL"},
	}
	if err := repo.Upsert(context.Background(), profile); err != nil {
		t.Fatalf("upsert test profile: %v", err)
	}
	return profile
}

func TestProfileRepository_ExperienceOrdering(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "exp-order")
	profile := createTestProfile(t, db, user.ID)
	repo := NewProfileRepository(db)

	from := time.Date(2019, 1, 15, 0, 0, 0, 0, time.UTC)
	for _, title := range []string{"First Job", "Second Job"} {
		err := repo.AddExperience(ctx, profile.ID, &model.Experience{
			Title:   title,
			Company: "Acme",
			From:    from,
		})
		if err != nil {
			t.Fatalf("add experience %q: %v", title, err)
		}
	}

	got, err := repo.GetByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}

	if len(got.Experience) != 2 {
		t.Fatalf("len(experience) = %d, want 2", len(got.Experience))
	}
	// Newest insertion first
	if got.Experience[0].Title != "Second Job" {
		t.Errorf("experience[0].Title = %q, want %q", got.Experience[0].Title, "Second Job")
	}
	if got.Experience[1].Title != "First Job" {
		t.Errorf("experience[1].Title = %q, want %q", got.Experience[1].Title, "First Job")
	}
}

func TestProfileRepository_EducationOrdering(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "edu-order")
	profile := createTestProfile(t, db, user.ID)
	repo := NewProfileRepository(db)

	from := time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC)
	for _, school := range []string{"First School", "Second School"} {
		err := repo.AddEducation(ctx, profile.ID, &model.Education{
			School:       school,
			Degree:       "BSc",
			FieldOfStudy: "CS",
			From:         from,
		})
		if err != nil {
			t.Fatalf("add education %q: %v", school, err)
		}
	}

	got, err := repo.GetByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}

	if len(got.Education) != 2 {
		t.Fatalf("len(education) = %d, want 2", len(got.Education))
	}
	if got.Education[0].School != "Second School" {
		t.Errorf("education[0].School = %q, want %q", got.Education[0].School, "Second School")
	}
	if got.Education[1].School != "First School" {
		t.Errorf("education[1].School = %q, want %q", got.Education[1].School, "First School")
	}
}

package usecase

import (
	"testing"

	"quickgigs/internal/domain/entities"
)

func TestAuthorizationGuard(t *testing.T) {
	gig := entities.Gig{ID: "gig-1", EmployerID: "emp-1"}
	app := entities.Application{ID: "app-1", GigID: "gig-1", ApplicantID: "free-1"}

	t.Run("owner", func(t *testing.T) {
		if !IsOwner("emp-1", gig) || IsOwner("free-1", gig) || IsOwner("", entities.Gig{}) {
			t.Fatalf("unexpected IsOwner result")
		}
	})

	t.Run("applicant", func(t *testing.T) {
		if !IsApplicant("free-1", app) || IsApplicant("emp-1", app) {
			t.Fatalf("unexpected IsApplicant result")
		}
	})

	t.Run("gig employer", func(t *testing.T) {
		if !IsGigEmployer("emp-1", app, gig) {
			t.Fatalf("expected employer access")
		}
		other := entities.Gig{ID: "gig-2", EmployerID: "emp-1"}
		if IsGigEmployer("emp-1", app, other) {
			t.Fatalf("employer of another gig must not match")
		}
	})

	t.Run("require owner", func(t *testing.T) {
		if err := requireOwner("free-1", gig); err != ErrNotAuthorized {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})
}

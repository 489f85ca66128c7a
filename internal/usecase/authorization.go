package usecase

import "quickgigs/internal/domain/entities"

// IsOwner reports whether userID posted the gig.
func IsOwner(userID string, g entities.Gig) bool {
	return userID != "" && g.EmployerID == userID
}

// IsApplicant reports whether userID submitted the application.
func IsApplicant(userID string, a entities.Application) bool {
	return userID != "" && a.ApplicantID == userID
}

// IsGigEmployer reports whether userID owns the gig the application targets.
func IsGigEmployer(userID string, a entities.Application, g entities.Gig) bool {
	return a.GigID == g.ID && IsOwner(userID, g)
}

func requireOwner(userID string, g entities.Gig) error {
	if !IsOwner(userID, g) {
		return ErrNotAuthorized
	}
	return nil
}

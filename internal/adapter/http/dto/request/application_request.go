package request

import (
	"errors"
	"strings"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase"

	"github.com/shopspring/decimal"
)

var ErrInvalidProposedRate = errors.New("invalid proposed rate")

type SubmitApplicationRequest struct {
	CoverLetter  string `json:"cover_letter" binding:"required"`
	ProposedRate string `json:"proposed_rate"`
}

func (r SubmitApplicationRequest) ToInput() (usecase.SubmitApplicationInput, error) {
	in := usecase.SubmitApplicationInput{CoverLetter: r.CoverLetter}
	if v := strings.TrimSpace(r.ProposedRate); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			return usecase.SubmitApplicationInput{}, ErrInvalidProposedRate
		}
		in.ProposedRate = &rate
	}
	return in, nil
}

type UpdateApplicationStatusRequest struct {
	Status        string  `json:"status" binding:"required"`
	EmployerNotes *string `json:"employer_notes"`
}

func (r UpdateApplicationStatusRequest) ResolveStatus() entities.ApplicationStatus {
	return entities.ApplicationStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

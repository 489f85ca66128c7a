package request

import (
	"errors"
	"strings"
	"time"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidBudget   = errors.New("invalid budget")
	ErrInvalidDeadline = errors.New("invalid deadline")
)

// GigRequest is the create/update payload. Budget travels as a decimal
// string so that cents are never rounded through float64.
type GigRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Budget      string `json:"budget" binding:"required"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Deadline    string `json:"deadline"`
}

func (r GigRequest) ToInput() (usecase.GigInput, error) {
	budget, err := decimal.NewFromString(strings.TrimSpace(r.Budget))
	if err != nil {
		return usecase.GigInput{}, ErrInvalidBudget
	}
	in := usecase.GigInput{
		Title:       r.Title,
		Description: r.Description,
		Budget:      budget,
		Location:    r.Location,
		Category:    entities.GigCategory(strings.TrimSpace(r.Category)),
	}
	if d := strings.TrimSpace(r.Deadline); d != "" {
		parsed, err := time.Parse(dateLayout, d)
		if err != nil {
			return usecase.GigInput{}, ErrInvalidDeadline
		}
		in.Deadline = &parsed
	}
	return in, nil
}

// GigListRequest binds the public listing query string.
type GigListRequest struct {
	Page     int    `form:"page"`
	Size     int    `form:"size"`
	Category string `form:"category"`
	Employer string `form:"employer"`
}

func (r GigListRequest) ToQuery() usecase.GigListQuery {
	return usecase.GigListQuery{
		Category:   entities.GigCategory(strings.TrimSpace(r.Category)),
		EmployerID: strings.TrimSpace(r.Employer),
		Page:       r.Page,
		PageSize:   r.Size,
	}
}

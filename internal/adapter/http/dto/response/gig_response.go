package response

import (
	"time"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase"
)

type GigResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EmployerID  string    `json:"employer_id"`
	Budget      string    `json:"budget"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Deadline    *string   `json:"deadline,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsFeatured  bool      `json:"is_featured"`
	IsOverdue   bool      `json:"is_overdue"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromGig renders a gig as of now; overdue and availability depend on the date.
func FromGig(g entities.Gig, now time.Time) GigResponse {
	out := GigResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		EmployerID:  g.EmployerID,
		Budget:      g.Budget.StringFixed(2),
		Location:    g.Location,
		Category:    string(g.Category),
		IsActive:    g.IsActive,
		IsFeatured:  g.DisplayFeatured(),
		IsOverdue:   g.IsOverdue(now),
		IsAvailable: g.IsAvailable(now),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if g.Deadline != nil {
		d := g.Deadline.Format("2006-01-02")
		out.Deadline = &d
	}
	return out
}

type GigListResponse struct {
	Items    []GigResponse `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

func FromGigList(res usecase.GigListResult, now time.Time) GigListResponse {
	items := make([]GigResponse, 0, len(res.Gigs))
	for _, g := range res.Gigs {
		items = append(items, FromGig(g, now))
	}
	return GigListResponse{Items: items, Total: res.Total, Page: res.Page, PageSize: res.PageSize}
}

type GigStatsResponse struct {
	FeaturedActive int64 `json:"featured_active"`
}

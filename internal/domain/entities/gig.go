package entities

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// GigCategory is the closed set of gig categories shown in listings.
type GigCategory string

const (
	GigCategoryWebDev      GigCategory = "web_dev"
	GigCategoryDesign      GigCategory = "design"
	GigCategoryWriting     GigCategory = "writing"
	GigCategoryMarketing   GigCategory = "marketing"
	GigCategoryDataEntry   GigCategory = "data_entry"
	GigCategoryAdmin       GigCategory = "admin"
	GigCategoryTechSupport GigCategory = "tech_support"
	GigCategoryOther       GigCategory = "other"
)

const DefaultGigLocation = "Remote"

func (c GigCategory) Valid() bool {
	switch c {
	case GigCategoryWebDev, GigCategoryDesign, GigCategoryWriting, GigCategoryMarketing,
		GigCategoryDataEntry, GigCategoryAdmin, GigCategoryTechSupport, GigCategoryOther:
		return true
	}
	return false
}

// Gig is a job posting owned by an employer.
//
// Storage model:
//   - PK: id
//   - employer_id is set on creation and never rewritten
//   - is_featured is a projection of payment state, written only together with
//     a featured_gig payment transition
type Gig struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	EmployerID  string          `json:"employer_id"`
	Budget      decimal.Decimal `json:"budget"`
	Location    string          `json:"location"`
	Category    GigCategory     `json:"category"`
	Deadline    *time.Time      `json:"deadline,omitempty"`
	IsActive    bool            `json:"is_active"`
	IsFeatured  bool            `json:"is_featured"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsOverdue reports whether an active gig is past its deadline. Deadlines are
// calendar dates, so a gig stays open for the whole deadline day.
func (g Gig) IsOverdue(now time.Time) bool {
	if g.Deadline == nil || !g.IsActive {
		return false
	}
	return dateOf(*g.Deadline).Before(dateOf(now))
}

// IsAvailable reports whether the gig currently accepts applications.
func (g Gig) IsAvailable(now time.Time) bool {
	return g.IsActive && !g.IsOverdue(now)
}

// DisplayFeatured is the featured flag as rendered in listings. It never looks
// at payments: the flag is already reconciled when the payment transitions.
func (g Gig) DisplayFeatured() bool {
	return g.IsFeatured
}

// ListingBefore orders gigs for listings: featured first, then newest, then id
// descending so that pages stay stable when created_at collides.
func ListingBefore(a, b Gig) bool {
	if a.IsFeatured != b.IsFeatured {
		return a.IsFeatured
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// SortForListing sorts gigs in place using ListingBefore.
func SortForListing(gigs []Gig) {
	sort.SliceStable(gigs, func(i, j int) bool { return ListingBefore(gigs[i], gigs[j]) })
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

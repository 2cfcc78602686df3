package models

import (
	"slices"
	"time"
)

type SolutionStatus string

const (
	SolutionActive   SolutionStatus = "active"
	SolutionInactive SolutionStatus = "inactive"
	SolutionOnHold   SolutionStatus = "on_hold"
)

type Testimonial struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Company    string    `json:"company,omitempty"`
	Quote      string    `json:"quote"`
	Rating     int       `json:"rating,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type CaseStudy struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url,omitempty"`
}

type Collateral struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Kind string `json:"kind"`
	URL  string `json:"url"`
}

type Solution struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Status       SolutionStatus `json:"status"`
	Testimonials []Testimonial  `json:"testimonials"`
	CaseStudies  []CaseStudy    `json:"case_studies"`
	Collateral   []Collateral   `json:"collateral"`
}

func (s Solution) clone() Solution {
	s.Testimonials = slices.Clone(s.Testimonials)
	s.CaseStudies = slices.Clone(s.CaseStudies)
	s.Collateral = slices.Clone(s.Collateral)
	return s
}

type DueDiligence struct {
	Financials   string    `json:"financials,omitempty"`
	Legal        string    `json:"legal,omitempty"`
	Team         string    `json:"team,omitempty"`
	Documents    []string  `json:"documents,omitempty"`
	Completed    bool      `json:"completed"`
	LastReviewed time.Time `json:"last_reviewed,omitempty"`
}

type Seller struct {
	ID                  string       `json:"id"`
	CompanyName         string       `json:"company_name"`
	Description         string       `json:"description"`
	Industry            string       `json:"industry,omitempty"`
	Tier                string       `json:"tier"`
	Followers           int          `json:"followers"`
	IsOpenForInvestment bool         `json:"is_open_for_investment"`
	DueDiligence        DueDiligence `json:"due_diligence"`
	Solutions           []Solution   `json:"solutions"`
}

func (s *Seller) GetID() string {
	return s.ID
}

func (s *Seller) Clone() *Seller {
	if s == nil {
		return nil
	}
	c := *s
	c.DueDiligence.Documents = slices.Clone(s.DueDiligence.Documents)
	if s.Solutions != nil {
		c.Solutions = make([]Solution, len(s.Solutions))
		for i, sol := range s.Solutions {
			c.Solutions[i] = sol.clone()
		}
	}
	return &c
}

// SolutionIndex returns the position of the solution, or -1.
func (s *Seller) SolutionIndex(solutionID string) int {
	return slices.IndexFunc(s.Solutions, func(sol Solution) bool {
		return sol.ID == solutionID
	})
}

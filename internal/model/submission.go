package model

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a rejected submission. No record is persisted when
// one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ItemSubmission is a public found-item report before it becomes an Item.
type ItemSubmission struct {
	Title       string
	Category    string
	Location    string
	DateFound   string
	Description string
	FinderName  string
	FinderEmail string
	FinderPhone string
	Photo       string
}

// Validate checks the mandatory fields for a found-item report.
func (s *ItemSubmission) Validate() error {
	missing := missingFields(map[string]string{
		"title":        s.Title,
		"category":     s.Category,
		"location":     s.Location,
		"date_found":   s.DateFound,
		"finder_name":  s.FinderName,
		"finder_email": s.FinderEmail,
	})
	if len(missing) > 0 {
		return &ValidationError{Reason: "missing required fields: " + strings.Join(missing, ", ")}
	}
	if !ValidCategory(s.Category) {
		return &ValidationError{Reason: fmt.Sprintf("invalid category %q", s.Category)}
	}
	return nil
}

// ClaimSubmission is a public claim before it becomes a Claim.
type ClaimSubmission struct {
	ItemID        string
	ClaimantName  string
	ClaimantEmail string
	ClaimantPhone string
	Description   string
}

// Validate checks the mandatory fields for a claim.
func (s *ClaimSubmission) Validate() error {
	missing := missingFields(map[string]string{
		"item_id":        s.ItemID,
		"claimant_name":  s.ClaimantName,
		"claimant_email": s.ClaimantEmail,
		"description":    s.Description,
	})
	if len(missing) > 0 {
		return &ValidationError{Reason: "missing required fields: " + strings.Join(missing, ", ")}
	}
	return nil
}

// LostSubmission is a public lost-item report before it becomes a LostReport.
type LostSubmission struct {
	Title        string
	Category     string
	LocationLost string
	DateLost     string
	Description  string
	OwnerName    string
	OwnerEmail   string
	OwnerPhone   string
}

// Validate checks the mandatory fields for a lost-item report.
func (s *LostSubmission) Validate() error {
	missing := missingFields(map[string]string{
		"title":         s.Title,
		"category":      s.Category,
		"location_lost": s.LocationLost,
		"date_lost":     s.DateLost,
		"owner_name":    s.OwnerName,
		"owner_email":   s.OwnerEmail,
	})
	if len(missing) > 0 {
		return &ValidationError{Reason: "missing required fields: " + strings.Join(missing, ", ")}
	}
	if !ValidCategory(s.Category) {
		return &ValidationError{Reason: fmt.Sprintf("invalid category %q", s.Category)}
	}
	return nil
}

// missingFields returns the names of empty fields, in a stable order.
func missingFields(fields map[string]string) []string {
	order := []string{
		"title", "category", "location", "date_found", "finder_name", "finder_email",
		"item_id", "claimant_name", "claimant_email", "description",
		"location_lost", "date_lost", "owner_name", "owner_email",
	}
	var missing []string
	for _, name := range order {
		v, ok := fields[name]
		if ok && strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

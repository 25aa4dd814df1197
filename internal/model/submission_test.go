package model

import (
	"strings"
	"testing"
)

func TestItemSubmissionValidate(t *testing.T) {
	sub := &ItemSubmission{
		Title:       "Blue Backpack",
		Category:    CategoryAccessories,
		Location:    "Library",
		DateFound:   "2024-03-01",
		FinderName:  "Alex",
		FinderEmail: "alex@example.com",
	}
	if err := sub.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestItemSubmissionMissingFields(t *testing.T) {
	sub := &ItemSubmission{Title: "Backpack", Category: CategoryOther}
	err := sub.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	for _, want := range []string{"location", "date_found", "finder_name", "finder_email"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in error, got %q", want, err.Error())
		}
	}
}

func TestItemSubmissionWhitespaceOnly(t *testing.T) {
	sub := &ItemSubmission{
		Title:       "   ",
		Category:    CategoryOther,
		Location:    "Gym",
		DateFound:   "2024-03-01",
		FinderName:  "Alex",
		FinderEmail: "alex@example.com",
	}
	if err := sub.Validate(); err == nil {
		t.Error("expected validation error for whitespace-only title")
	}
}

func TestItemSubmissionInvalidCategory(t *testing.T) {
	sub := &ItemSubmission{
		Title:       "Backpack",
		Category:    "vehicles",
		Location:    "Lot B",
		DateFound:   "2024-03-01",
		FinderName:  "Alex",
		FinderEmail: "alex@example.com",
	}
	err := sub.Validate()
	if err == nil {
		t.Fatal("expected validation error for unknown category")
	}
	if !strings.Contains(err.Error(), "vehicles") {
		t.Errorf("expected category in error, got %q", err.Error())
	}
}

func TestClaimSubmissionValidate(t *testing.T) {
	sub := &ClaimSubmission{
		ItemID:        "some-id",
		ClaimantName:  "Sam",
		ClaimantEmail: "sam@example.com",
		Description:   "It has my initials on the strap",
	}
	if err := sub.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad := &ClaimSubmission{ItemID: "some-id"}
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error")
	}
}

func TestLostSubmissionValidate(t *testing.T) {
	sub := &LostSubmission{
		Title:        "Silver Watch",
		Category:     CategoryAccessories,
		LocationLost: "Cafeteria",
		DateLost:     "2024-02-28",
		OwnerName:    "Jo",
		OwnerEmail:   "jo@example.com",
	}
	if err := sub.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad := &LostSubmission{Title: "Watch", Category: CategoryAccessories}
	err := bad.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "owner_email") {
		t.Errorf("expected owner_email in error, got %q", err.Error())
	}
}

func TestValidItemStatus(t *testing.T) {
	for _, s := range []string{ItemStatusPending, ItemStatusApproved, ItemStatusRejected, ItemStatusClaimed} {
		if !ValidItemStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	if ValidItemStatus("archived") {
		t.Error("expected 'archived' to be invalid")
	}
	if ValidItemStatus("") {
		t.Error("expected empty status to be invalid")
	}
}

func TestValidClaimStatus(t *testing.T) {
	if !ValidClaimStatus(ClaimStatusApproved) {
		t.Error("expected 'approved' to be valid")
	}
	if ValidClaimStatus("claimed") {
		t.Error("expected 'claimed' to be invalid for claims")
	}
}

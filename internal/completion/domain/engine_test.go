package domain

import (
	"reflect"
	"testing"
)

func intPtr(n int) *int       { return &n }
func i64Ptr(n int64) *int64   { return &n }
func strPtr(s string) *string { return &s }

// publishableListing satisfies every mandatory rule and nothing else.
func publishableListing() Listing {
	return Listing{
		Price:        i64Ptr(300000),
		ListingType:  strPtr("Sale"),
		PropertyType: strPtr("piso"),
		SquareMeter:  intPtr(90),
		Bedrooms:     intPtr(2),
		Bathrooms:    intPtr(1),
		Street:       strPtr("Calle Mayor 1"),
		City:         strPtr("León"),
		Province:     strPtr("León"),
		PostalCode:   strPtr("24001"),
		Description:  strPtr("Piso luminoso en el centro de León"),
		ImageCount:   5,
	}
}

func TestCalculateEmptyListing(t *testing.T) {
	result := Calculate(Listing{})

	if result.OverallCompleted != 0 {
		t.Fatalf("OverallCompleted = %d, want 0", result.OverallCompleted)
	}
	if result.OverallPercentage != 0 {
		t.Fatalf("OverallPercentage = %d, want 0", result.OverallPercentage)
	}
	if result.CanPublishToPortals {
		t.Fatal("empty listing must not be publishable")
	}
	if result.OverallTotal != len(Rules()) {
		t.Fatalf("OverallTotal = %d, want full table length %d", result.OverallTotal, len(Rules()))
	}
	if len(result.Mandatory.Pending) != result.Mandatory.Total {
		t.Fatalf("all %d mandatory rules should be pending, got %d", result.Mandatory.Total, len(result.Mandatory.Pending))
	}
}

func TestCalculateTableShape(t *testing.T) {
	result := Calculate(Listing{})

	if result.Mandatory.Total != 12 {
		t.Fatalf("mandatory total = %d, want 12", result.Mandatory.Total)
	}
	if result.Nth.Total != 78 {
		t.Fatalf("nth total = %d, want 78", result.Nth.Total)
	}
	if result.OverallTotal != 90 {
		t.Fatalf("overall total = %d, want 90", result.OverallTotal)
	}
}

func TestCalculateMandatoryCompletePublishes(t *testing.T) {
	result := Calculate(publishableListing())

	if !result.CanPublishToPortals {
		t.Fatalf("expected publishable, pending mandatory: %v", result.PendingMandatoryLabels())
	}
	if result.Mandatory.CompletedCount != 12 {
		t.Fatalf("mandatory completed = %d, want 12", result.Mandatory.CompletedCount)
	}
	// Quality fields stay pending without blocking publication.
	if result.Nth.CompletedCount != 0 {
		t.Fatalf("nth completed = %d, want 0", result.Nth.CompletedCount)
	}
	if result.OverallPercentage != 13 {
		t.Fatalf("overall percentage = %d, want round(100*12/90) = 13", result.OverallPercentage)
	}
}

func TestCalculateSingleMandatoryFlip(t *testing.T) {
	listing := publishableListing()
	listing.ImageCount = 4

	result := Calculate(listing)

	if result.CanPublishToPortals {
		t.Fatal("four images must block publication")
	}
	if len(result.Mandatory.Pending) != 1 {
		t.Fatalf("got %d pending mandatory rules, want exactly 1", len(result.Mandatory.Pending))
	}
	if result.Mandatory.Pending[0].ID != "images" {
		t.Fatalf("pending rule = %q, want images", result.Mandatory.Pending[0].ID)
	}
	if result.Mandatory.CompletedCount != 11 {
		t.Fatalf("mandatory completed = %d, want 11", result.Mandatory.CompletedCount)
	}
}

func TestCalculateShortDescriptionPending(t *testing.T) {
	listing := publishableListing()
	listing.Description = strPtr("Piso bonito")

	result := Calculate(listing)
	if result.CanPublishToPortals {
		t.Fatal("a description under 20 characters must block publication")
	}
	if got := result.PendingMandatoryLabels(); len(got) != 1 || got[0] != "Descripción" {
		t.Fatalf("pending labels = %v, want [Descripción]", got)
	}
}

func TestCalculateAmenityRequiresTrue(t *testing.T) {
	off := false
	listing := publishableListing()
	listing.Elevator = &off

	result := Calculate(listing)
	for _, status := range result.Nth.Completed {
		if status.ID == "elevator" {
			t.Fatal("elevator=false must not count as completed")
		}
	}
}

func TestCalculateIdempotent(t *testing.T) {
	listing := publishableListing()
	listing.YearBuilt = intPtr(1999)
	listing.Neighborhood = strPtr("Centro")

	first := Calculate(listing)
	second := Calculate(listing)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated evaluation of the same listing diverged")
	}
}

func TestCalculateDeclarationOrderPreserved(t *testing.T) {
	result := Calculate(Listing{})

	// With nothing completed, the pending list mirrors the table order.
	if result.Mandatory.Pending[0].ID != "price" {
		t.Fatalf("first mandatory rule = %q, want price", result.Mandatory.Pending[0].ID)
	}
	if result.Nth.Pending[0].ID != "built_square_meter" {
		t.Fatalf("first nth rule = %q, want built_square_meter", result.Nth.Pending[0].ID)
	}
}

package domain

import (
	"testing"

	"github.com/google/uuid"
)

func uuidPtr() *uuid.UUID {
	id := uuid.New()
	return &id
}

func strPtr(s string) *string { return &s }

func TestResolveEntityPriorityOrder(t *testing.T) {
	prospectID := uuidPtr()
	leadID := uuidPtr()

	// A row with multiple references set reports only the highest-priority one.
	row := TaskRow{
		ProspectID:          prospectID,
		ListingContactID:    leadID,
		ProspectContactName: strPtr("Carmen Díaz"),
		LeadContactName:     strPtr("Jorge Vidal"),
	}

	ref := ResolveEntity(row)
	if ref == nil {
		t.Fatal("expected a resolved entity")
	}
	if ref.Kind != EntityProspect || ref.ID != *prospectID {
		t.Fatalf("got %s/%s, want prospect/%s", ref.Kind, ref.ID, prospectID)
	}
	if ref.Name != "Carmen Díaz" {
		t.Fatalf("name = %q, want prospect contact name", ref.Name)
	}
}

func TestResolveEntityEachKind(t *testing.T) {
	cases := []struct {
		name     string
		row      TaskRow
		wantKind EntityKind
		wantName string
	}{
		{"lead", TaskRow{ListingContactID: uuidPtr(), LeadContactName: strPtr("Jorge Vidal")}, EntityLead, "Jorge Vidal"},
		{"deal with address", TaskRow{DealID: uuidPtr(), DealAddress: strPtr("Calle Ancha 4, León")}, EntityDeal, "Calle Ancha 4, León"},
		{"deal without address", TaskRow{DealID: uuidPtr()}, EntityDeal, UnknownProperty},
		{"listing without address", TaskRow{ListingID: uuidPtr()}, EntityListing, UnknownProperty},
		{"appointment without contact", TaskRow{AppointmentID: uuidPtr()}, EntityAppointment, UnknownContact},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref := ResolveEntity(tc.row)
			if ref == nil {
				t.Fatal("expected a resolved entity")
			}
			if ref.Kind != tc.wantKind {
				t.Fatalf("kind = %s, want %s", ref.Kind, tc.wantKind)
			}
			if ref.Name != tc.wantName {
				t.Fatalf("name = %q, want %q", ref.Name, tc.wantName)
			}
		})
	}
}

func TestResolveEntityNoReference(t *testing.T) {
	if ref := ResolveEntity(TaskRow{}); ref != nil {
		t.Fatalf("expected nil for an unreferenced task, got %+v", ref)
	}
}

func TestResolveEntityMissingContactName(t *testing.T) {
	row := TaskRow{ProspectID: uuidPtr()}
	ref := ResolveEntity(row)
	if ref == nil || ref.Name != UnknownContact {
		t.Fatalf("expected %q fallback, got %+v", UnknownContact, ref)
	}
}

package domain

import "testing"

func TestBuildSummaryMergesListingsIntoProspects(t *testing.T) {
	sale := "Sale"
	summary := BuildSummary(SummaryInput{
		Prospects: []StatusCount{{Status: "Activo", ListingType: &sale, Count: 3}},
		Listings:  []StatusCount{{Status: "Activo", ListingType: &sale, Count: 2}},
	})

	if got := summary.Sale.Prospects["Activo"]; got != 5 {
		t.Fatalf("sale.prospects[Activo] = %d, want 5 (3 prospects + 2 listings)", got)
	}
	if got := summary.Rent.Prospects["Activo"]; got != 0 {
		t.Fatalf("rent.prospects[Activo] = %d, want 0", got)
	}
}

func TestBuildSummaryBinaryTrackClassification(t *testing.T) {
	rent := "Rent"
	other := "Traspaso"
	summary := BuildSummary(SummaryInput{
		Prospects: []StatusCount{
			{Status: "Nuevo", ListingType: &rent, Count: 1},
			{Status: "Nuevo", ListingType: &other, Count: 4},
			{Status: "Nuevo", ListingType: nil, Count: 2},
		},
	})

	// Anything that is not exactly "Sale" lands in the rent track, nulls included.
	if got := summary.Rent.Prospects["Nuevo"]; got != 7 {
		t.Fatalf("rent.prospects[Nuevo] = %d, want 7", got)
	}
	if got := summary.Sale.Prospects["Nuevo"]; got != 0 {
		t.Fatalf("sale.prospects[Nuevo] = %d, want 0", got)
	}
}

func TestBuildSummaryDropsLeadsWithoutListing(t *testing.T) {
	sale := "Sale"
	summary := BuildSummary(SummaryInput{
		Leads: []StatusCount{
			{Status: "Contactado", ListingType: &sale, Count: 2},
			{Status: "Contactado", ListingType: nil, Count: 9},
		},
	})

	if got := summary.Sale.Leads["Contactado"]; got != 2 {
		t.Fatalf("sale.leads[Contactado] = %d, want 2", got)
	}
	if got := summary.Rent.Leads["Contactado"]; got != 0 {
		t.Fatalf("rent.leads[Contactado] = %d, want 0 (null listing type rows are dropped)", got)
	}
}

func TestBuildSummaryDealsAssigned(t *testing.T) {
	sale := "Sale"
	rent := "Rent"
	summary := BuildSummary(SummaryInput{
		Deals: []StatusCount{
			{Status: "Reservado", ListingType: &sale, Count: 1},
			{Status: "Cerrado", ListingType: &rent, Count: 3},
		},
	})

	if got := summary.Sale.Deals["Reservado"]; got != 1 {
		t.Fatalf("sale.deals[Reservado] = %d, want 1", got)
	}
	if got := summary.Rent.Deals["Cerrado"]; got != 3 {
		t.Fatalf("rent.deals[Cerrado] = %d, want 3", got)
	}
}

func TestBuildSummaryEmptyInput(t *testing.T) {
	summary := BuildSummary(SummaryInput{})

	for name, m := range map[string]map[string]int{
		"sale.prospects": summary.Sale.Prospects,
		"sale.leads":     summary.Sale.Leads,
		"sale.deals":     summary.Sale.Deals,
		"rent.prospects": summary.Rent.Prospects,
		"rent.leads":     summary.Rent.Leads,
		"rent.deals":     summary.Rent.Deals,
	} {
		if m == nil {
			t.Fatalf("%s must be an initialized map", name)
		}
		if len(m) != 0 {
			t.Fatalf("%s must be empty, got %v", name, m)
		}
	}
}

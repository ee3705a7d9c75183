package domain

// SummaryInput carries the four grouped count result sets the summary is
// built from. The queries are independent and may run concurrently; the
// build itself is a pure fold over the rows.
type SummaryInput struct {
	Prospects []StatusCount
	Listings  []StatusCount // active, non-draft listings only
	Leads     []StatusCount // buyer-type listing contacts
	Deals     []StatusCount
}

// BuildSummary cross-tabulates the grouped counts into the two-track
// dashboard summary.
//
// Track classification is binary: a row whose listing type is exactly
// "Sale" lands in the sale track, anything else (including null) lands in
// rent. Prospect and listing rows accumulate additively into the shared
// prospects mapping, so a listing status that matches a prospect status
// stacks onto the same key. Lead and deal rows are assigned, not added;
// their statuses come from a single source each so no key is written twice.
// Lead rows without a listing carry a null listing type and are dropped.
func BuildSummary(in SummaryInput) OperacionesSummary {
	summary := OperacionesSummary{
		Sale: newTrackSummary(),
		Rent: newTrackSummary(),
	}

	for _, row := range in.Prospects {
		track(&summary, row.ListingType).Prospects[row.Status] += row.Count
	}
	for _, row := range in.Listings {
		track(&summary, row.ListingType).Prospects[row.Status] += row.Count
	}
	for _, row := range in.Leads {
		if row.ListingType == nil {
			continue
		}
		track(&summary, row.ListingType).Leads[row.Status] = row.Count
	}
	for _, row := range in.Deals {
		track(&summary, row.ListingType).Deals[row.Status] = row.Count
	}

	return summary
}

func newTrackSummary() TrackSummary {
	return TrackSummary{
		Prospects: make(map[string]int),
		Leads:     make(map[string]int),
		Deals:     make(map[string]int),
	}
}

func track(s *OperacionesSummary, listingType *string) *TrackSummary {
	if listingType != nil && ListingType(*listingType) == ListingTypeSale {
		return &s.Sale
	}
	return &s.Rent
}

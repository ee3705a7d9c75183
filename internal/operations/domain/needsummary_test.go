package domain

import "testing"

func intPtr(v int) *int       { return &v }
func i64Ptr(v int64) *int64   { return &v }
func strPtr(v string) *string { return &v }

func TestNeedCriteriaSummaryAllFields(t *testing.T) {
	criteria := NeedCriteria{
		PropertyType:    "piso",
		MinBedrooms:     intPtr(2),
		MinSquareMeters: intPtr(60),
		MinPrice:        i64Ptr(100000),
		MaxPrice:        i64Ptr(200000),
	}

	got := criteria.Summary()
	want := "piso, 2+ bedrooms, 60+ m², €100,000 - €200,000"
	if got != want {
		t.Fatalf("Summary() = %q, want %q", got, want)
	}
}

func TestNeedCriteriaSummaryEmpty(t *testing.T) {
	got := NeedCriteria{}.Summary()
	if got != "No specific requirements" {
		t.Fatalf("Summary() = %q, want fallback", got)
	}
}

func TestNeedCriteriaSummaryPriceClauses(t *testing.T) {
	cases := []struct {
		name     string
		criteria NeedCriteria
		want     string
	}{
		{
			name:     "only min price",
			criteria: NeedCriteria{MinPrice: i64Ptr(150000)},
			want:     "from €150,000",
		},
		{
			name:     "only max price",
			criteria: NeedCriteria{MaxPrice: i64Ptr(90000)},
			want:     "up to €90,000",
		},
		{
			name:     "property type only",
			criteria: NeedCriteria{PropertyType: "chalet"},
			want:     "chalet",
		},
		{
			name:     "bedrooms and surface without price",
			criteria: NeedCriteria{MinBedrooms: intPtr(3), MinSquareMeters: intPtr(120)},
			want:     "3+ bedrooms, 120+ m²",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.criteria.Summary(); got != tc.want {
				t.Fatalf("Summary() = %q, want %q", got, tc.want)
			}
		})
	}
}

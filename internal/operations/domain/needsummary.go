package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// noRequirements is returned when a prospect has no search criteria at all.
const noRequirements = "No specific requirements"

// NeedCriteria is a prospect's structured search criteria. All fields are
// optional; absent values are simply left out of the summary.
type NeedCriteria struct {
	PropertyType    string
	MinBedrooms     *int
	MinSquareMeters *int
	MinPrice        *int64
	MaxPrice        *int64
}

// Amounts are already in the tenant's display currency; only grouping
// separators are applied.
var euroPrinter = message.NewPrinter(language.English)

func formatEuro(amount int64) string {
	return euroPrinter.Sprintf("€%d", amount)
}

// Summary renders the criteria as a single comma-joined line in fixed
// field order: property type, bedrooms, surface, price clause.
func (n NeedCriteria) Summary() string {
	parts := make([]string, 0, 4)

	if n.PropertyType != "" {
		parts = append(parts, n.PropertyType)
	}
	if n.MinBedrooms != nil {
		parts = append(parts, fmt.Sprintf("%d+ bedrooms", *n.MinBedrooms))
	}
	if n.MinSquareMeters != nil {
		parts = append(parts, fmt.Sprintf("%d+ m²", *n.MinSquareMeters))
	}

	switch {
	case n.MinPrice != nil && n.MaxPrice != nil:
		parts = append(parts, fmt.Sprintf("%s - %s", formatEuro(*n.MinPrice), formatEuro(*n.MaxPrice)))
	case n.MinPrice != nil:
		parts = append(parts, "from "+formatEuro(*n.MinPrice))
	case n.MaxPrice != nil:
		parts = append(parts, "up to "+formatEuro(*n.MaxPrice))
	}

	if len(parts) == 0 {
		return noRequirements
	}
	return strings.Join(parts, ", ")
}

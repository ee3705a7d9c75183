package domain

import "math"

// RuleStatus is one evaluated rule with its completion flag attached.
type RuleStatus struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Category  string `json:"category"`
	Completed bool   `json:"isCompleted"`
}

// Bucket holds the evaluated rules of one importance level.
type Bucket struct {
	Completed      []RuleStatus `json:"completed"`
	Pending        []RuleStatus `json:"pending"`
	Total          int          `json:"total"`
	CompletedCount int          `json:"completedCount"`
}

// CompletionResult is the full checklist plus the publish gate.
type CompletionResult struct {
	Mandatory           Bucket `json:"mandatory"`
	Nth                 Bucket `json:"nth"`
	OverallCompleted    int    `json:"overallCompleted"`
	OverallTotal        int    `json:"overallTotal"`
	OverallPercentage   int    `json:"overallPercentage"`
	CanPublishToPortals bool   `json:"canPublishToPortals"`
}

func newBucket() Bucket {
	return Bucket{Completed: []RuleStatus{}, Pending: []RuleStatus{}}
}

// Calculate evaluates the fixed rule table against a listing view. It is
// pure: same listing in, same result out.
func Calculate(l Listing) CompletionResult {
	result := CompletionResult{
		Mandatory: newBucket(),
		Nth:       newBucket(),
	}

	for _, rule := range rules {
		status := RuleStatus{
			ID:        rule.ID,
			Label:     rule.Label,
			Category:  rule.Category,
			Completed: rule.Done(l),
		}

		bucket := &result.Nth
		if rule.Importance == ImportanceMandatory {
			bucket = &result.Mandatory
		}

		bucket.Total++
		if status.Completed {
			bucket.Completed = append(bucket.Completed, status)
			bucket.CompletedCount++
		} else {
			bucket.Pending = append(bucket.Pending, status)
		}
	}

	result.OverallCompleted = result.Mandatory.CompletedCount + result.Nth.CompletedCount
	result.OverallTotal = result.Mandatory.Total + result.Nth.Total
	if result.OverallTotal > 0 {
		result.OverallPercentage = int(math.Round(100 * float64(result.OverallCompleted) / float64(result.OverallTotal)))
	}
	result.CanPublishToPortals = len(result.Mandatory.Pending) == 0

	return result
}

// PendingMandatoryLabels lists the user-facing labels of the mandatory
// rules still pending; the publish service reports them when it refuses
// a listing.
func (r CompletionResult) PendingMandatoryLabels() []string {
	labels := make([]string, 0, len(r.Mandatory.Pending))
	for _, status := range r.Mandatory.Pending {
		labels = append(labels, status.Label)
	}
	return labels
}

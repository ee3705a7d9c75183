// Package transport defines the HTTP request shapes for the tasks module.
package transport

// UrgentTasksRequest is the query-string shape of the urgent tasks endpoint.
// A zero or missing workingDays falls back to the configured horizon.
type UrgentTasksRequest struct {
	WorkingDays int `form:"workingDays" validate:"omitempty,min=1,max=30"`
}

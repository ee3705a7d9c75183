// Package transport defines the HTTP request shapes for the publishing module.
package transport

// PublishRequest is the body of the publish endpoint.
type PublishRequest struct {
	Portal string `json:"portal" validate:"required,oneof=idealista fotocasa habitaclia pisos"`
}

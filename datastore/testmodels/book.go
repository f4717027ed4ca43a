package testmodels

import "github.com/go-openapi/strfmt"

type Book struct {

	// Store-assigned identifier.
	ID int64 `json:"id,omitempty"`

	// Title of the book.
	// Required: true
	Title *string `json:"title"`

	// Author of the book.
	Author string `json:"author,omitempty"`

	// A free-form description; never indexed.
	Description string `json:"description,omitempty"`

	// Timestamp when the book was published.
	// Format: date-time
	PublishedDate *strfmt.DateTime `json:"publishedDate,omitempty"`

	// Reader rating.
	Rating float64 `json:"rating,omitempty"`
}

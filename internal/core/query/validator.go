package query

import (
	"strings"

	"github.com/vietddude/audition/internal/core/domain"
)

// Violation names the offending criteria field and why it was rejected.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Message
}

// Validate checks all cross-field rules on the criteria and returns every
// violation found; rules are evaluated independently, never short-circuited.
// An empty result means the criteria is accepted.
func Validate(c domain.SearchCriteria) []Violation {
	var violations []Violation
	add := func(field, message string) {
		violations = append(violations, Violation{Field: field, Message: message})
	}

	if c.UserID != nil && *c.UserID < 1 {
		add("userId", "User id must be a positive integer")
	}

	pageProvided := c.Page != nil
	sizeProvided := c.Size != nil
	if pageProvided != sizeProvided {
		field := "page"
		if pageProvided {
			field = "size"
		}
		add(field, "Both page and size must be provided together")
	}
	if c.Page != nil && *c.Page < 1 {
		add("page", "Page number must be at least 1")
	}
	if c.Size != nil && (*c.Size < 1 || *c.Size > 100) {
		add("size", "Page size must be between 1 and 100")
	}

	if c.Sort != "" {
		switch c.Sort {
		case domain.SortByID, domain.SortByUserID, domain.SortByTitle:
		default:
			add("sort", "Sort field must be one of: id, userId, title")
		}
	}

	if c.Order != "" {
		if c.Sort == "" {
			add("sort", "Sort field is required when order is specified")
		}
		if !strings.EqualFold(c.Order, domain.OrderAsc) && !strings.EqualFold(c.Order, domain.OrderDesc) {
			add("order", "Order must be 'asc' or 'desc'")
		}
	}

	return violations
}

// JoinViolations renders violations as a single "; "-joined detail string.
func JoinViolations(violations []Violation) string {
	parts := make([]string, len(violations))
	for i, v := range violations {
		parts[i] = v.String()
	}
	return strings.Join(parts, "; ")
}

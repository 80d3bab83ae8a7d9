// Package query translates and validates post search criteria.
//
// The upstream provider speaks a fixed query vocabulary (userId,
// title_like, _page, _limit, _sort, _order, _embed); Translate maps a
// validated SearchCriteria onto it. Validate collects every cross-field
// violation so a caller sees all problems at once.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/vietddude/audition/internal/core/domain"
)

// Param is one upstream query parameter.
type Param struct {
	Key   string
	Value string
}

// Translate converts search criteria into the upstream query vocabulary.
// Parameter order is fixed so generated URLs are stable across calls.
// The criteria must already have passed Validate.
func Translate(c domain.SearchCriteria) []Param {
	params := make([]Param, 0, 6)

	if c.UserID != nil {
		params = append(params, Param{"userId", strconv.FormatInt(*c.UserID, 10)})
	}
	if title := c.TitleFilter(); title != "" {
		params = append(params, Param{"title_like", title})
	}
	if c.HasPagination() {
		params = append(params,
			Param{"_page", strconv.Itoa(*c.Page)},
			Param{"_limit", strconv.Itoa(*c.Size)},
		)
	}
	if c.Sort != "" {
		order := c.Order
		if order == "" {
			order = domain.OrderAsc
		}
		params = append(params,
			Param{"_sort", c.Sort},
			Param{"_order", order},
		)
	}

	return params
}

// Encode renders params as a query string, preserving their order.
func Encode(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

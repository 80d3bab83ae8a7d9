package query

import (
	"testing"

	"github.com/vietddude/audition/internal/core/domain"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		criteria domain.SearchCriteria
		want     string
	}{
		{
			name:     "empty criteria emits nothing",
			criteria: domain.SearchCriteria{},
			want:     "",
		},
		{
			name:     "user id only",
			criteria: domain.SearchCriteria{UserID: int64Ptr(1)},
			want:     "userId=1",
		},
		{
			name:     "title filter is trimmed",
			criteria: domain.SearchCriteria{TitleContains: "  sunt  "},
			want:     "title_like=sunt",
		},
		{
			name:     "blank title is omitted",
			criteria: domain.SearchCriteria{TitleContains: "   "},
			want:     "",
		},
		{
			name:     "pagination pair without sort",
			criteria: domain.SearchCriteria{Page: intPtr(1), Size: intPtr(10)},
			want:     "_page=1&_limit=10",
		},
		{
			name:     "sort defaults order to asc",
			criteria: domain.SearchCriteria{Sort: domain.SortByTitle},
			want:     "_sort=title&_order=asc",
		},
		{
			name:     "explicit order is preserved",
			criteria: domain.SearchCriteria{Sort: domain.SortByID, Order: domain.OrderDesc},
			want:     "_sort=id&_order=desc",
		},
		{
			name: "all fields in stable order",
			criteria: domain.SearchCriteria{
				UserID:        int64Ptr(2),
				TitleContains: "facere",
				Page:          intPtr(3),
				Size:          intPtr(25),
				Sort:          domain.SortByUserID,
				Order:         domain.OrderAsc,
			},
			want: "userId=2&title_like=facere&_page=3&_limit=25&_sort=userId&_order=asc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(Translate(tt.criteria))
			if got != tt.want {
				t.Errorf("Translate(%+v) = %q, want %q", tt.criteria, got, tt.want)
			}
		})
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	c := domain.SearchCriteria{
		UserID: int64Ptr(1),
		Page:   intPtr(1),
		Size:   intPtr(10),
		Sort:   domain.SortByID,
	}

	first := Encode(Translate(c))
	for i := 0; i < 10; i++ {
		if got := Encode(Translate(c)); got != first {
			t.Fatalf("translation not deterministic: %q vs %q", got, first)
		}
	}
}

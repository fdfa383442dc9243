package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/MKhiriev/veepo/models"
)

// validateProviderUpdate validates a profile save.
//
// Default validated fields: UserID, URLs, State.
func (v *DomainValidator) validateProviderUpdate(ctx context.Context, p models.ProviderUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldURLs, FieldState}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if p.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldURLs:
			for _, link := range []*string{p.WebsiteURL, p.InstagramURL, p.AvatarURL, p.CoverImageURL} {
				if link != nil && *link != "" && !isHTTPURL(*link) {
					return ErrInvalidURL
				}
			}
		case FieldState:
			if p.State != nil && !isStateCode(*p.State) {
				return ErrInvalidState
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProviderFilter validates directory query parameters.
//
// Default validated fields: State, Sort.
func (v *DomainValidator) validateProviderFilter(ctx context.Context, filter models.ProviderFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldState, FieldSort}
	}

	for _, f := range fields {
		switch f {
		case FieldState:
			if !isStateCode(filter.State) {
				return ErrInvalidState
			}
		case FieldSort:
			switch filter.SortBy {
			case models.ProviderSortNewest, models.ProviderSortRating, models.ProviderSortRanking:
			default:
				return ErrInvalidSort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isStateCode accepts an empty value or a two-letter UF code.
func isStateCode(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != 2 {
		return false
	}
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

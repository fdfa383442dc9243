package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/veepo/internal/service"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

// multipartOverhead is the slack allowed above the image limit for the
// multipart envelope.
const multipartOverhead = 1 << 20

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// requestUserID returns the id stored by the auth middleware. Routes using it
// are always mounted behind auth, so a miss is a wiring bug.
func requestUserID(r *http.Request) string {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}

// clientKey identifies an anonymous caller. RealIP has already replaced
// RemoteAddr with the forwarded address when one is present.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func parseDate(query, name string) (*time.Time, error) {
	if query == "" {
		return nil, nil
	}
	day, err := time.Parse(models.DateLayout, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be %s", ErrInvalidQuery, name, models.DateLayout)
	}
	return &day, nil
}

// parseDateRange reads start_date and end_date. Missing bounds stay zero and
// are filled in by the dashboard service.
func parseDateRange(r *http.Request) (models.DateRange, error) {
	var dateRange models.DateRange

	start, err := parseDate(r.URL.Query().Get("start_date"), "start_date")
	if err != nil {
		return dateRange, err
	}
	end, err := parseDate(r.URL.Query().Get("end_date"), "end_date")
	if err != nil {
		return dateRange, err
	}

	if start != nil {
		dateRange.Start = *start
	}
	if end != nil {
		dateRange.End = *end
	}
	return dateRange, nil
}

func parseLimit(r *http.Request) (uint64, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be a positive integer", ErrInvalidQuery)
	}
	return limit, nil
}

func parseStatuses(raw string) []models.FeedbackStatus {
	if raw == "" {
		return nil
	}
	var statuses []models.FeedbackStatus
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			statuses = append(statuses, models.FeedbackStatus(part))
		}
	}
	return statuses
}

// readUpload returns the "file" part of a multipart request. The caller must
// close the returned closer.
func readUpload(w http.ResponseWriter, r *http.Request) (service.FileUpload, func() error, error) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxImageSize+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return service.FileUpload{}, nil, service.ErrImageTooLarge
		case errors.Is(err, http.ErrMissingFile):
			return service.FileUpload{}, nil, ErrMissingFile
		default:
			return service.FileUpload{}, nil, fmt.Errorf("%w: %w", ErrMissingFile, err)
		}
	}

	return service.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, file.Close, nil
}

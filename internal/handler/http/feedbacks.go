package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
)

func (h *Handler) listFeedbacks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, err := parseDate(query.Get("start_date"), "start_date")
	if err != nil {
		writeServiceError(w, r, "Handler.listFeedbacks", err)
		return
	}
	end, err := parseDate(query.Get("end_date"), "end_date")
	if err != nil {
		writeServiceError(w, r, "Handler.listFeedbacks", err)
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		writeServiceError(w, r, "Handler.listFeedbacks", err)
		return
	}

	list, err := h.services.FeedbackService.ListFeedbacks(r.Context(), models.FeedbackFilter{
		UserID:    requestUserID(r),
		Statuses:  parseStatuses(query.Get("status")),
		StartDate: start,
		EndDate:   end,
		Limit:     limit,
	})
	if err != nil {
		writeServiceError(w, r, "Handler.listFeedbacks", err)
		return
	}
	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) recentFeedbacks(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		writeServiceError(w, r, "Handler.recentFeedbacks", err)
		return
	}

	feedbacks, err := h.services.FeedbackService.RecentFeedbacks(r.Context(), requestUserID(r), limit)
	if err != nil {
		writeServiceError(w, r, "Handler.recentFeedbacks", err)
		return
	}
	utils.WriteJSON(w, feedbacks, http.StatusOK)
}

func (h *Handler) feedbackMap(w http.ResponseWriter, r *http.Request) {
	points, err := h.services.FeedbackService.MapPoints(r.Context(), requestUserID(r))
	if err != nil {
		writeServiceError(w, r, "Handler.feedbackMap", err)
		return
	}
	utils.WriteJSON(w, points, http.StatusOK)
}

func (h *Handler) updateFeedbackStatus(w http.ResponseWriter, r *http.Request) {
	var update models.FeedbackStatusUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeServiceError(w, r, "Handler.updateFeedbackStatus", err)
		return
	}

	h.changeFeedback(w, r, "Handler.updateFeedbackStatus", func(ctx context.Context, id, userID string) (models.Feedback, error) {
		return h.services.FeedbackService.UpdateStatus(ctx, id, userID, update.Status)
	})
}

func (h *Handler) archiveFeedback(w http.ResponseWriter, r *http.Request) {
	h.changeFeedback(w, r, "Handler.archiveFeedback", h.services.FeedbackService.Archive)
}

func (h *Handler) unarchiveFeedback(w http.ResponseWriter, r *http.Request) {
	h.changeFeedback(w, r, "Handler.unarchiveFeedback", h.services.FeedbackService.Unarchive)
}

func (h *Handler) changeFeedback(w http.ResponseWriter, r *http.Request, funcName string,
	change func(ctx context.Context, id, userID string) (models.Feedback, error)) {
	feedback, err := change(r.Context(), chi.URLParam(r, "id"), requestUserID(r))
	if err != nil {
		writeServiceError(w, r, funcName, err)
		return
	}
	utils.WriteJSON(w, feedback, http.StatusOK)
}

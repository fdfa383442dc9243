package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/veepo/internal/config"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/utils"
	"github.com/MKhiriev/veepo/models"
	"github.com/go-resty/resty/v2"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewAPIClient constructs the REST implementation of [APIClient]. The base
// URL is normalised from cfg.HTTPAddress; a scheme-less host gets http://.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL
// with a host.
func NewAPIClient(cfg config.ClientAdapter, log *logger.Logger) (APIClient, error) {
	baseURL := utils.NormalizeBaseURL(cfg.HTTPAddress)
	if baseURL == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid adapter http address %q", cfg.HTTPAddress)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: log,
	}, nil
}

// SetToken stores token (whitespace-trimmed) for the Authorization header of
// all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	h.token = strings.TrimSpace(token)
	h.mu.Unlock()
}

// Token returns the bearer token currently held, or "".
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// SignUp posts credentials to POST /api/auth/signup. The bearer token from
// the Authorization response header is stored via SetToken.
func (h *httpAPIClient) SignUp(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/signup", "signup", credentials)
}

// Login posts credentials to POST /api/auth/login. The bearer token from the
// Authorization response header is stored via SetToken.
func (h *httpAPIClient) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", "login", credentials)
}

func (h *httpAPIClient) authenticate(ctx context.Context, path, op string, credentials models.Credentials) (models.Session, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&user).
		Post(path)
	if err != nil {
		return models.Session{}, requestError(op+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("%s parse bearer token: %w", op, err)
	}

	h.SetToken(token)
	return models.Session{User: user, AccessToken: token}, nil
}

func (h *httpAPIClient) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	err := h.do(ctx, "current user", resty.MethodGet, "/api/auth/user", nil, &user)
	return user, err
}

func (h *httpAPIClient) UpdateUser(ctx context.Context, update models.UserMetadataUpdate) (models.User, error) {
	var user models.User
	err := h.do(ctx, "update user", resty.MethodPatch, "/api/auth/user", update, &user)
	return user, err
}

func (h *httpAPIClient) ChangePassword(ctx context.Context, change models.PasswordChange) error {
	return h.do(ctx, "change password", resty.MethodPut, "/api/auth/password", change, nil)
}

func (h *httpAPIClient) ListQRCodes(ctx context.Context) ([]models.QRCode, error) {
	var qrCodes []models.QRCode
	err := h.do(ctx, "list qr codes", resty.MethodGet, "/api/qr-codes", nil, &qrCodes)
	return qrCodes, err
}

func (h *httpAPIClient) CreateQRCode(ctx context.Context, qrCode models.QRCodeCreate) (models.QRCode, error) {
	var created models.QRCode
	err := h.do(ctx, "create qr code", resty.MethodPost, "/api/qr-codes", qrCode, &created)
	return created, err
}

func (h *httpAPIClient) UpdateQRCode(ctx context.Context, update models.QRCodeUpdate) (models.QRCode, error) {
	var updated models.QRCode
	err := h.do(ctx, "update qr code", resty.MethodPatch, "/api/qr-codes/"+url.PathEscape(update.ID), update, &updated)
	return updated, err
}

func (h *httpAPIClient) DeleteQRCode(ctx context.Context, id string) error {
	return h.do(ctx, "delete qr code", resty.MethodDelete, "/api/qr-codes/"+url.PathEscape(id), nil, nil)
}

// ListFeedbacks calls GET /api/feedbacks. Statuses are sent comma separated
// and dates as YYYY-MM-DD.
func (h *httpAPIClient) ListFeedbacks(ctx context.Context, filter models.FeedbackFilter) (models.FeedbackList, error) {
	var list models.FeedbackList

	query := url.Values{}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		query.Set("status", strings.Join(statuses, ","))
	}
	if filter.StartDate != nil {
		query.Set("start_date", filter.StartDate.Format(models.DateLayout))
	}
	if filter.EndDate != nil {
		query.Set("end_date", filter.EndDate.Format(models.DateLayout))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.FormatUint(filter.Limit, 10))
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&list).
		Get("/api/feedbacks")
	if err != nil {
		return list, requestError("list feedbacks request", err)
	}
	return list, mapHTTPError(resp)
}

func (h *httpAPIClient) RecentFeedbacks(ctx context.Context, limit int) ([]models.Feedback, error) {
	var feedbacks []models.Feedback

	resp, err := h.authedRequest(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&feedbacks).
		Get("/api/feedbacks/recent")
	if err != nil {
		return nil, requestError("recent feedbacks request", err)
	}
	return feedbacks, mapHTTPError(resp)
}

func (h *httpAPIClient) FeedbackMap(ctx context.Context) ([]models.FeedbackMapPoint, error) {
	var points []models.FeedbackMapPoint
	err := h.do(ctx, "feedback map", resty.MethodGet, "/api/feedbacks/map", nil, &points)
	return points, err
}

func (h *httpAPIClient) UpdateFeedbackStatus(ctx context.Context, id string, status models.FeedbackStatus) (models.Feedback, error) {
	var feedback models.Feedback
	err := h.do(ctx, "update feedback status", resty.MethodPatch, "/api/feedbacks/"+url.PathEscape(id)+"/status",
		models.FeedbackStatusUpdate{Status: status}, &feedback)
	return feedback, err
}

func (h *httpAPIClient) ArchiveFeedback(ctx context.Context, id string) (models.Feedback, error) {
	var feedback models.Feedback
	err := h.do(ctx, "archive feedback", resty.MethodPost, "/api/feedbacks/"+url.PathEscape(id)+"/archive", nil, &feedback)
	return feedback, err
}

func (h *httpAPIClient) UnarchiveFeedback(ctx context.Context, id string) (models.Feedback, error) {
	var feedback models.Feedback
	err := h.do(ctx, "unarchive feedback", resty.MethodPost, "/api/feedbacks/"+url.PathEscape(id)+"/unarchive", nil, &feedback)
	return feedback, err
}

func (h *httpAPIClient) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := h.do(ctx, "list campaigns", resty.MethodGet, "/api/campaigns", nil, &campaigns)
	return campaigns, err
}

func (h *httpAPIClient) UpdateCampaign(ctx context.Context, input models.CampaignInput) (models.Campaign, error) {
	var campaign models.Campaign
	err := h.do(ctx, "update campaign", resty.MethodPatch, "/api/campaigns/"+url.PathEscape(input.ID), input, &campaign)
	return campaign, err
}

func (h *httpAPIClient) DeleteCampaign(ctx context.Context, id string) error {
	return h.do(ctx, "delete campaign", resty.MethodDelete, "/api/campaigns/"+url.PathEscape(id), nil, nil)
}

func (h *httpAPIClient) Notifications(ctx context.Context) (models.NotificationList, error) {
	var list models.NotificationList
	err := h.do(ctx, "notifications", resty.MethodGet, "/api/notifications", nil, &list)
	return list, err
}

func (h *httpAPIClient) MarkNotificationRead(ctx context.Context, id string) error {
	return h.do(ctx, "mark notification read", resty.MethodPost, "/api/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

func (h *httpAPIClient) MarkAllNotificationsRead(ctx context.Context) error {
	return h.do(ctx, "mark all notifications read", resty.MethodPost, "/api/notifications/read-all", nil, nil)
}

func (h *httpAPIClient) DashboardStats(ctx context.Context, dateRange models.DateRange) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := h.getRange(ctx, "dashboard stats", "/api/dashboard/stats", dateRange, &stats)
	return stats, err
}

func (h *httpAPIClient) NPSTrend(ctx context.Context, dateRange models.DateRange) ([]models.NPSPoint, error) {
	var points []models.NPSPoint
	err := h.getRange(ctx, "nps trend", "/api/dashboard/nps-trend", dateRange, &points)
	return points, err
}

func (h *httpAPIClient) BenchmarkComparison(ctx context.Context, dateRange models.DateRange) (models.BenchmarkComparison, error) {
	var comparison models.BenchmarkComparison
	err := h.getRange(ctx, "benchmark comparison", "/api/dashboard/comparison", dateRange, &comparison)
	return comparison, err
}

// ListProviders reads the public directory. Empty filter fields are not sent.
func (h *httpAPIClient) ListProviders(ctx context.Context, filter models.ProviderFilter) ([]models.Provider, error) {
	var providers []models.Provider

	query := url.Values{}
	for name, value := range map[string]string{
		"search":  strings.TrimSpace(filter.Search),
		"state":   filter.State,
		"city":    filter.City,
		"segment": filter.Segment,
		"sort_by": string(filter.SortBy),
	} {
		if value != "" {
			query.Set(name, value)
		}
	}

	resp, err := h.authedRequest(ctx).
		SetQueryParamsFromValues(query).
		SetResult(&providers).
		Get("/api/providers")
	if err != nil {
		return nil, requestError("list providers request", err)
	}
	return providers, mapHTTPError(resp)
}

func (h *httpAPIClient) Profile(ctx context.Context) (models.Provider, error) {
	var provider models.Provider
	err := h.do(ctx, "profile", resty.MethodGet, "/api/profile", nil, &provider)
	return provider, err
}

func (h *httpAPIClient) SaveProfile(ctx context.Context, update models.ProviderUpdate) (models.Provider, error) {
	var provider models.Provider
	err := h.do(ctx, "save profile", resty.MethodPut, "/api/profile", update, &provider)
	return provider, err
}

func (h *httpAPIClient) BillingPlans(ctx context.Context) ([]models.BillingPlan, error) {
	var plans []models.BillingPlan
	err := h.do(ctx, "billing plans", resty.MethodGet, "/api/billing/plans", nil, &plans)
	return plans, err
}

func (h *httpAPIClient) Checkout(ctx context.Context, priceID string) (models.CheckoutSession, error) {
	var session models.CheckoutSession
	err := h.do(ctx, "checkout", resty.MethodPost, "/api/billing/checkout", models.CheckoutRequest{PriceID: priceID}, &session)
	return session, err
}

func (h *httpAPIClient) States(ctx context.Context) []models.State {
	var states []models.State
	if err := h.do(ctx, "geo states", resty.MethodGet, "/api/geo/states", nil, &states); err != nil {
		h.logger.Err(err).Str("func", "httpAPIClient.States").Msg("falling back to empty state list")
		return []models.State{}
	}
	return states
}

func (h *httpAPIClient) Cities(ctx context.Context, uf string) []models.City {
	if strings.TrimSpace(uf) == "" {
		return []models.City{}
	}

	var cities []models.City
	if err := h.do(ctx, "geo cities", resty.MethodGet, "/api/geo/states/"+url.PathEscape(uf)+"/cities", nil, &cities); err != nil {
		h.logger.Err(err).Str("func", "httpAPIClient.Cities").Msg("falling back to empty city list")
		return []models.City{}
	}
	return cities
}

func (h *httpAPIClient) CNAEClasses(ctx context.Context) []models.CNAEClass {
	var classes []models.CNAEClass
	if err := h.do(ctx, "geo cnae classes", resty.MethodGet, "/api/geo/cnae-classes", nil, &classes); err != nil {
		h.logger.Err(err).Str("func", "httpAPIClient.CNAEClasses").Msg("falling back to empty cnae list")
		return []models.CNAEClass{}
	}
	return classes
}

// Version calls GET /api/version, which answers with plain text.
func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", requestError("version request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpAPIClient) getRange(ctx context.Context, op, path string, dateRange models.DateRange, result any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("start_date", dateRange.Start.Format(models.DateLayout)).
		SetQueryParam("end_date", dateRange.End.Format(models.DateLayout)).
		SetResult(result).
		Get(path)
	if err != nil {
		return requestError(op+" request", err)
	}
	return mapHTTPError(resp)
}

// do sends an authenticated request with an optional JSON body and decodes a
// 2xx JSON answer into result when result is non-nil.
func (h *httpAPIClient) do(ctx context.Context, op, method, path string, body, result any) error {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return requestError(op+" request", err)
	}
	return mapHTTPError(resp)
}

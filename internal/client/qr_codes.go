package client

import (
	"context"

	"github.com/MKhiriev/veepo/internal/adapter"
	"github.com/MKhiriev/veepo/internal/logger"
	"github.com/MKhiriev/veepo/internal/realtime"
	"github.com/MKhiriev/veepo/internal/resource"
	"github.com/MKhiriev/veepo/internal/session"
	"github.com/MKhiriev/veepo/models"
)

// QRCodes is the QR code list of the signed-in owner.
type QRCodes struct {
	List *resource.LiveList[models.QRCode]

	res      *resource.Resource[[]models.QRCode]
	api      adapter.APIClient
	hub      *realtime.Hub
	sessions resource.SessionSource
}

func NewQRCodes(ctx context.Context, api adapter.APIClient, hub *realtime.Hub, sessions resource.SessionSource, log *logger.Logger) *QRCodes {
	q := &QRCodes{
		List:     resource.NewLiveList[models.QRCode](log),
		api:      api,
		hub:      hub,
		sessions: sessions,
	}
	q.res = resource.New(ctx, "qr_codes", sessions, func(ctx context.Context, _ session.Snapshot) ([]models.QRCode, error) {
		return api.ListQRCodes(ctx)
	}, log)
	feedList(q.res, q.List, itself[models.QRCode])

	return q
}

func (q *QRCodes) Load(ctx context.Context) error {
	q.res.Refetch()
	return watch(ctx, q.hub, q.sessions, models.EntityQRCodes, q.List)
}

func (q *QRCodes) State() resource.State[[]models.QRCode] {
	return q.res.State()
}

func (q *QRCodes) Subscribe(fn func(resource.State[[]models.QRCode])) func() {
	return q.res.Subscribe(fn)
}

func (q *QRCodes) Refresh() {
	q.res.Refetch()
}

// Create adds a QR code; the server fills in its target URL.
func (q *QRCodes) Create(ctx context.Context, name, description string) (models.QRCode, error) {
	created, err := q.api.CreateQRCode(ctx, models.QRCodeCreate{Name: name, Description: description})
	if err != nil {
		return created, err
	}
	q.List.ApplyInsert(created)
	return created, nil
}

// ToggleActive flips is_active of the QR code with id.
func (q *QRCodes) ToggleActive(ctx context.Context, id string) error {
	current, ok := q.List.Get(id)
	if !ok {
		return ErrUnknownItem
	}

	active := !current.IsActive
	updated, err := q.api.UpdateQRCode(ctx, models.QRCodeUpdate{ID: id, IsActive: &active})
	if err != nil {
		return err
	}
	q.List.ApplyInsert(updated)
	return nil
}

func (q *QRCodes) Delete(ctx context.Context, id string) error {
	if err := q.api.DeleteQRCode(ctx, id); err != nil {
		return err
	}
	q.List.ApplyDelete(id)
	return nil
}

func (q *QRCodes) Close() {
	q.res.Close()
}

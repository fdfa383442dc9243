package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/veepo/models"
)

func newTestCampaignRepo(t *testing.T) (CampaignRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &campaignRepository{DB: newDBFromSQL(db)}, mock
}

func campaignRows(now time.Time, qrName any) *sqlmock.Rows {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	return sqlmock.NewRows([]string{"id", "user_id", "qr_code_id", "name", "name", "description", "start_date", "end_date", "is_active", "created_at"}).
		AddRow("c-1", "u-1", "qr-1", qrName, "Inverno", "", start, start.AddDate(0, 1, 0), true, now)
}

func TestListCampaigns(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM campaigns c LEFT JOIN qr_codes q ON q.id = c.qr_code_id WHERE c.user_id = $1 ORDER BY c.created_at DESC")).
		WithArgs("u-1").
		WillReturnRows(campaignRows(time.Now(), "Mesa 1"))

	list, err := repo.ListCampaigns(testContext(), "u-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].QRCodeName)
	assert.Equal(t, "Mesa 1", *list[0].QRCodeName)
	require.NotNil(t, list[0].EndDate)
	assert.Equal(t, "2026-07-01", list[0].EndDate.Format(models.DateLayout))
}

func TestCreateCampaign(t *testing.T) {
	qrID := "qr-1"

	t.Run("created and read back", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)

		mock.ExpectExec("INSERT INTO campaigns").
			WithArgs("c-1", "u-1", "qr-1", "Inverno", "", nil, nil, true).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE c.user_id = $1 AND c.id = $2")).
			WithArgs("u-1", "c-1").
			WillReturnRows(campaignRows(time.Now(), "Mesa 1"))

		c, err := repo.CreateCampaign(testContext(), models.Campaign{
			ID: "c-1", UserID: "u-1", QRCodeID: &qrID, Name: "Inverno", IsActive: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "c-1", c.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown qr code", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)

		mock.ExpectExec("INSERT INTO campaigns").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		_, err := repo.CreateCampaign(testContext(), models.Campaign{ID: "c-1", UserID: "u-1", QRCodeID: &qrID, Name: "x"})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})
}

func TestUpdateCampaign(t *testing.T) {
	t.Run("clears qr code", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE campaigns SET qr_code_id = $1, is_active = $2 WHERE id = $3 AND user_id = $4")).
			WithArgs(nil, false, "c-1", "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("FROM campaigns c").
			WithArgs("u-1", "c-1").
			WillReturnRows(campaignRows(time.Now(), nil))

		c, err := repo.UpdateCampaign(testContext(), models.CampaignInput{
			ID: "c-1", UserID: "u-1", QRCodeID: strPtr(""), IsActive: boolPtr(false),
		})
		require.NoError(t, err)
		assert.Nil(t, c.QRCodeName)
	})

	t.Run("not owned", func(t *testing.T) {
		repo, mock := newTestCampaignRepo(t)

		mock.ExpectExec("UPDATE campaigns").WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.UpdateCampaign(testContext(), models.CampaignInput{ID: "c-1", UserID: "u-2", Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})
}

func TestDeleteCampaign(t *testing.T) {
	repo, mock := newTestCampaignRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteCampaign)).
		WithArgs("c-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCampaign(testContext(), "c-1", "u-1")
	assert.ErrorIs(t, err, ErrCampaignNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

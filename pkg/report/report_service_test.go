package report

import (
	"context"
	"testing"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeReportRepo struct {
	reports map[string]*entities.Report
}

var _ ReportRepository = (*fakeReportRepo)(nil)

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*entities.Report)}
}

func (f *fakeReportRepo) CreateReport(_ context.Context, report *entities.Report) error {
	f.reports[report.ID.String()] = report
	return nil
}

func (f *fakeReportRepo) GetReportByID(_ context.Context, id string) (*entities.Report, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *report
	return &cp, nil
}

func (f *fakeReportRepo) GetReports(_ context.Context, status string) ([]*entities.Report, error) {
	var result []*entities.Report
	for _, r := range f.reports {
		if status == "" || r.Status == status {
			cp := *r
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (f *fakeReportRepo) UpdateReport(_ context.Context, report *entities.Report) error {
	f.reports[report.ID.String()] = report
	return nil
}

func TestCreateReport_TargetRequired(t *testing.T) {
	t.Parallel()
	service := NewReportService(newFakeReportRepo())

	_, err := service.CreateReport(context.Background(), domain.CreateReportRequest{
		ReportType: "user",
		Reason:     "spam listings",
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrReportTargetMissing)
}

func TestCreateReport_AgainstDonation(t *testing.T) {
	t.Parallel()
	repo := newFakeReportRepo()
	service := NewReportService(repo)

	reporterID := uuid.NewString()
	donationID := uuid.NewString()

	res, err := service.CreateReport(context.Background(), domain.CreateReportRequest{
		ReportType: "donation",
		DonationID: donationID,
		Reason:     "expired food listed as fresh",
	}, reporterID)
	require.NoError(t, err)

	assert.Equal(t, domain.ReportStatusPending, res.Status)
	assert.Equal(t, reporterID, res.ReporterID)
	assert.Equal(t, donationID, res.DonationID)
	assert.Empty(t, res.ReportedUserID)
	assert.Len(t, repo.reports, 1)
}

func TestCreateReport_InvalidUUIDs(t *testing.T) {
	t.Parallel()
	service := NewReportService(newFakeReportRepo())
	ctx := context.Background()

	_, err := service.CreateReport(ctx, domain.CreateReportRequest{
		ReportType:     "user",
		ReportedUserID: uuid.NewString(),
		Reason:         "abuse",
	}, "not-a-uuid")
	require.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = service.CreateReport(ctx, domain.CreateReportRequest{
		ReportType:     "user",
		ReportedUserID: "not-a-uuid",
		Reason:         "abuse",
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrParseUUID)
}

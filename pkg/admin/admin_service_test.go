package admin

import (
	"context"
	"testing"
	"time"

	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/pkg/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAdminRepo struct {
	metrics map[string]*entities.DailyMetrics
	orgs    map[string]*entities.Organization
	users   map[string]*entities.User
}

var _ AdminRepository = (*fakeAdminRepo)(nil)

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{
		metrics: make(map[string]*entities.DailyMetrics),
		orgs:    make(map[string]*entities.Organization),
		users:   make(map[string]*entities.User),
	}
}

func (f *fakeAdminRepo) GetMetricsByDate(_ context.Context, date time.Time) (*entities.DailyMetrics, error) {
	m, ok := f.metrics[date.Format("2006-01-02")]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeAdminRepo) CreateOrganization(_ context.Context, org *entities.Organization) error {
	f.orgs[org.ID.String()] = org
	return nil
}

func (f *fakeAdminRepo) GetOrganizationByID(_ context.Context, id string) (*entities.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *org
	return &cp, nil
}

func (f *fakeAdminRepo) GetOrganizations(_ context.Context) ([]*entities.Organization, error) {
	var result []*entities.Organization
	for _, org := range f.orgs {
		cp := *org
		result = append(result, &cp)
	}
	return result, nil
}

func (f *fakeAdminRepo) UpdateOrganization(_ context.Context, org *entities.Organization) error {
	f.orgs[org.ID.String()] = org
	return nil
}

func (f *fakeAdminRepo) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeAdminRepo) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

type fakeReportRepo struct {
	reports map[string]*entities.Report
}

var _ report.ReportRepository = (*fakeReportRepo)(nil)

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{reports: make(map[string]*entities.Report)}
}

func (f *fakeReportRepo) CreateReport(_ context.Context, r *entities.Report) error {
	f.reports[r.ID.String()] = r
	return nil
}

func (f *fakeReportRepo) GetReportByID(_ context.Context, id string) (*entities.Report, error) {
	r, ok := f.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
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

func (f *fakeReportRepo) UpdateReport(_ context.Context, r *entities.Report) error {
	f.reports[r.ID.String()] = r
	return nil
}

func newTestService() (AdminService, *fakeAdminRepo, *fakeReportRepo) {
	adminRepo := newFakeAdminRepo()
	reportRepo := newFakeReportRepo()
	return NewAdminService(adminRepo, reportRepo), adminRepo, reportRepo
}

func TestGetTodayMetrics_ZeroValuedDayWhenEmpty(t *testing.T) {
	t.Parallel()
	service, _, _ := newTestService()

	metrics, err := service.GetTodayMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Now().Truncate(24*time.Hour).Format("2006-01-02"), metrics.Date)
	assert.Zero(t, metrics.FoodSavedKg)
	assert.Zero(t, metrics.PeopleServed)
}

func TestGetTodayMetrics_ReturnsRecordedDay(t *testing.T) {
	t.Parallel()
	service, adminRepo, _ := newTestService()

	today := time.Now().Truncate(24 * time.Hour)
	adminRepo.metrics[today.Format("2006-01-02")] = &entities.DailyMetrics{
		Date:                 today,
		FoodSavedKg:          42.5,
		PeopleServed:         34,
		EmissionsPreventedKg: 106.25,
	}

	metrics, err := service.GetTodayMetrics(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 42.5, metrics.FoodSavedKg, 1e-9)
	assert.Equal(t, 34, metrics.PeopleServed)
}

func TestUpdateReportStatus_PendingOnly(t *testing.T) {
	t.Parallel()
	service, _, reportRepo := newTestService()
	ctx := context.Background()
	adminID := uuid.NewString()

	err := service.UpdateReportStatus(ctx, uuid.NewString(), domain.UpdateReportRequest{Action: "resolve"}, adminID)
	require.ErrorIs(t, err, domain.ErrReportNotFound)

	rep := &entities.Report{ID: uuid.New(), Status: domain.ReportStatusPending}
	require.NoError(t, reportRepo.CreateReport(ctx, rep))

	err = service.UpdateReportStatus(ctx, rep.ID.String(), domain.UpdateReportRequest{Action: "escalate"}, adminID)
	require.ErrorIs(t, err, domain.ErrInvalidReportAction)

	require.NoError(t, service.UpdateReportStatus(ctx, rep.ID.String(), domain.UpdateReportRequest{Action: "resolve"}, adminID))

	stored := reportRepo.reports[rep.ID.String()]
	assert.Equal(t, domain.ReportStatusResolved, stored.Status)
	require.NotNil(t, stored.ResolvedAt)
	require.NotNil(t, stored.ResolvedBy)
	assert.Equal(t, adminID, stored.ResolvedBy.String())

	// a handled report cannot be handled again
	err = service.UpdateReportStatus(ctx, rep.ID.String(), domain.UpdateReportRequest{Action: "dismiss"}, adminID)
	require.ErrorIs(t, err, domain.ErrReportNotPending)
}

func TestOrganizationModeration(t *testing.T) {
	t.Parallel()
	service, adminRepo, _ := newTestService()
	ctx := context.Background()
	adminID := uuid.NewString()

	res, err := service.RegisterOrganization(ctx, domain.CreateOrganizationRequest{
		Name:          "Food Rescue SG",
		Type:          "ngo",
		ContactPerson: "Mei Lin",
		Email:         "hello@foodrescue.test",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.OrganizationStatusPending, res.Status)

	err = service.UpdateOrganizationStatus(ctx, uuid.NewString(), domain.UpdateOrganizationRequest{Status: domain.OrganizationStatusApproved}, adminID)
	require.ErrorIs(t, err, domain.ErrOrganizationNotFound)

	require.NoError(t, service.UpdateOrganizationStatus(ctx, res.ID, domain.UpdateOrganizationRequest{Status: domain.OrganizationStatusApproved}, adminID))

	stored := adminRepo.orgs[res.ID]
	assert.Equal(t, domain.OrganizationStatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedAt)

	// review is a one-shot decision
	err = service.UpdateOrganizationStatus(ctx, res.ID, domain.UpdateOrganizationRequest{Status: domain.OrganizationStatusRejected}, adminID)
	require.ErrorIs(t, err, domain.ErrOrganizationNotPending)
}

func TestVerifyAndFlagUser(t *testing.T) {
	t.Parallel()
	service, adminRepo, _ := newTestService()
	ctx := context.Background()
	adminID := uuid.NewString()

	err := service.VerifyUser(ctx, uuid.NewString(), adminID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	user := &entities.User{ID: uuid.New(), Name: "Ravi", Role: domain.RoleDonor}
	adminRepo.users[user.ID.String()] = user

	require.NoError(t, service.VerifyUser(ctx, user.ID.String(), adminID))
	stored := adminRepo.users[user.ID.String()]
	assert.True(t, stored.IsVerified)
	require.NotNil(t, stored.VerifiedBy)
	assert.Equal(t, adminID, stored.VerifiedBy.String())

	require.NoError(t, service.FlagUser(ctx, user.ID.String()))
	assert.True(t, adminRepo.users[user.ID.String()].IsFlagged)
}

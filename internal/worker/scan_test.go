package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"siteguard/internal/mutator"
	"siteguard/internal/worker"
	"siteguard/pkg/dispatch"
	mockdispatch "siteguard/pkg/dispatch/mock"
	"siteguard/pkg/domain"
	"siteguard/pkg/graph"
	mockgraph "siteguard/pkg/graph/mock"
	"siteguard/pkg/logger"
	"siteguard/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, dom *domain.Domain, attempt, maxAttempts int) *river.Job[mutator.ScanJobArgs] {
	return &river.Job[mutator.ScanJobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: attempt, MaxAttempts: maxAttempts},
		Args:   mutator.ScanJobArgs{DomainID: uuid.UUID(dom.ID), FQDN: dom.FQDN},
	}
}

func testDomain() *domain.Domain {
	return &domain.Domain{ID: domain.DomainID(uuid.New()), FQDN: "example.com"}
}

// helper to wire Store.WithTx to execute the callback with a MockAllStore.
func expectWithTx(
	ctrl *gomock.Controller,
	st *mockgraph.MockStore,
	fn func(tx *mockgraph.MockAllStore)) {
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(graph.AllStore) error) error {
			tx := mockgraph.NewMockAllStore(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestScanDomainWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockgraph.NewMockStore(ctrl)
	client := mockdispatch.NewMockClient(ctrl)
	w := worker.NewScanDomainWorker(client, st)

	dom := testDomain()
	outcome := &dispatch.Outcome{
		Score:  91,
		Report: json.RawMessage(`{"grade":"A"}`),
		Artifacts: []dispatch.CategoryResult{
			{Category: domain.CategoryTLS, Payload: json.RawMessage(`{}`)},
			{Category: domain.CategoryDNS, Payload: json.RawMessage(`{}`)},
		},
	}

	st.EXPECT().DomainByID(gomock.Any(), dom.ID).Return(dom, nil)
	client.EXPECT().Scan(gomock.Any(), dom.FQDN).Return(outcome, nil)

	expectWithTx(ctrl, st, func(tx *mockgraph.MockAllStore) {
		tx.EXPECT().DeleteArtifacts(gomock.Any(), dom.ID).Return(int64(0), nil)
		tx.EXPECT().StoreArtifacts(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, artifacts ...domain.ScanArtifact) ([]domain.ScanArtifact, error) {
				require.Len(t, artifacts, 2)
				require.Equal(t, dom.ID, artifacts[0].DomainID)

				return artifacts, nil
			},
		)
		tx.EXPECT().OwnershipByDomain(gomock.Any(), dom.ID).
			Return(&domain.Ownership{OrganizationID: domain.OrganizationID(uuid.New()), DomainID: dom.ID}, nil)
		tx.EXPECT().StoreReport(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, report domain.Report) (*domain.Report, error) {
				require.Equal(t, dom.ID, report.DomainID)
				require.Equal(t, 91, report.Score)

				return &report, nil
			},
		)
		tx.EXPECT().TouchDomainScannedAt(gomock.Any(), dom.ID).Return(nil)
		tx.EXPECT().UpdateScanRequestsByDomain(gomock.Any(), dom.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.DomainID, updates graph.ScanRequestUpdates) error {
				require.Equal(t, domain.ScanStatusCompleted, updates.Status)
				require.NotNil(t, updates.LastError)
				require.Empty(t, *updates.LastError)

				return nil
			},
		)
	})

	require.NoError(t, w.Work(context.Background(), makeJob(1, dom, 1, 3)))
}

func TestScanDomainWorker_Work_UnownedDomainSkipsReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockgraph.NewMockStore(ctrl)
	client := mockdispatch.NewMockClient(ctrl)
	w := worker.NewScanDomainWorker(client, st)

	dom := testDomain()
	outcome := &dispatch.Outcome{
		Score:  50,
		Report: json.RawMessage(`{}`),
		Artifacts: []dispatch.CategoryResult{
			{Category: domain.CategoryHTTPHeader, Payload: json.RawMessage(`{}`)},
		},
	}

	st.EXPECT().DomainByID(gomock.Any(), dom.ID).Return(dom, nil)
	client.EXPECT().Scan(gomock.Any(), dom.FQDN).Return(outcome, nil)

	expectWithTx(ctrl, st, func(tx *mockgraph.MockAllStore) {
		tx.EXPECT().DeleteArtifacts(gomock.Any(), dom.ID).Return(int64(6), nil)
		tx.EXPECT().StoreArtifacts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, artifacts ...domain.ScanArtifact) ([]domain.ScanArtifact, error) {
				return artifacts, nil
			},
		)
		tx.EXPECT().OwnershipByDomain(gomock.Any(), dom.ID).Return(nil, nil)
		tx.EXPECT().TouchDomainScannedAt(gomock.Any(), dom.ID).Return(nil)
		tx.EXPECT().UpdateScanRequestsByDomain(gomock.Any(), dom.ID, gomock.Any()).Return(nil)
	})

	require.NoError(t, w.Work(context.Background(), makeJob(2, dom, 1, 3)))
}

func TestScanDomainWorker_Work_RemovedDomainCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockgraph.NewMockStore(ctrl)
	client := mockdispatch.NewMockClient(ctrl)
	w := worker.NewScanDomainWorker(client, st)

	dom := testDomain()
	st.EXPECT().DomainByID(gomock.Any(), dom.ID).Return(nil, nil)

	err := w.Work(context.Background(), makeJob(3, dom, 1, 3))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestScanDomainWorker_Work_RateLimitedSnoozes(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockgraph.NewMockStore(ctrl)
	client := mockdispatch.NewMockClient(ctrl)
	w := worker.NewScanDomainWorker(client, st)

	dom := testDomain()
	st.EXPECT().DomainByID(gomock.Any(), dom.ID).Return(dom, nil)
	client.EXPECT().Scan(gomock.Any(), dom.FQDN).
		Return(nil, serrors.With(serrors.ErrRateLimited, "provider rl"))

	err := w.Work(context.Background(), makeJob(4, dom, 1, 3))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
}

func TestScanDomainWorker_Work_FinalAttemptMarksRequestsFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockgraph.NewMockStore(ctrl)
	client := mockdispatch.NewMockClient(ctrl)
	w := worker.NewScanDomainWorker(client, st)

	dom := testDomain()
	st.EXPECT().DomainByID(gomock.Any(), dom.ID).Return(dom, nil)
	client.EXPECT().Scan(gomock.Any(), dom.FQDN).Return(nil, errors.New("probe failed"))
	st.EXPECT().UpdateScanRequestsByDomain(gomock.Any(), dom.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.DomainID, updates graph.ScanRequestUpdates) error {
			require.Equal(t, domain.ScanStatusFailed, updates.Status)
			require.NotNil(t, updates.LastError)
			require.Contains(t, *updates.LastError, "probe failed")

			return nil
		},
	)

	err := w.Work(context.Background(), makeJob(5, dom, 3, 3))
	require.Error(t, err)
}

func TestScanDomainWorker_Work_NonFinalAttemptLeavesRequestsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockgraph.NewMockStore(ctrl)
	client := mockdispatch.NewMockClient(ctrl)
	w := worker.NewScanDomainWorker(client, st)

	dom := testDomain()
	st.EXPECT().DomainByID(gomock.Any(), dom.ID).Return(dom, nil)
	client.EXPECT().Scan(gomock.Any(), dom.FQDN).Return(nil, errors.New("probe failed"))

	err := w.Work(context.Background(), makeJob(6, dom, 1, 3))
	require.Error(t, err)
}

package v1handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"siteguard/internal/api/handler/v1handler"
	mockmutator "siteguard/internal/mutator/mock"
	"siteguard/pkg/domain"
	"siteguard/pkg/logger"
	"siteguard/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func newTestHandler(t *testing.T) (*v1handler.Handler, *mockmutator.MockMutator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mockmutator.NewMockMutator(ctrl)
	h, err := v1handler.New(v1handler.Deps{Mutator: m}, noop.NewMeterProvider())
	require.NoError(t, err, "New failed")

	return h, m
}

// doRequest serves a request through the v1 mux as the given user and returns
// the recorded response.
func doRequest(t *testing.T, h *v1handler.Handler,
	method, target, body string, actor domain.UserID,
) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	req = req.WithContext(context.WithValue(req.Context(), v1handler.UserIDKey, actor))

	rec := httptest.NewRecorder()
	h.Mux().ServeHTTP(rec, req)

	return rec
}

func TestWriteError_PlainErrorIsInternal(t *testing.T) {
	h, m := newTestHandler(t)
	actor := domain.UserID(uuid.New())
	orgID, userID := uuid.New(), uuid.New()

	m.EXPECT().
		RemoveUserFromOrg(gomock.Any(), actor, domain.OrganizationID(orgID), domain.UserID(userID)).
		Return(errors.New("boom"))

	rec := doRequest(t, h, http.MethodDelete,
		"/v1/organizations/"+orgID.String()+"/members/"+userID.String(), "", actor)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"code":"INTERNAL"}`, rec.Body.String())
}

func TestWriteError_ReasonedForbidden(t *testing.T) {
	h, m := newTestHandler(t)
	actor := domain.UserID(uuid.New())
	orgID, userID := uuid.New(), uuid.New()

	m.EXPECT().
		RemoveUserFromOrg(gomock.Any(), actor, domain.OrganizationID(orgID), domain.UserID(userID)).
		Return(serrors.Reasoned(serrors.ErrForbidden, "admin_cannot_remove_admin"))

	rec := doRequest(t, h, http.MethodDelete,
		"/v1/organizations/"+orgID.String()+"/members/"+userID.String(), "", actor)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"code":"FORBIDDEN","reason":"admin_cannot_remove_admin"}`, rec.Body.String())
}

func TestWriteError_UnavailableMapsTo503(t *testing.T) {
	h, m := newTestHandler(t)
	actor := domain.UserID(uuid.New())
	orgID, userID := uuid.New(), uuid.New()

	m.EXPECT().
		RemoveUserFromOrg(gomock.Any(), actor, domain.OrganizationID(orgID), domain.UserID(userID)).
		Return(serrors.Reasoned(serrors.ErrUnavailable, "try_again"))

	rec := doRequest(t, h, http.MethodDelete,
		"/v1/organizations/"+orgID.String()+"/members/"+userID.String(), "", actor)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"code":"UNAVAILABLE","reason":"try_again"}`, rec.Body.String())
}

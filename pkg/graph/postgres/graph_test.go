package postgres_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"siteguard/pkg/domain"
	"siteguard/pkg/graph"
	"siteguard/pkg/graph/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, pg *postgres.PgSQL, email string) *domain.User {
	t.Helper()
	u, err := pg.StoreUser(context.Background(), domain.User{
		Email:       email,
		DisplayName: "Test User",
	})
	require.NoError(t, err)

	return u
}

func seedOrg(t *testing.T, pg *postgres.PgSQL, name string, verified bool) *domain.Organization {
	t.Helper()
	o, err := pg.StoreOrganization(context.Background(), domain.Organization{
		Name:     name,
		Verified: verified,
	})
	require.NoError(t, err)

	return o
}

func seedDomain(t *testing.T, pg *postgres.PgSQL, fqdn string) *domain.Domain {
	t.Helper()
	d, err := pg.StoreDomain(context.Background(), domain.Domain{
		FQDN:         fqdn,
		ScanInterval: 24 * time.Hour,
	})
	require.NoError(t, err)

	return d
}

func TestVertices_FetchAndTouch(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := seedUser(t, pg, "alice@example.com")
	got, err := pg.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "alice@example.com", got.Email)

	// missing vertex reads return nil without error
	missing, err := pg.UserByID(ctx, domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)

	dom := seedDomain(t, pg, "shop.example.com")
	byFQDN, err := pg.DomainByFQDN(ctx, "shop.example.com")
	require.NoError(t, err)
	require.NotNil(t, byFQDN)
	require.Equal(t, dom.ID, byFQDN.ID)

	require.True(t, byFQDN.LastScannedAt.IsZero())
	require.NoError(t, pg.TouchDomainScannedAt(ctx, dom.ID))

	touched, err := pg.DomainByID(ctx, dom.ID)
	require.NoError(t, err)
	require.False(t, touched.LastScannedAt.IsZero())
}

func TestAffiliations_Lifecycle(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := seedUser(t, pg, "bob@example.com")
	org := seedOrg(t, pg, "Acme", false)

	_, err := pg.StoreAffiliation(ctx, domain.Affiliation{
		OrganizationID: org.ID,
		UserID:         user.ID,
		Permission:     domain.PermissionAdmin,
		Owner:          true,
	})
	require.NoError(t, err)

	edge, err := pg.Affiliation(ctx, org.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, edge)
	require.Equal(t, domain.PermissionAdmin, edge.Permission)
	require.True(t, edge.Owner)

	count, err := pg.CountAffiliations(ctx, org.ID, user.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// flip the owner flag off and back on
	updated, err := pg.SetAffiliationOwner(ctx, org.ID, user.ID, false)
	require.NoError(t, err)
	require.True(t, updated)

	edge, err = pg.Affiliation(ctx, org.ID, user.ID)
	require.NoError(t, err)
	require.False(t, edge.Owner)

	// updating a nonexistent edge reports no rows affected
	updated, err = pg.SetAffiliationOwner(ctx, org.ID, domain.UserID(uuid.New()), true)
	require.NoError(t, err)
	require.False(t, updated)

	deleted, err := pg.DeleteAffiliation(ctx, org.ID, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = pg.DeleteAffiliation(ctx, org.ID, user.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestAffiliatedWithDomain(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	member := seedUser(t, pg, "carol@example.com")
	outsider := seedUser(t, pg, "dave@example.com")
	org := seedOrg(t, pg, "Acme", false)
	dom := seedDomain(t, pg, "mail.example.com")

	_, err := pg.StoreAffiliation(ctx, domain.Affiliation{
		OrganizationID: org.ID,
		UserID:         member.ID,
		Permission:     domain.PermissionUser,
	})
	require.NoError(t, err)
	_, err = pg.StoreClaim(ctx, domain.Claim{OrganizationID: org.ID, DomainID: dom.ID})
	require.NoError(t, err)

	ok, err := pg.AffiliatedWithDomain(ctx, member.ID, dom.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = pg.AffiliatedWithDomain(ctx, outsider.ID, dom.ID)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestClaims_Lifecycle(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	orgA := seedOrg(t, pg, "Acme", false)
	orgB := seedOrg(t, pg, "Globex", false)
	dom := seedDomain(t, pg, "www.example.com")

	_, err := pg.StoreClaim(ctx, domain.Claim{OrganizationID: orgA.ID, DomainID: dom.ID})
	require.NoError(t, err)
	_, err = pg.StoreClaim(ctx, domain.Claim{OrganizationID: orgB.ID, DomainID: dom.ID})
	require.NoError(t, err)

	exists, err := pg.ClaimExists(ctx, orgA.ID, dom.ID)
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = pg.ClaimExists(ctx, domain.OrganizationID(uuid.New()), dom.ID)
	require.NoError(t, err)
	require.False(t, exists)

	count, err := pg.CountClaims(ctx, dom.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	deleted, err := pg.DeleteClaim(ctx, orgA.ID, dom.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	count, err = pg.CountClaims(ctx, dom.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestOwnership_ReportUpsert(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	org := seedOrg(t, pg, "Acme", true)
	dom := seedDomain(t, pg, "api.example.com")

	_, err := pg.StoreOwnership(ctx, domain.Ownership{OrganizationID: org.ID, DomainID: dom.ID})
	require.NoError(t, err)

	owner, err := pg.OwnershipByDomain(ctx, dom.ID)
	require.NoError(t, err)
	require.NotNil(t, owner)
	require.Equal(t, org.ID, owner.OrganizationID)

	// report insert, then replace on a fresh scan
	_, err = pg.StoreReport(ctx, domain.Report{
		DomainID: dom.ID,
		Score:    42,
		Payload:  json.RawMessage(`{"summary":"weak tls"}`),
	})
	require.NoError(t, err)
	_, err = pg.StoreReport(ctx, domain.Report{
		DomainID: dom.ID,
		Score:    87,
		Payload:  json.RawMessage(`{"summary":"fixed"}`),
	})
	require.NoError(t, err)

	report, err := pg.ReportByDomain(ctx, dom.ID)
	require.NoError(t, err)
	require.NotNil(t, report)
	require.Equal(t, 87, report.Score)
	require.JSONEq(t, `{"summary":"fixed"}`, string(report.Payload))

	deleted, err := pg.DeleteReport(ctx, dom.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// a delete scoped to a non-owning org must not touch the edge
	deleted, err = pg.DeleteOwnership(ctx, dom.ID, domain.OrganizationID(uuid.New()))
	require.NoError(t, err)
	require.False(t, deleted)

	deleted, err = pg.DeleteOwnership(ctx, dom.ID, org.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	owner, err = pg.OwnershipByDomain(ctx, dom.ID)
	require.NoError(t, err)
	require.Nil(t, owner)
}

func TestArtifacts_StoreCountDelete(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	dom := seedDomain(t, pg, "cdn.example.com")

	stored, err := pg.StoreArtifacts(ctx,
		domain.ScanArtifact{
			DomainID: dom.ID,
			Category: domain.CategoryTLS,
			Payload:  json.RawMessage(`{"protocols":["TLSv1.3"]}`),
		},
		domain.ScanArtifact{
			DomainID: dom.ID,
			Category: domain.CategoryDNS,
			Payload:  json.RawMessage(`{"dnssec":false}`),
		},
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	for _, a := range stored {
		require.NotEqual(t, uuid.Nil, uuid.UUID(a.ID))
	}

	count, err := pg.CountArtifacts(ctx, dom.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	removed, err := pg.DeleteArtifacts(ctx, dom.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	count, err = pg.CountArtifacts(ctx, dom.ID)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestScanRequests_UpdateOnlyPending(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := seedUser(t, pg, "erin@example.com")
	dom := seedDomain(t, pg, "status.example.com")

	pending, err := pg.StoreScanRequest(ctx, domain.ScanRequest{
		DomainID:    dom.ID,
		RequestedBy: user.ID,
		Status:      domain.ScanStatusPending,
	})
	require.NoError(t, err)

	failed, err := pg.StoreScanRequest(ctx, domain.ScanRequest{
		DomainID:    dom.ID,
		RequestedBy: user.ID,
		Status:      domain.ScanStatusFailed,
	})
	require.NoError(t, err)

	cleared := ""
	err = pg.UpdateScanRequestsByDomain(ctx, dom.ID, graph.ScanRequestUpdates{
		Status:    domain.ScanStatusCompleted,
		LastError: &cleared,
	})
	require.NoError(t, err)

	got, err := pg.ScanRequestByID(ctx, pending.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ScanStatusCompleted, got.Status)
	require.False(t, got.UpdatedAt.IsZero())

	// settled requests are left untouched
	got, err = pg.ScanRequestByID(ctx, failed.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ScanStatusFailed, got.Status)
}

func TestDeleteDomain_CascadesScanRequests(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	user := seedUser(t, pg, "frank@example.com")
	dom := seedDomain(t, pg, "old.example.com")

	req, err := pg.StoreScanRequest(ctx, domain.ScanRequest{
		DomainID:    dom.ID,
		RequestedBy: user.ID,
		Status:      domain.ScanStatusPending,
	})
	require.NoError(t, err)

	deleted, err := pg.DeleteDomain(ctx, dom.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	// scan requests go with the domain
	gone, err := pg.ScanRequestByID(ctx, req.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	// deleting again reports nothing removed
	deleted, err = pg.DeleteDomain(ctx, dom.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

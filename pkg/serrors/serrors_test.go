package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"siteguard/pkg/serrors"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("boom")

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"msg and cause", serrors.Wrap(serrors.ErrInternal, cause, "failed"), "failed: boom"},
		{"msg only", serrors.With(serrors.ErrBadRequest, "invalid id"), "invalid id"},
		{"kind only", serrors.KindOnly(serrors.ErrNotFound), "NOT_FOUND"},
		{"reason only", serrors.Reasoned(serrors.ErrForbidden, "owner_only"), "owner_only"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestIsMatchesKindAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := serrors.Wrap(serrors.ErrUnavailable, cause, "store down")

	if !errors.Is(err, serrors.ErrUnavailable) {
		t.Fatalf("expected match on kind sentinel")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected match on wrapped cause")
	}
	if errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("unexpected match on unrelated kind")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", serrors.Reasoned(serrors.ErrForbidden, "admin_cannot_remove_admin"))

	if !errors.Is(err, serrors.ErrForbidden) {
		t.Fatalf("expected kind to match through fmt wrapping")
	}
}

func TestReasonOf(t *testing.T) {
	err := serrors.Reasoned(serrors.ErrForbidden, "contact_super_admin")
	if got := serrors.ReasonOf(err); got != "contact_super_admin" {
		t.Fatalf("got %q", got)
	}

	wrapped := fmt.Errorf("ctx: %w", err)
	if got := serrors.ReasonOf(wrapped); got != "contact_super_admin" {
		t.Fatalf("got %q through wrapping", got)
	}

	if got := serrors.ReasonOf(errors.New("plain")); got != "" {
		t.Fatalf("expected empty reason for plain error, got %q", got)
	}
}

func TestWithReasonCopies(t *testing.T) {
	base := serrors.With(serrors.ErrNotFound, "domain not found")
	reasoned := base.WithReason("domain_not_found")

	if base.Reason() != "" {
		t.Fatalf("base mutated: %q", base.Reason())
	}
	if reasoned.Reason() != "domain_not_found" {
		t.Fatalf("got %q", reasoned.Reason())
	}
	if !errors.Is(reasoned, serrors.ErrNotFound) {
		t.Fatalf("kind lost after WithReason")
	}
}

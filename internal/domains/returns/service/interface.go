package service

import (
	"context"

	"nirvana-admin-backend/internal/domains/returns/model"
)

// ReturnService mediates every state transition for return requests and
// keeps the session-scoped in-memory list consistent with server truth.
type ReturnService interface {
	// List refreshes and returns the return requests matching the filter.
	// Responses that resolve after a newer fetch was issued are not
	// applied to the shared cache, but are still returned to their own
	// caller: a List result may therefore already be superseded by a
	// concurrent fetch.
	List(ctx context.Context, query model.ListReturnsQuery) ([]model.ReturnRequest, error)

	// Get returns a single request decorated with review defaults and a
	// live refund preview.
	Get(ctx context.Context, id string) (*model.ReturnDetailResponse, error)

	// Approve transitions a pending request to refunded. Local state is
	// patched only after upstream confirms; server-provided financial
	// fields win over the local preview.
	Approve(ctx context.Context, id string, percentage int, note string) (*model.ReturnRequest, error)

	// Reject transitions a pending request to rejected.
	Reject(ctx context.Context, id string, note string) (*model.ReturnRequest, error)
}

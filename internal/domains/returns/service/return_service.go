package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"nirvana-admin-backend/internal/domains/returns/model"
	"nirvana-admin-backend/internal/domains/returns/repository"
)

// =====================================================
// RETURN SERVICE IMPLEMENTATION
// =====================================================

type returnService struct {
	repo repository.Repository
	calc *RefundCalculator

	mu         sync.Mutex
	requests   []model.ReturnRequest // cache of server state, server order
	processing map[string]bool       // per-request-id in-flight guard
	fetchSeq   uint64                // last issued list fetch
	appliedSeq uint64                // last fetch applied to the cache
}

// NewReturnService creates the workflow controller.
func NewReturnService(repo repository.Repository, calc *RefundCalculator) ReturnService {
	return &returnService{
		repo:       repo,
		calc:       calc,
		processing: make(map[string]bool),
	}
}

// =====================================================
// LIST
// =====================================================

// List fetches from upstream and replaces the cache, unless a newer fetch
// was issued while this one was outstanding. The caller always gets the
// result of its own fetch; only the shared cache is guarded against
// out-of-order application.
func (s *returnService) List(ctx context.Context, query model.ListReturnsQuery) ([]model.ReturnRequest, error) {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	requests, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq > s.appliedSeq {
		s.appliedSeq = seq
		s.requests = requests
	} else {
		log.Debug().Uint64("seq", seq).Uint64("applied", s.appliedSeq).
			Msg("stale return list response discarded")
	}

	return requests, nil
}

// =====================================================
// GET
// =====================================================

func (s *returnService) Get(ctx context.Context, id string) (*model.ReturnDetailResponse, error) {
	req, ok := s.cached(id)
	if !ok {
		// Cold cache (direct detail open): refresh once before giving up.
		if _, err := s.List(ctx, model.ListReturnsQuery{Status: "all"}); err != nil {
			return nil, err
		}
		if req, ok = s.cached(id); !ok {
			return nil, model.NewRequestNotFoundError(id)
		}
	}

	reviewPct := req.ReviewPercentage()
	reviewAmount, err := s.calc.Calculate(req.Items, reviewPct)
	if err != nil {
		// Upstream stored an out-of-range percentage; the preview degrades
		// to zero rather than blocking the page.
		reviewAmount = decimal.Zero
	}

	return &model.ReturnDetailResponse{
		ReturnRequest:    req,
		CustomerName:     req.Customer.DisplayName(),
		CustomerEmail:    req.Customer.DisplayEmail(),
		ReviewPercentage: reviewPct,
		ReviewAmount:     reviewAmount,
	}, nil
}

// =====================================================
// APPROVE
// =====================================================

func (s *returnService) Approve(ctx context.Context, id string, percentage int, note string) (*model.ReturnRequest, error) {
	req, err := s.beginDecision(id, percentage)
	if err != nil {
		return nil, err
	}
	defer s.endDecision(id)

	// Authoritative pre-submission amount; the server's value wins later.
	preview, err := s.calc.Calculate(req.Items, percentage)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.Decide(ctx, id, model.DecisionCommand{
		Action:           model.ActionApprove,
		RefundPercentage: percentage,
		RefundReason:     note,
	})
	if err != nil {
		// No optimistic pre-commit: local state is untouched, retry is safe.
		return nil, err
	}

	updated := s.applyDecision(id, model.StatusRefunded, percentage, preview, note, result)

	log.Info().
		Str("return_id", id).
		Int("refund_percentage", updated.RefundPercentage).
		Str("refund_amount", updated.RefundAmount.String()).
		Msg("return request approved")

	return updated, nil
}

// =====================================================
// REJECT
// =====================================================

func (s *returnService) Reject(ctx context.Context, id string, note string) (*model.ReturnRequest, error) {
	if _, err := s.beginDecision(id, 0); err != nil {
		return nil, err
	}
	defer s.endDecision(id)

	result, err := s.repo.Decide(ctx, id, model.DecisionCommand{
		Action:           model.ActionReject,
		RefundPercentage: 0,
		RefundReason:     note,
	})
	if err != nil {
		return nil, err
	}

	updated := s.applyDecision(id, model.StatusRejected, 0, decimal.Zero, note, result)

	log.Info().
		Str("return_id", id).
		Msg("return request rejected")

	return updated, nil
}

// =====================================================
// INTERNALS
// =====================================================

// beginDecision runs every pre-network guard in one critical section and
// claims the per-id in-flight flag. Returns a snapshot of the request.
func (s *returnService) beginDecision(id string, percentage int) (model.ReturnRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return model.ReturnRequest{}, model.NewRequestNotFoundError(id)
	}
	req := s.requests[idx]

	if !req.CanBeProcessed() {
		return model.ReturnRequest{}, model.NewInvalidTransitionError(id, req.Status)
	}
	if percentage < 0 || percentage > 100 {
		return model.ReturnRequest{}, model.NewInvalidPercentageError(percentage)
	}
	if s.processing[id] {
		return model.ReturnRequest{}, model.NewAlreadyProcessingError(id)
	}
	s.processing[id] = true

	return req, nil
}

func (s *returnService) endDecision(id string) {
	s.mu.Lock()
	delete(s.processing, id)
	s.mu.Unlock()
}

// applyDecision patches the cached copy with the confirmed outcome.
// Server-provided fields always win; the local values only fill the gaps
// the response left.
func (s *returnService) applyDecision(
	id, fallbackStatus string,
	percentage int,
	fallbackAmount decimal.Decimal,
	note string,
	result *model.DecisionResult,
) *model.ReturnRequest {
	status := fallbackStatus
	if result.Status != "" {
		status = result.Status
	}
	if result.RefundPercentage != nil {
		percentage = *result.RefundPercentage
	}
	amount := fallbackAmount
	if result.RefundAmount != nil {
		amount = *result.RefundAmount
	}
	reason := note
	if result.RefundReason != nil {
		reason = *result.RefundReason
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		// A concurrent refresh dropped the row; the decision still stands
		// upstream, so report the confirmed outcome.
		return &model.ReturnRequest{
			ID:               id,
			Status:           status,
			RefundPercentage: percentage,
			RefundAmount:     amount,
			RefundReason:     reason,
		}
	}

	s.requests[idx].Status = status
	s.requests[idx].RefundPercentage = percentage
	s.requests[idx].RefundAmount = amount
	s.requests[idx].RefundReason = reason

	updated := s.requests[idx]
	return &updated
}

func (s *returnService) cached(id string) (model.ReturnRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexOf(id); idx >= 0 {
		return s.requests[idx], true
	}
	return model.ReturnRequest{}, false
}

// indexOf must be called with s.mu held.
func (s *returnService) indexOf(id string) int {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}

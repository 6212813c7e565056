package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =====================================================
// FLEXIBLE UNMARSHALLING
// =====================================================

func TestReturnRequest_UnmarshalDefaults(t *testing.T) {
	var req ReturnRequest
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"r1"}`), &req))

	assert.Equal(t, "r1", req.ID)
	assert.Equal(t, StatusPending, req.Status, "missing status defaults to pending")
}

func TestReturnRequest_UnmarshalAltID(t *testing.T) {
	var req ReturnRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":"r2","status":"refunded"}`), &req))

	assert.Equal(t, "r2", req.ID)
	assert.Equal(t, StatusRefunded, req.Status)
}

func TestOrderRef_Shapes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantID  string
	}{
		{"bare string", `"order-1"`, "order-1"},
		{"embedded mongo id", `{"_id":"order-2","total":12}`, "order-2"},
		{"embedded plain id", `{"id":"order-3"}`, "order-3"},
		{"unknown shape degrades", `42`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref OrderRef
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &ref))
			assert.Equal(t, tt.wantID, ref.ID)
		})
	}
}

func TestCustomerRef_Shapes(t *testing.T) {
	t.Run("bare id keeps display fields unknown", func(t *testing.T) {
		var ref CustomerRef
		require.NoError(t, json.Unmarshal([]byte(`"user-1"`), &ref))

		assert.Equal(t, "user-1", ref.ID)
		assert.Equal(t, "unknown", ref.DisplayName())
		assert.Equal(t, "unknown", ref.DisplayEmail())
	})

	t.Run("embedded object with name", func(t *testing.T) {
		var ref CustomerRef
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"user-2","name":"Ada Lovelace","email":"ada@example.com"}`), &ref))

		assert.Equal(t, "user-2", ref.ID)
		assert.Equal(t, "Ada Lovelace", ref.DisplayName())
		assert.Equal(t, "ada@example.com", ref.DisplayEmail())
	})

	t.Run("first and last name fallback", func(t *testing.T) {
		var ref CustomerRef
		require.NoError(t, json.Unmarshal([]byte(`{"id":"user-3","firstName":"Grace","lastName":"Hopper"}`), &ref))

		assert.Equal(t, "Grace Hopper", ref.DisplayName())
	})
}

// =====================================================
// STATUS SEMANTICS
// =====================================================

func TestIsTerminalStatus(t *testing.T) {
	assert.False(t, IsTerminalStatus(StatusPending))
	assert.True(t, IsTerminalStatus(StatusApproved))
	assert.True(t, IsTerminalStatus(StatusRejected))
	assert.True(t, IsTerminalStatus(StatusRefunded))
}

func TestReviewPercentage(t *testing.T) {
	pending := ReturnRequest{Status: StatusPending}
	assert.Equal(t, 100, pending.ReviewPercentage(), "untouched pending defaults to full refund")

	partial := ReturnRequest{Status: StatusPending, RefundPercentage: 40}
	assert.Equal(t, 40, partial.ReviewPercentage())

	decided := ReturnRequest{Status: StatusRefunded, RefundPercentage: 0}
	assert.Equal(t, 0, decided.ReviewPercentage())
}

// =====================================================
// DTO VALIDATION
// =====================================================

func TestDecideReturnRequest_Validate(t *testing.T) {
	pct := 50
	valid := DecideReturnRequest{Action: ActionApprove, RefundPercentage: &pct}
	assert.NoError(t, valid.Validate())

	noAction := DecideReturnRequest{}
	assert.Error(t, noAction.Validate())

	badAction := DecideReturnRequest{Action: "escalate"}
	assert.Error(t, badAction.Validate())

	tooHigh := 150
	overflow := DecideReturnRequest{Action: ActionApprove, RefundPercentage: &tooHigh}
	assert.Error(t, overflow.Validate())
}

func TestDecideReturnRequest_PercentageDefaults(t *testing.T) {
	req := DecideReturnRequest{Action: ActionApprove}
	assert.Equal(t, 100, req.Percentage(), "omitted percentage means full refund")

	zero := 0
	req = DecideReturnRequest{Action: ActionApprove, RefundPercentage: &zero}
	assert.Equal(t, 0, req.Percentage(), "explicit zero is preserved")
}

func TestListReturnsQuery_Validate(t *testing.T) {
	q := ListReturnsQuery{}
	require.NoError(t, q.Validate())
	assert.Equal(t, "all", q.Status, "empty status normalizes to all")

	bad := ListReturnsQuery{Status: "archived"}
	assert.Error(t, bad.Validate())
}

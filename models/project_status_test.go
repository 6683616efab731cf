package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitionTable(t *testing.T) {
	tests := []struct {
		from    ProjectStatus
		allowed []ProjectStatus
	}{
		{StatusDraft, []ProjectStatus{StatusEstimationPrepared}},
		{StatusEstimationPrepared, []ProjectStatus{StatusQuotationSent, StatusOnHold, StatusCancelled}},
		{StatusQuotationSent, []ProjectStatus{StatusQuotationApproved, StatusQuotationRejected, StatusOnHold, StatusCancelled}},
		{StatusQuotationApproved, []ProjectStatus{StatusLPOReceived, StatusOnHold, StatusCancelled}},
		{StatusLPOReceived, []ProjectStatus{StatusTeamAssigned, StatusOnHold, StatusCancelled}},
		{StatusTeamAssigned, []ProjectStatus{StatusWorkStarted, StatusOnHold}},
		{StatusWorkStarted, []ProjectStatus{StatusInProgress, StatusOnHold, StatusCancelled}},
		{StatusInProgress, []ProjectStatus{StatusWorkCompleted, StatusOnHold, StatusCancelled}},
		{StatusWorkCompleted, []ProjectStatus{StatusQualityCheck, StatusOnHold}},
		{StatusQualityCheck, []ProjectStatus{StatusClientHandover, StatusWorkCompleted}},
		{StatusClientHandover, []ProjectStatus{StatusFinalInvoiceSent, StatusOnHold}},
		{StatusFinalInvoiceSent, []ProjectStatus{StatusPaymentReceived, StatusOnHold}},
		{StatusPaymentReceived, []ProjectStatus{StatusProjectClosed}},
		{StatusOnHold, []ProjectStatus{StatusInProgress, StatusWorkStarted, StatusCancelled}},
		{StatusQuotationRejected, nil},
		{StatusCancelled, nil},
		{StatusProjectClosed, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			assert.ElementsMatch(t, tt.allowed, tt.from.AllowedTransitions())

			for _, target := range tt.allowed {
				assert.True(t, tt.from.CanTransitionTo(target),
					"%s should allow transition to %s", tt.from, target)
			}
		})
	}
}

func TestStatusTransitionRejectsUnlisted(t *testing.T) {
	// A sample of moves the table must not allow
	tests := []struct {
		from ProjectStatus
		to   ProjectStatus
	}{
		{StatusDraft, StatusWorkStarted},
		{StatusDraft, StatusProjectClosed},
		{StatusLPOReceived, StatusWorkStarted},
		{StatusQuotationSent, StatusLPOReceived},
		{StatusWorkCompleted, StatusInProgress},
		{StatusPaymentReceived, StatusCancelled},
		{StatusCancelled, StatusDraft},
		{StatusProjectClosed, StatusOnHold},
		{StatusQuotationRejected, StatusQuotationSent},
	}

	for _, tt := range tests {
		assert.False(t, tt.from.CanTransitionTo(tt.to),
			"%s must not allow transition to %s", tt.from, tt.to)
	}
}

func TestStatusSelfTransitionNotAllowed(t *testing.T) {
	for _, status := range AllProjectStatuses() {
		assert.False(t, status.CanTransitionTo(status),
			"%s must not transition to itself", status)
	}
}

func TestTerminalStatuses(t *testing.T) {
	terminal := map[ProjectStatus]bool{
		StatusQuotationRejected: true,
		StatusCancelled:         true,
		StatusProjectClosed:     true,
	}

	for _, status := range AllProjectStatuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(),
			"unexpected IsTerminal for %s", status)
	}
}

func TestStatusIsValid(t *testing.T) {
	require.Len(t, AllProjectStatuses(), 17)

	for _, status := range AllProjectStatuses() {
		assert.True(t, status.IsValid())
	}

	assert.False(t, ProjectStatus("").IsValid())
	assert.False(t, ProjectStatus("unknown").IsValid())
	assert.False(t, ProjectStatus("DRAFT").IsValid())
}

func TestEveryStatusReachableFromDraft(t *testing.T) {
	// Walk the table; every status should be reachable from draft
	reached := map[ProjectStatus]bool{StatusDraft: true}
	queue := []ProjectStatus{StatusDraft}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range current.AllowedTransitions() {
			if !reached[next] {
				reached[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, status := range AllProjectStatuses() {
		assert.True(t, reached[status], "%s is unreachable from draft", status)
	}
}

package models

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	StatusDraft              ProjectStatus = "draft"
	StatusEstimationPrepared ProjectStatus = "estimation_prepared"
	StatusQuotationSent      ProjectStatus = "quotation_sent"
	StatusQuotationApproved  ProjectStatus = "quotation_approved"
	StatusQuotationRejected  ProjectStatus = "quotation_rejected"
	StatusLPOReceived        ProjectStatus = "lpo_received"
	StatusTeamAssigned       ProjectStatus = "team_assigned"
	StatusWorkStarted        ProjectStatus = "work_started"
	StatusInProgress         ProjectStatus = "in_progress"
	StatusWorkCompleted      ProjectStatus = "work_completed"
	StatusQualityCheck       ProjectStatus = "quality_check"
	StatusClientHandover     ProjectStatus = "client_handover"
	StatusFinalInvoiceSent   ProjectStatus = "final_invoice_sent"
	StatusPaymentReceived    ProjectStatus = "payment_received"
	StatusOnHold             ProjectStatus = "on_hold"
	StatusCancelled          ProjectStatus = "cancelled"
	StatusProjectClosed      ProjectStatus = "project_closed"
)

// statusTransitions maps each status to the set of statuses it may move to.
// Built once at init, never mutated at runtime. lpo_received requires
// team_assigned before work can start because team assignment drives the
// worker/driver bookkeeping that attendance and labor costing depend on.
var statusTransitions = map[ProjectStatus][]ProjectStatus{
	StatusDraft:              {StatusEstimationPrepared},
	StatusEstimationPrepared: {StatusQuotationSent, StatusOnHold, StatusCancelled},
	StatusQuotationSent:      {StatusQuotationApproved, StatusQuotationRejected, StatusOnHold, StatusCancelled},
	StatusQuotationApproved:  {StatusLPOReceived, StatusOnHold, StatusCancelled},
	StatusLPOReceived:        {StatusTeamAssigned, StatusOnHold, StatusCancelled},
	StatusTeamAssigned:       {StatusWorkStarted, StatusOnHold},
	StatusWorkStarted:        {StatusInProgress, StatusOnHold, StatusCancelled},
	StatusInProgress:         {StatusWorkCompleted, StatusOnHold, StatusCancelled},
	StatusWorkCompleted:      {StatusQualityCheck, StatusOnHold},
	StatusQualityCheck:       {StatusClientHandover, StatusWorkCompleted},
	StatusClientHandover:     {StatusFinalInvoiceSent, StatusOnHold},
	StatusFinalInvoiceSent:   {StatusPaymentReceived, StatusOnHold},
	StatusPaymentReceived:    {StatusProjectClosed},
	StatusOnHold:             {StatusInProgress, StatusWorkStarted, StatusCancelled},
	StatusQuotationRejected:  {},
	StatusCancelled:          {},
	StatusProjectClosed:      {},
}

// AllProjectStatuses lists every valid status value.
func AllProjectStatuses() []ProjectStatus {
	statuses := make([]ProjectStatus, 0, len(statusTransitions))
	for status := range statusTransitions {
		statuses = append(statuses, status)
	}
	return statuses
}

// IsValid reports whether s is a member of the status enum.
func (s ProjectStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are possible from s.
func (s ProjectStatus) IsTerminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether moving from s to target is allowed by
// the transition table.
func (s ProjectStatus) CanTransitionTo(target ProjectStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns a copy of the targets reachable from s.
func (s ProjectStatus) AllowedTransitions() []ProjectStatus {
	next := statusTransitions[s]
	out := make([]ProjectStatus, len(next))
	copy(out, next)
	return out
}

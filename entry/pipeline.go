package entry

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// CreateRequest is the shape the API expects for transaction creation.
// Mapping from a Draft is field renaming only; no values are transformed
// beyond formatting the date.
type CreateRequest struct {
	AccountID   string          `json:"accountId"`
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Amount      float64         `json:"amount"`
	Notes       string          `json:"notes,omitempty"`
}

// Result is the tagged outcome the API reports for a creation or update.
// A domain rejection arrives here, never as a Go error.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// TransactionCreator persists a validated draft.
type TransactionCreator interface {
	CreateTransaction(ctx context.Context, req CreateRequest) (*Result, error)
}

// TransactionUpdater is optionally implemented by a TransactionCreator that
// supports editing an existing transaction.
type TransactionUpdater interface {
	UpdateTransaction(ctx context.Context, id string, req CreateRequest) (*Result, error)
}

// Notifier is the user-facing notification sink with two severities.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Revalidator signals the listing view at a logical path to refresh itself.
type Revalidator interface {
	Revalidate(path string)
}

// Outcome tells the presenting container how a submission settled.
type Outcome int

const (
	// OutcomeCreated: persisted; close the form and refresh the listing.
	OutcomeCreated Outcome = iota
	// OutcomeUpdated: edit persisted; close the form and refresh the listing.
	OutcomeUpdated
	// OutcomeDomainError: server rejected the draft; form stays open.
	OutcomeDomainError
	// OutcomeFailed: transport failure or malformed reply.
	OutcomeFailed
	// OutcomeRejected: local validation failed; nothing was sent.
	OutcomeRejected
	// OutcomeBusy: a submission is already in flight.
	OutcomeBusy
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeUpdated:
		return "updated"
	case OutcomeDomainError:
		return "domain error"
	case OutcomeFailed:
		return "failed"
	case OutcomeRejected:
		return "rejected"
	case OutcomeBusy:
		return "busy"
	}
	return "unknown"
}

const genericFailureMessage = "Something went wrong, please try again"

// Pipeline validates a controller's draft, sends it to the API and reduces
// the reply to user feedback. A single in-flight flag rejects duplicate
// submissions until the previous one settles.
type Pipeline struct {
	creator     TransactionCreator
	notifier    Notifier
	revalidator Revalidator
	logger      *log.Logger

	// listingPath is the logical path of the transaction listing to refresh
	// after a successful submission.
	listingPath string

	inFlight atomic.Bool
}

func NewPipeline(
	creator TransactionCreator,
	notifier Notifier,
	revalidator Revalidator,
	listingPath string,
	logger *log.Logger,
) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{
		creator:     creator,
		notifier:    notifier,
		revalidator: revalidator,
		listingPath: listingPath,
		logger:      logger,
	}
}

// Submit runs the full creation pipeline. Validation failures block the
// network call entirely; the caller re-renders the controller's field errors.
func (p *Pipeline) Submit(ctx context.Context, c *Controller) Outcome {
	if !p.inFlight.CompareAndSwap(false, true) {
		return OutcomeBusy
	}
	defer p.inFlight.Store(false)

	valid, errs := c.Validate()
	if !valid {
		p.logger.Debug("draft rejected by validation", "errors", errs)
		return OutcomeRejected
	}

	res, err := p.creator.CreateTransaction(ctx, RequestFromDraft(c.Draft()))
	return p.settle(res, err, "Transaction created", OutcomeCreated)
}

// SubmitUpdate runs the pipeline against an existing transaction. The
// creator must also implement TransactionUpdater.
func (p *Pipeline) SubmitUpdate(ctx context.Context, c *Controller, id string) Outcome {
	updater, ok := p.creator.(TransactionUpdater)
	if !ok {
		p.logger.Error("transaction updates not supported by this client")
		return OutcomeFailed
	}

	if !p.inFlight.CompareAndSwap(false, true) {
		return OutcomeBusy
	}
	defer p.inFlight.Store(false)

	valid, errs := c.Validate()
	if !valid {
		p.logger.Debug("draft rejected by validation", "errors", errs)
		return OutcomeRejected
	}

	res, err := updater.UpdateTransaction(ctx, id, RequestFromDraft(c.Draft()))
	return p.settle(res, err, "Transaction updated", OutcomeUpdated)
}

// settle reduces an API reply to a notification and an outcome. Transport
// errors are logged without a user notification; the draft stays intact so
// the user can resubmit.
func (p *Pipeline) settle(res *Result, err error, successMsg string, success Outcome) Outcome {
	if err != nil {
		p.logger.Error("submitting transaction", "error", err)
		return OutcomeFailed
	}

	switch {
	case res == nil:
		p.notifier.Error(genericFailureMessage)
		return OutcomeFailed
	case res.Success:
		p.notifier.Success(successMsg)
		p.revalidator.Revalidate(p.listingPath)
		return success
	case res.Error != "":
		p.notifier.Error(res.Error)
		return OutcomeDomainError
	default:
		p.notifier.Error(genericFailureMessage)
		return OutcomeFailed
	}
}

// RequestFromDraft maps a validated draft to the API request shape.
func RequestFromDraft(d Draft) CreateRequest {
	return CreateRequest{
		AccountID:   d.AccountID,
		Type:        d.Type,
		Description: d.Description,
		Category:    d.Category,
		Date:        d.Date.Format(dateLayout),
		Amount:      d.Amount,
		Notes:       d.Notes,
	}
}

package entry

import (
	"context"
	"errors"
	"testing"

	"github.com/carlmjohnson/be"
)

type recordNotifier struct {
	successes []string
	errors    []string
}

func (n *recordNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

type recordRevalidator struct {
	paths []string
}

func (r *recordRevalidator) Revalidate(path string) { r.paths = append(r.paths, path) }

type stubCreator struct {
	res    *Result
	err    error
	calls  int
	gotReq CreateRequest
}

func (s *stubCreator) CreateTransaction(_ context.Context, req CreateRequest) (*Result, error) {
	s.calls++
	s.gotReq = req
	return s.res, s.err
}

func (s *stubCreator) UpdateTransaction(_ context.Context, _ string, req CreateRequest) (*Result, error) {
	s.calls++
	s.gotReq = req
	return s.res, s.err
}

func newTestPipeline(creator TransactionCreator) (*Pipeline, *recordNotifier, *recordRevalidator) {
	notifier := &recordNotifier{}
	revalidator := &recordRevalidator{}
	return NewPipeline(creator, notifier, revalidator, "/transactions", nil), notifier, revalidator
}

func TestSubmitSuccess(t *testing.T) {
	creator := &stubCreator{res: &Result{Success: true}}
	p, notifier, revalidator := newTestPipeline(creator)
	c := NewController(validDraft())

	outcome := p.Submit(context.Background(), c)

	be.Equal(t, OutcomeCreated, outcome)
	be.Equal(t, 1, len(notifier.successes))
	be.Equal(t, 0, len(notifier.errors))
	be.DeepEqual(t, []string{"/transactions"}, revalidator.paths)

	// mapping is field renaming only
	be.Equal(t, "a1", creator.gotReq.AccountID)
	be.Equal(t, TypeExpense, creator.gotReq.Type)
	be.Equal(t, "Coffee", creator.gotReq.Description)
	be.Equal(t, "food", creator.gotReq.Category)
	be.Equal(t, "2024-03-01", creator.gotReq.Date)
	be.Equal(t, 4.50, creator.gotReq.Amount)
}

func TestSubmitDomainError(t *testing.T) {
	creator := &stubCreator{res: &Result{Success: false, Error: "Account not found"}}
	p, notifier, revalidator := newTestPipeline(creator)
	c := NewController(validDraft())

	outcome := p.Submit(context.Background(), c)

	be.Equal(t, OutcomeDomainError, outcome)
	be.DeepEqual(t, []string{"Account not found"}, notifier.errors)
	be.Equal(t, 0, len(notifier.successes))
	be.Equal(t, 0, len(revalidator.paths))
	// draft preserved for correction
	be.Equal(t, "Coffee", c.Draft().Description)
}

func TestSubmitMalformedResult(t *testing.T) {
	tests := []struct {
		name string
		res  *Result
	}{
		{name: "nil result", res: nil},
		{name: "failure without message", res: &Result{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &stubCreator{res: tt.res}
			p, notifier, _ := newTestPipeline(creator)
			c := NewController(validDraft())

			outcome := p.Submit(context.Background(), c)

			be.Equal(t, OutcomeFailed, outcome)
			be.DeepEqual(t, []string{genericFailureMessage}, notifier.errors)
		})
	}
}

// Transport failures are logged without a user notification.
func TestSubmitTransportErrorIsLogOnly(t *testing.T) {
	creator := &stubCreator{err: errors.New("connection refused")}
	p, notifier, revalidator := newTestPipeline(creator)
	c := NewController(validDraft())

	outcome := p.Submit(context.Background(), c)

	be.Equal(t, OutcomeFailed, outcome)
	be.Equal(t, 0, len(notifier.errors))
	be.Equal(t, 0, len(notifier.successes))
	be.Equal(t, 0, len(revalidator.paths))
}

func TestSubmitInvalidDraftMakesNoCall(t *testing.T) {
	creator := &stubCreator{res: &Result{Success: true}}
	p, notifier, _ := newTestPipeline(creator)

	d := validDraft()
	d.Amount = -5
	c := NewController(d)

	outcome := p.Submit(context.Background(), c)

	be.Equal(t, OutcomeRejected, outcome)
	be.Equal(t, 0, creator.calls)
	be.Equal(t, 0, len(notifier.errors))
	be.Nonzero(t, c.Errors()[FieldAmount])
}

// reentrantCreator submits again from inside the in-flight call.
type reentrantCreator struct {
	p       *Pipeline
	c       *Controller
	nested  Outcome
	entered bool
}

func (r *reentrantCreator) CreateTransaction(ctx context.Context, _ CreateRequest) (*Result, error) {
	if !r.entered {
		r.entered = true
		r.nested = r.p.Submit(ctx, r.c)
	}
	return &Result{Success: true}, nil
}

func TestSubmitGuardsAgainstDuplicateInFlight(t *testing.T) {
	creator := &reentrantCreator{}
	p, _, _ := newTestPipeline(creator)
	c := NewController(validDraft())
	creator.p = p
	creator.c = c

	outcome := p.Submit(context.Background(), c)

	be.Equal(t, OutcomeCreated, outcome)
	be.Equal(t, OutcomeBusy, creator.nested)

	// the flag is released once the pipeline settles
	be.Equal(t, OutcomeCreated, p.Submit(context.Background(), c))
}

func TestSubmitUpdate(t *testing.T) {
	creator := &stubCreator{res: &Result{Success: true}}
	p, notifier, revalidator := newTestPipeline(creator)
	c := NewController(validDraft())

	outcome := p.SubmitUpdate(context.Background(), c, "t9")

	be.Equal(t, OutcomeUpdated, outcome)
	be.DeepEqual(t, []string{"Transaction updated"}, notifier.successes)
	be.DeepEqual(t, []string{"/transactions"}, revalidator.paths)
}

type createOnlyCreator struct{}

func (createOnlyCreator) CreateTransaction(context.Context, CreateRequest) (*Result, error) {
	return &Result{Success: true}, nil
}

func TestSubmitUpdateRequiresUpdater(t *testing.T) {
	p, notifier, _ := newTestPipeline(createOnlyCreator{})
	c := NewController(validDraft())

	outcome := p.SubmitUpdate(context.Background(), c, "t9")

	be.Equal(t, OutcomeFailed, outcome)
	be.Equal(t, 0, len(notifier.errors))
}

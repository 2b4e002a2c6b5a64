package session

import (
	"context"
	"strings"
	"sync"
)

// GenerationRequest is the wire payload for one generation call. It is built
// from the input model at submission time and owned by the in-flight call.
type GenerationRequest struct {
	Name    string `json:"name"`
	Feeling string `json:"feeling"`
	Details string `json:"details"`
}

// Generator is the outbound boundary of the orchestrator.
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// Observer receives every RequestState snapshot as it is published.
type Observer func(RequestState)

// Orchestrator gates submission on validity, runs exactly one request at a
// time, and publishes a deterministic RequestState transition for each step.
type Orchestrator struct {
	generator Generator
	input     *InputModel

	mu        sync.Mutex
	state     RequestState
	inFlight  bool
	observers []Observer
}

// NewOrchestrator creates an orchestrator in the Idle state with an empty
// input model.
func NewOrchestrator(generator Generator) *Orchestrator {
	return &Orchestrator{
		generator: generator,
		input:     NewInputModel(),
		state:     Idle(),
	}
}

// Input returns the session's input model.
func (o *Orchestrator) Input() *InputModel {
	return o.input
}

// State returns the current snapshot.
func (o *Orchestrator) State() RequestState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// OnChange registers an observer for state replacements. Observers are called
// synchronously in transition order with the new snapshot.
func (o *Orchestrator) OnChange(fn Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.observers = append(o.observers, fn)
}

// Submit validates the input and runs one generation request. A submit that
// arrives while a request is in flight is ignored, never queued; Error and
// Success are both re-enterable. Submit blocks until the transition out of
// Loading has been published.
func (o *Orchestrator) Submit(ctx context.Context) {
	o.mu.Lock()
	if o.inFlight {
		o.mu.Unlock()
		return
	}

	name := strings.TrimSpace(o.input.Name())
	feeling := strings.TrimSpace(o.input.Feeling())
	if name == "" || feeling == "" {
		o.mu.Unlock()
		o.transition(Failed(ValidationMessage))
		return
	}

	req := GenerationRequest{
		Name:    name,
		Feeling: feeling,
		Details: o.input.Details(), // optional, sent as-is
	}
	o.inFlight = true
	o.mu.Unlock()

	o.transition(Loading())

	text, err := o.generator.Generate(ctx, req)
	if err != nil {
		o.transition(Failed(GenericErrorMessage))
	} else {
		o.transition(Succeeded(text))
	}

	o.mu.Lock()
	o.inFlight = false
	o.mu.Unlock()
}

func (o *Orchestrator) transition(next RequestState) {
	o.mu.Lock()
	o.state = next
	observers := make([]Observer, len(o.observers))
	copy(observers, o.observers)
	o.mu.Unlock()

	for _, fn := range observers {
		fn(next)
	}
}

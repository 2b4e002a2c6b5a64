package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	mu       sync.Mutex
	calls    []GenerationRequest
	generate func(ctx context.Context, req GenerationRequest) (string, error)
}

func (g *fakeGenerator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	g.mu.Lock()
	g.calls = append(g.calls, req)
	g.mu.Unlock()
	if g.generate != nil {
		return g.generate(ctx, req)
	}
	return "You are exactly where you need to be.", nil
}

func (g *fakeGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}

func fillValidInput(o *Orchestrator) {
	o.Input().SetField(FieldName, "Amina")
	o.Input().SelectPreset("Hopeful")
}

func TestInitialStateIsIdle(t *testing.T) {
	o := NewOrchestrator(&fakeGenerator{})

	assert.Equal(t, Idle(), o.State())
}

func TestSubmitValidationGate(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		feeling string
	}{
		{"both empty", "", ""},
		{"missing name", "", "Hopeful"},
		{"missing feeling", "Amina", ""},
		{"whitespace-only name", "   ", "Tender"},
		{"whitespace-only feeling", "Amina", "  \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{}
			o := NewOrchestrator(gen)
			o.Input().SetField(FieldName, tt.field)
			o.Input().SetField(FieldFeeling, tt.feeling)

			o.Submit(context.Background())

			assert.Equal(t, Failed(ValidationMessage), o.State())
			assert.Zero(t, gen.callCount(), "validation failures must not issue a network call")
		})
	}
}

func TestSubmitSuccess(t *testing.T) {
	gen := &fakeGenerator{}
	o := NewOrchestrator(gen)
	fillValidInput(o)
	o.Input().SetField(FieldDetails, "  spacing preserved  ")

	o.Submit(context.Background())

	assert.Equal(t, Succeeded("You are exactly where you need to be."), o.State())
	require.Equal(t, 1, gen.callCount())
	assert.Equal(t, GenerationRequest{
		Name:    "Amina",
		Feeling: "Hopeful",
		Details: "  spacing preserved  ",
	}, gen.calls[0])
}

func TestSubmitTrimsNameAndFeeling(t *testing.T) {
	gen := &fakeGenerator{}
	o := NewOrchestrator(gen)
	o.Input().SetField(FieldName, "  Amina ")
	o.Input().SetField(FieldFeeling, " Hopeful  ")

	o.Submit(context.Background())

	require.Equal(t, 1, gen.callCount())
	assert.Equal(t, "Amina", gen.calls[0].Name)
	assert.Equal(t, "Hopeful", gen.calls[0].Feeling)
}

func TestSubmitGenericErrorCollapse(t *testing.T) {
	causes := []error{
		errors.New("connection refused"),
		errors.New("affirmation request failed with status 500"),
		errors.New("decode response: unexpected EOF"),
		errors.New("response missing affirmation text"),
	}

	for _, cause := range causes {
		gen := &fakeGenerator{generate: func(context.Context, GenerationRequest) (string, error) {
			return "", cause
		}}
		o := NewOrchestrator(gen)
		fillValidInput(o)

		o.Submit(context.Background())

		assert.Equal(t, Failed(GenericErrorMessage), o.State(),
			"every failure cause maps to the same state, got cause %v", cause)
	}
}

func TestSubmitSingleFlight(t *testing.T) {
	release := make(chan struct{})
	loading := make(chan struct{})
	gen := &fakeGenerator{generate: func(context.Context, GenerationRequest) (string, error) {
		close(loading)
		<-release
		return "done", nil
	}}
	o := NewOrchestrator(gen)
	fillValidInput(o)

	done := make(chan struct{})
	go func() {
		o.Submit(context.Background())
		close(done)
	}()

	<-loading
	assert.Equal(t, Loading(), o.State())

	// A submit received while Loading is ignored, not queued.
	o.Submit(context.Background())
	o.Submit(context.Background())
	assert.Equal(t, 1, gen.callCount())

	close(release)
	<-done

	assert.Equal(t, Succeeded("done"), o.State())
	assert.Equal(t, 1, gen.callCount())
}

func TestResubmitClearsPriorSuccess(t *testing.T) {
	gen := &fakeGenerator{}
	o := NewOrchestrator(gen)
	fillValidInput(o)

	var snapshots []RequestState
	o.OnChange(func(s RequestState) {
		snapshots = append(snapshots, s)
	})

	o.Submit(context.Background())
	require.Equal(t, PhaseSuccess, o.State().Phase)

	o.Submit(context.Background())

	require.Len(t, snapshots, 4)
	assert.Equal(t, PhaseLoading, snapshots[2].Phase)
	assert.Empty(t, snapshots[2].Affirmation, "prior success text must not survive into Loading")
	assert.Empty(t, snapshots[2].Message)
	assert.Equal(t, PhaseSuccess, snapshots[3].Phase)
	assert.Equal(t, 2, gen.callCount())
}

func TestErrorIsReEnterable(t *testing.T) {
	fail := true
	gen := &fakeGenerator{generate: func(context.Context, GenerationRequest) (string, error) {
		if fail {
			return "", errors.New("boom")
		}
		return "recovered", nil
	}}
	o := NewOrchestrator(gen)
	fillValidInput(o)

	o.Submit(context.Background())
	assert.Equal(t, Failed(GenericErrorMessage), o.State())

	fail = false
	o.Submit(context.Background())
	assert.Equal(t, Succeeded("recovered"), o.State())
}

func TestObserverSeesEveryReplacement(t *testing.T) {
	gen := &fakeGenerator{}
	o := NewOrchestrator(gen)
	fillValidInput(o)

	var phases []Phase
	o.OnChange(func(s RequestState) {
		phases = append(phases, s.Phase)
	})

	o.Submit(context.Background())

	assert.Equal(t, []Phase{PhaseLoading, PhaseSuccess}, phases)
}

func TestSubmitWhileLoadingDoesNotMutatePayload(t *testing.T) {
	release := make(chan struct{})
	loading := make(chan struct{})
	gen := &fakeGenerator{generate: func(context.Context, GenerationRequest) (string, error) {
		close(loading)
		<-release
		return "done", nil
	}}
	o := NewOrchestrator(gen)
	fillValidInput(o)

	go o.Submit(context.Background())
	<-loading

	// Edits during Loading must not leak into the in-flight request.
	o.Input().SetField(FieldName, "Someone Else")
	o.Submit(context.Background())
	close(release)

	require.Eventually(t, func() bool {
		return o.State().Phase == PhaseSuccess
	}, time.Second, 5*time.Millisecond)

	require.Equal(t, 1, gen.callCount())
	assert.Equal(t, "Amina", gen.calls[0].Name)
}

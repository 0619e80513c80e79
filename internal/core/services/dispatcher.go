package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jch254/muzo-fulfillment-handler/internal/core/domain"
)

// IntentHandler serves one intent for one turn.
type IntentHandler interface {
	Handle(ctx context.Context, event domain.LexEvent) (domain.LexResponse, error)
}

// Dispatcher routes events to the handler registered for their intent.
type Dispatcher struct {
	handlers map[string]IntentHandler
	log      *zap.Logger
}

// NewDispatcher wires the lookup and disambiguation handlers to their intents.
func NewDispatcher(lookup *Lookup, disambiguation *Disambiguation, log *zap.Logger) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		handlers: map[string]IntentHandler{
			domain.IntentGetLyricData:   lookup,
			domain.IntentWrongLyricData: disambiguation,
		},
		log: log,
	}
}

// Dispatch handles one turn. Its signature matches what the Lambda runtime
// expects from a handler function.
func (d *Dispatcher) Dispatch(ctx context.Context, event domain.LexEvent) (domain.LexResponse, error) {
	log := d.log.With(
		zap.String("turn_id", uuid.NewString()),
		zap.String("intent", event.CurrentIntent.Name),
		zap.String("invocation_source", string(event.InvocationSource)),
	)

	h, ok := d.handlers[event.CurrentIntent.Name]
	if !ok {
		log.Error("no handler for intent")
		return domain.LexResponse{}, fmt.Errorf("dispatcher: %w: %q", domain.ErrUnknownIntent, event.CurrentIntent.Name)
	}

	log.Info("turn started")
	resp, err := h.Handle(ctx, event)
	if err != nil {
		log.Error("turn failed", zap.Error(err))
		return domain.LexResponse{}, err
	}
	log.Info("turn finished", zap.String("dialog_action", string(resp.DialogAction.Type)))
	return resp, nil
}

package chat

import (
	"context"
	"log"

	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/customer"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/llm"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/notify"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/order"
	"github.com/larapitasantfrancesc-beep/giuseppe2.0/internal/prompt"
)

// Service orchestrates one chat turn. lookup, notifier and persister are
// optional: a nil collaborator simply disables that step, which is how the
// datastore-less deployment runs.
type Service struct {
	completions llm.Client
	lookup      *customer.Lookup
	notifier    notify.Notifier
	persister   *order.Persister
}

func NewService(
	completions llm.Client,
	lookup *customer.Lookup,
	notifier notify.Notifier,
	persister *order.Persister,
) *Service {
	return &Service{
		completions: completions,
		lookup:      lookup,
		notifier:    notifier,
		persister:   persister,
	}
}

// Respond runs lookup → prompt → completion → extraction → side effects.
// Side effects (staff notification, order persistence) never fail the reply.
func (s *Service) Respond(ctx context.Context, req *Request) (string, error) {
	var profile *customer.Profile
	if s.lookup != nil {
		profile = s.lookup.Profile(ctx, req.Message)
	}

	system := prompt.Build(profile)

	reply, err := s.completions.Complete(ctx, system, Turns(req.History, req.Message))
	if err != nil {
		return "", err
	}

	visible, extracted := order.Extract(reply)
	if extracted != nil {
		if s.notifier != nil {
			if err := s.notifier.NotifyOrder(ctx, extracted); err != nil {
				log.Printf("chat: order notification failed: %v", err)
			}
		}
		if s.persister != nil {
			if err := s.persister.Persist(ctx, extracted); err != nil {
				log.Printf("chat: order persistence failed: %v", err)
			}
		}
	}

	return visible, nil
}

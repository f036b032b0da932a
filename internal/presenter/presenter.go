// Package presenter drives the client side of a recipe request: it validates
// the input, calls the server and keeps the resulting view state.
package presenter

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pageza/dapur-ai/backend/internal/locale"
)

// StatusClearDelay is how long the status line stays after a round trip.
const StatusClearDelay = 2 * time.Second

// Generator performs the HTTP round trip; *client.Client implements it.
type Generator interface {
	Generate(ctx context.Context, ingredients string) ([]byte, error)
}

// Scheduler runs f once after d.
type Scheduler func(d time.Duration, f func())

// Presenter handles form submissions against one ViewModel.
type Presenter struct {
	gen      Generator
	vm       *ViewModel
	messages locale.Messages
	log      logrus.FieldLogger
	schedule Scheduler
	delay    time.Duration
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithScheduler replaces time.AfterFunc for the status cleanup.
func WithScheduler(s Scheduler) Option {
	return func(p *Presenter) { p.schedule = s }
}

// New creates a Presenter writing into vm.
func New(gen Generator, vm *ViewModel, messages locale.Messages, log logrus.FieldLogger, opts ...Option) *Presenter {
	p := &Presenter{
		gen:      gen,
		vm:       vm,
		messages: messages,
		log:      log,
		schedule: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		delay:    StatusClearDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ViewModel returns the state this presenter renders into.
func (p *Presenter) ViewModel() *ViewModel {
	return p.vm
}

// Submit runs one submission. Blank input never reaches the network.
func (p *Presenter) Submit(ctx context.Context, raw string) {
	ingredients := strings.TrimSpace(raw)
	if ingredients == "" {
		p.vm.showPlaceholder(p.messages.FillIngredients)
		return
	}

	p.vm.begin(p.messages.Generating)
	defer func() {
		p.vm.enableTrigger()
		p.schedule(p.delay, p.vm.clearStatus)
	}()

	body, err := p.gen.Generate(ctx, ingredients)
	if err != nil {
		p.fail(err)
		return
	}

	dishes, err := DecodeDishes(body)
	if err != nil {
		p.fail(err)
		return
	}

	if len(dishes) == 0 {
		p.vm.showPlaceholder(p.messages.NothingReturned)
		return
	}

	p.vm.showDishes(dishes, p.messages.Done)
}

func (p *Presenter) fail(err error) {
	p.log.WithError(err).Error("recipe request failed")
	p.vm.showError(p.messages.ErrorPrefix + err.Error())
}

package presenter

import (
	"sync"

	"github.com/pageza/dapur-ai/backend/internal/locale"
	"github.com/pageza/dapur-ai/backend/internal/model"
)

// ViewModel is the presenter's render state. Only the Presenter mutates it;
// renderers read a Snapshot. It is safe for concurrent use because the
// status cleanup runs on a timer goroutine.
type ViewModel struct {
	mu              sync.Mutex
	messages        locale.Messages
	status          string
	triggerDisabled bool
	dishes          []model.DishSuggestion
	placeholder     string
	errorText       string
}

// Snapshot is an immutable copy of a ViewModel.
type Snapshot struct {
	Messages        locale.Messages
	Status          string
	TriggerDisabled bool
	Dishes          []model.DishSuggestion
	Placeholder     string
	Error           string
}

// NewViewModel creates the initial state: no dishes and an invitation to
// generate some.
func NewViewModel(messages locale.Messages) *ViewModel {
	return &ViewModel{
		messages:    messages,
		placeholder: messages.NoResultsYet,
	}
}

// Snapshot copies the current state.
func (vm *ViewModel) Snapshot() Snapshot {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	dishes := make([]model.DishSuggestion, len(vm.dishes))
	copy(dishes, vm.dishes)
	return Snapshot{
		Messages:        vm.messages,
		Status:          vm.status,
		TriggerDisabled: vm.triggerDisabled,
		Dishes:          dishes,
		Placeholder:     vm.placeholder,
		Error:           vm.errorText,
	}
}

// showPlaceholder replaces the results with a single message card.
func (vm *ViewModel) showPlaceholder(msg string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.dishes = nil
	vm.errorText = ""
	vm.placeholder = msg
}

func (vm *ViewModel) showDishes(dishes []model.DishSuggestion, status string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.dishes = dishes
	vm.errorText = ""
	vm.placeholder = ""
	vm.status = status
}

func (vm *ViewModel) showError(msg string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.dishes = nil
	vm.placeholder = ""
	vm.errorText = msg
	vm.status = ""
}

func (vm *ViewModel) begin(status string) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.status = status
	vm.triggerDisabled = true
}

func (vm *ViewModel) enableTrigger() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.triggerDisabled = false
}

func (vm *ViewModel) clearStatus() {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.status = ""
}

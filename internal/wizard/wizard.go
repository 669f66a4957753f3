// Package wizard implements the four-step return flow: item selection,
// collection method, review, confirmation. It owns all form state and the
// step-gating rules; the map renderer is a side-effecting collaborator
// managed through the location selector.
package wizard

import (
	"errors"
	"fmt"

	"github.com/myokyal/loopify/internal/returns"
	"github.com/myokyal/loopify/internal/reward"
)

// Step identifies a wizard state.
type Step int

const (
	StepItemSelection Step = iota + 1
	StepCollectionMethod
	StepReview
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepItemSelection:
		return "item-selection"
	case StepCollectionMethod:
		return "collection-method"
	case StepReview:
		return "review"
	case StepConfirmed:
		return "confirmed"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Wizard is the return flow state machine. Transitions are strictly one
// step forward or backward; forward transitions are guarded, backward
// transitions never clear entered data.
type Wizard struct {
	step     Step
	category string
	item     string
	cond     string
	method   string
	shipping returns.ShippingAddress
	photo    string // data URL, optional
	selector *LocationSelector
}

// New creates a wizard at the item-selection step. renderer may be nil.
func New(renderer MapRenderer) *Wizard {
	return &Wizard{
		step:     StepItemSelection,
		selector: NewLocationSelector(renderer),
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.step
}

// Selector exposes the location selector so the map integration can
// register against it.
func (w *Wizard) Selector() *LocationSelector {
	return w.selector
}

// SelectCategory picks a category and resets the dependent item and
// condition choices, as changing category invalidates them.
func (w *Wizard) SelectCategory(id string) {
	if id == w.category {
		return
	}
	w.category = id
	w.item = ""
	w.cond = ""
}

// SelectItem picks an item within the current category.
func (w *Wizard) SelectItem(id string) {
	w.item = id
}

// SelectCondition picks a condition tier.
func (w *Wizard) SelectCondition(id string) {
	w.cond = id
}

// ChooseMethod sets the collection method. Choosing dropoff while on the
// collection step mounts the map renderer; choosing ship tears it down.
func (w *Wizard) ChooseMethod(method string) error {
	w.method = method
	if w.step != StepCollectionMethod {
		return nil
	}
	if method == returns.MethodDropoff {
		return w.selector.Mount()
	}
	w.selector.Unmount()
	return nil
}

// SetShipping stores the shipping address fields. Format validation
// happens at the Review guard, not here, so partial input is fine.
func (w *Wizard) SetShipping(addr returns.ShippingAddress) {
	w.shipping = addr
}

// AttachPhoto stores an optional data-URL-encoded photo.
func (w *Wizard) AttachPhoto(dataURL string) {
	w.photo = dataURL
}

// Reward computes the current estimate from the selection.
func (w *Wizard) Reward() reward.Estimate {
	return reward.Calculate(w.category, w.item, w.cond)
}

// CanProceed reports whether the guard for advancing out of the given
// step is satisfied.
func (w *Wizard) CanProceed(step Step) bool {
	switch step {
	case StepItemSelection:
		return w.category != "" && w.item != "" && w.cond != ""
	case StepCollectionMethod:
		switch w.method {
		case returns.MethodDropoff:
			_, ok := w.selector.Selected()
			return ok
		case returns.MethodShip:
			return w.shipping.Validate() == nil
		}
		return false
	case StepReview:
		// Review advances only through Confirm after submission.
		return false
	}
	return false
}

// Next advances one step if the current step's guard passes.
func (w *Wizard) Next() error {
	switch w.step {
	case StepItemSelection:
		if !w.CanProceed(StepItemSelection) {
			return errors.New("select a category, item and condition first")
		}
		w.step = StepCollectionMethod
		if w.method == returns.MethodDropoff {
			return w.selector.Mount()
		}
	case StepCollectionMethod:
		if !w.CanProceed(StepCollectionMethod) {
			return errors.New("complete the collection details first")
		}
		w.selector.Unmount()
		w.step = StepReview
	case StepReview:
		return errors.New("review advances through submission, not Next")
	case StepConfirmed:
		return errors.New("wizard already confirmed")
	}
	return nil
}

// Back moves one step backward. Always permitted from steps 2 and 3 and
// never clears entered data. Leaving the collection step unmounts the
// map so the renderer does not leak.
func (w *Wizard) Back() {
	switch w.step {
	case StepCollectionMethod:
		w.selector.Unmount()
		w.step = StepItemSelection
	case StepReview:
		w.step = StepCollectionMethod
		if w.method == returns.MethodDropoff {
			_ = w.selector.Mount()
		}
	}
}

// Confirm transitions Review to Confirmed. Called after a successful
// submission; a failed submission leaves the wizard on Review for a
// manual retry.
func (w *Wizard) Confirm() error {
	if w.step != StepReview {
		return fmt.Errorf("cannot confirm from %s", w.step)
	}
	w.step = StepConfirmed
	return nil
}

// Reset returns the wizard to the first step with all data cleared, for
// starting a new return after confirmation.
func (w *Wizard) Reset() {
	w.selector.Unmount()
	w.selector.Clear()
	w.category, w.item, w.cond, w.method = "", "", "", ""
	w.shipping = returns.ShippingAddress{}
	w.photo = ""
	w.step = StepItemSelection
}

// Snapshot assembles the submittable request from the wizard state.
// Exactly one collection detail set is populated, per the chosen method.
func (w *Wizard) Snapshot() returns.Request {
	req := returns.Request{
		Selection: returns.Selection{
			Category:     w.category,
			Item:         w.item,
			Condition:    w.cond,
			Method:       w.method,
			RewardAmount: w.Reward().Amount,
		},
		Photo: w.photo,
	}
	switch w.method {
	case returns.MethodDropoff:
		if p, ok := w.selector.Selected(); ok {
			point := p
			req.Selection.Dropoff = &point
		}
	case returns.MethodShip:
		addr := w.shipping
		req.Shipping = &addr
	}
	return req
}

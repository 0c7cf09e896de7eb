package wizard

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	// ErrUnknownAction indicates a form action the builder does not recognise.
	ErrUnknownAction = errors.New("unknown action")

	// ErrNoList indicates an add/remove action on a step without a repeated section.
	ErrNoList = errors.New("step has no entry list")
)

// ActionKind enumerates the controls a step page can submit.
type ActionKind string

const (
	ActionSave   ActionKind = "save"
	ActionNext   ActionKind = "next"
	ActionPrev   ActionKind = "prev"
	ActionEdit   ActionKind = "edit"
	ActionAdd    ActionKind = "add"
	ActionRemove ActionKind = "remove"
)

// Action is a parsed form control. Index is only meaningful for ActionRemove.
type Action struct {
	Kind  ActionKind
	Index int
}

// ParseAction decodes the value of the submit button, e.g. "next" or "remove:2".
// An empty value saves the form without moving.
func ParseAction(raw string) (Action, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Action{Kind: ActionSave}, nil
	}
	name, arg, hasArg := strings.Cut(raw, ":")
	switch ActionKind(name) {
	case ActionSave, ActionNext, ActionPrev, ActionEdit, ActionAdd:
		if hasArg {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, raw)
		}
		return Action{Kind: ActionKind(name)}, nil
	case "preview":
		return Action{Kind: ActionNext}, nil
	case ActionRemove:
		idx, err := strconv.Atoi(arg)
		if !hasArg || err != nil || idx < 0 {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, raw)
		}
		return Action{Kind: ActionRemove, Index: idx}, nil
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, raw)
	}
}

// String renders the action back to its form value.
func (a Action) String() string {
	if a.Kind == ActionRemove {
		return string(ActionRemove) + ":" + strconv.Itoa(a.Index)
	}
	return string(a.Kind)
}

// Submit applies the current step's component to the form and then performs
// the action. When the action fails, the returned Builder still carries the
// submitted field values so they are not lost.
func (b Builder) Submit(form url.Values, action Action) (Builder, error) {
	next := b
	if c := b.Component(); c != nil {
		next = next.Update(c.Apply(b.Data, form))
	}

	switch action.Kind {
	case ActionSave:
		return next, nil
	case ActionNext:
		return next.Next(), nil
	case ActionPrev:
		return next.Prev(), nil
	case ActionEdit:
		return next.SetStep(FirstStep), nil
	case ActionAdd, ActionRemove:
		c := b.Component()
		if c == nil {
			return next, ErrNoList
		}
		var (
			data = next.Data
			err  error
		)
		if action.Kind == ActionAdd {
			data, err = c.AddEntry(data)
		} else {
			data, err = c.RemoveEntry(data, action.Index)
		}
		if err != nil {
			return next, err
		}
		return next.Update(data), nil
	default:
		return next, fmt.Errorf("%w: %q", ErrUnknownAction, action.Kind)
	}
}

package console

import (
	"context"
)

// Schema describes an entity to the generic controller: how to produce an
// empty draft and how to read an id.
type Schema[T any] struct {
	Defaults func() T
	ID       func(T) string
}

// Controller is the list/form state machine every entity screen runs:
// the loaded collection, the in-progress draft, create-vs-edit mode, and
// the last error. One implementation, instantiated per entity.
//
// Not safe for concurrent use; the console drives it from a single flow.
type Controller[T any] struct {
	col    Collection[T]
	schema Schema[T]

	items   []T
	draft   T
	editID  string
	lastErr string
}

func NewController[T any](col Collection[T], schema Schema[T]) *Controller[T] {
	return &Controller[T]{
		col:    col,
		schema: schema,
		draft:  schema.Defaults(),
	}
}

// Items is the collection as of the last successful Load.
func (c *Controller[T]) Items() []T { return c.items }

// Draft exposes the form state for binding; edits mutate it in place.
func (c *Controller[T]) Draft() *T { return &c.draft }

// Editing reports the edit target, or ok=false in create mode.
func (c *Controller[T]) Editing() (id string, ok bool) { return c.editID, c.editID != "" }

// Err is the last error message, "" when clear.
func (c *Controller[T]) Err() string { return c.lastErr }

// Load replaces the collection wholesale. On failure the collection stays as
// it was. A prior error is never cleared here; only a successful mutation or
// Reset clears it.
func (c *Controller[T]) Load(ctx context.Context) error {
	items, err := c.col.List(ctx)
	if err != nil {
		c.lastErr = err.Error()
		return err
	}
	c.items = items
	return nil
}

// BeginEdit copies the identified entity into the draft and switches to edit
// mode. The id must be present in the loaded collection.
func (c *Controller[T]) BeginEdit(id string) bool {
	for _, item := range c.items {
		if c.schema.ID(item) == id {
			c.draft = item
			c.editID = id
			return true
		}
	}
	return false
}

// Submit inserts or updates the draft depending on mode. On success the form
// resets to an empty create draft, the error clears, and the collection is
// reloaded. On failure the draft and mode stay put so the user can retry
// without re-entering data.
func (c *Controller[T]) Submit(ctx context.Context) error {
	var err error
	if c.editID == "" {
		err = c.col.Insert(ctx, c.draft)
	} else {
		err = c.col.Update(ctx, c.editID, c.draft)
	}
	if err != nil {
		c.lastErr = err.Error()
		return err
	}

	c.draft = c.schema.Defaults()
	c.editID = ""
	c.lastErr = ""
	return c.Load(ctx)
}

// Delete removes by id and reloads. On failure the collection is stale until
// the next Load.
func (c *Controller[T]) Delete(ctx context.Context, id string) error {
	if err := c.col.Delete(ctx, id); err != nil {
		c.lastErr = err.Error()
		return err
	}
	return c.Load(ctx)
}

// Reset returns the form to an empty create draft and clears the error.
func (c *Controller[T]) Reset() {
	c.draft = c.schema.Defaults()
	c.editID = ""
	c.lastErr = ""
}

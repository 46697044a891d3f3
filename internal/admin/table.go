package admin

import (
	"context"
	"fmt"
	"log/slog"
)

// ConfirmFunc asks the user to approve a destructive action.
type ConfirmFunc func(prompt string) bool

// TableController drives one entity collection: it loads the item list,
// saves new or edited items, and deletes items behind a confirmation.
type TableController[T any] struct {
	service    ItemService[T]
	notifier   *Notifier
	confirm    ConfirmFunc
	logger     *slog.Logger
	entityName string

	items      []T
	loading    bool
	processing bool
}

func NewTableController[T any](service ItemService[T], notifier *Notifier, confirm ConfirmFunc, entityName string, logger *slog.Logger) *TableController[T] {
	return &TableController[T]{
		service:    service,
		notifier:   notifier,
		confirm:    confirm,
		logger:     logger,
		entityName: entityName,
	}
}

// Items returns the currently loaded collection.
func (c *TableController[T]) Items() []T {
	return c.items
}

// Processing reports whether a mutation is in flight.
func (c *TableController[T]) Processing() bool {
	return c.processing
}

// Loading reports whether a list fetch is in flight.
func (c *TableController[T]) Loading() bool {
	return c.loading
}

// Load refreshes the item list from the service.
func (c *TableController[T]) Load(ctx context.Context) error {
	c.loading = true
	defer func() { c.loading = false }()

	items, err := c.service.FetchItems(ctx)
	if err != nil {
		c.logger.Error("failed to load items",
			slog.String("entity", c.entityName),
			slog.Any("error", err))
		c.notifier.Show(fmt.Sprintf("Error loading %s list", c.entityName), true)
		return err
	}
	c.items = items
	return nil
}

// Submit saves the item: an empty id means it is new and gets created,
// otherwise the existing item is updated. On success the list is reloaded.
// A submit arriving while another mutation is in flight is ignored.
func (c *TableController[T]) Submit(ctx context.Context, item T) error {
	if c.processing {
		return nil
	}
	c.processing = true
	defer func() { c.processing = false }()

	var err error
	if c.service.ItemID(item) == "" {
		_, err = c.service.AddItem(ctx, item)
	} else {
		_, err = c.service.UpdateItem(ctx, item)
	}
	if err != nil {
		c.logger.Error("failed to save item",
			slog.String("entity", c.entityName),
			slog.Any("error", err))
		c.notifier.Show(fmt.Sprintf("Error saving %s", c.entityName), true)
		return err
	}

	c.notifier.Show(fmt.Sprintf("%s saved", c.entityName), false)
	return c.Load(ctx)
}

// Delete removes the item after user confirmation. A declined confirmation
// is not an error and performs no call.
func (c *TableController[T]) Delete(ctx context.Context, item T) error {
	if c.processing {
		return nil
	}
	if !c.confirm(fmt.Sprintf("Delete this %s?", c.entityName)) {
		return nil
	}

	c.processing = true
	defer func() { c.processing = false }()

	if err := c.service.DeleteItem(ctx, c.service.ItemID(item)); err != nil {
		c.logger.Error("failed to delete item",
			slog.String("entity", c.entityName),
			slog.Any("error", err))
		c.notifier.Show(fmt.Sprintf("Error deleting %s", c.entityName), true)
		return err
	}

	c.notifier.Show(fmt.Sprintf("%s deleted", c.entityName), false)
	return c.Load(ctx)
}

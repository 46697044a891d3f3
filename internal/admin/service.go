// Package admin implements the terminal back-office client: generic table
// and form controllers over the REST API.
package admin

import "context"

// ItemService abstracts CRUD access to one entity collection for the
// generic controllers. Implementations translate between the wire format
// and the client-side item type T.
type ItemService[T any] interface {
	// FetchItems returns all items of the collection.
	FetchItems(ctx context.Context) ([]T, error)
	// AddItem creates the item and returns the stored version.
	AddItem(ctx context.Context, item T) (T, error)
	// UpdateItem saves changes to an existing item.
	UpdateItem(ctx context.Context, item T) (T, error)
	// DeleteItem removes the item with the given id.
	DeleteItem(ctx context.Context, id string) error
	// ItemID reports the identifier of an item; empty means not yet stored.
	ItemID(item T) string
}

package admin

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// SubmitFunc persists a completed draft.
type SubmitFunc[T any] func(ctx context.Context, item T) error

// FormController edits one item at a time. The draft starts as a copy of the
// opened item, so edits never leak into the table until submitted.
type FormController[T any] struct {
	service ItemService[T]
	submit  SubmitFunc[T]

	open   bool
	busy   bool
	draft  T
	itemID string
}

func NewFormController[T any](service ItemService[T], submit SubmitFunc[T]) *FormController[T] {
	return &FormController[T]{service: service, submit: submit}
}

// Open shows the form for the given item. The draft is reinitialized when
// the form was closed or a different item is opened; reopening the same item
// keeps in-progress edits.
func (f *FormController[T]) Open(item T) {
	id := f.service.ItemID(item)
	if !f.open || id != f.itemID {
		f.draft = item
		f.itemID = id
	}
	f.open = true
}

// Close hides the form and discards the draft.
func (f *FormController[T]) Close() {
	f.open = false
	var zero T
	f.draft = zero
	f.itemID = ""
}

// IsOpen reports whether the form is showing.
func (f *FormController[T]) IsOpen() bool {
	return f.open
}

// Busy reports whether a submit is in flight.
func (f *FormController[T]) Busy() bool {
	return f.busy
}

// Draft returns the current draft item.
func (f *FormController[T]) Draft() T {
	return f.draft
}

// SetField assigns the raw input value to the draft field with the given
// json tag. Numeric fields are parsed from the string; a value that does not
// parse leaves the field unchanged and returns an error.
func (f *FormController[T]) SetField(name, raw string) error {
	v := reflect.ValueOf(&f.draft).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if tag != name {
			continue
		}
		return setField(v.Field(i), raw)
	}
	return fmt.Errorf("unknown field %q", name)
}

func setField(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Float64, reflect.Float32:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", raw)
		}
		field.SetFloat(n)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("not an integer: %q", raw)
		}
		field.SetInt(n)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported field type %s", field.Type())
		}
		field.Set(reflect.ValueOf(splitList(raw)))
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}
	return nil
}

// splitList parses a comma separated list, dropping empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Submit persists the draft. The form stays open on failure so the user can
// retry; it closes only after a successful save. Reentrant submits while one
// is already in flight are ignored.
func (f *FormController[T]) Submit(ctx context.Context) error {
	if f.busy {
		return nil
	}
	f.busy = true
	defer func() { f.busy = false }()

	if err := f.submit(ctx, f.draft); err != nil {
		return err
	}
	f.Close()
	return nil
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/andrerobles/backoffice/internal/admin"
	"github.com/andrerobles/backoffice/internal/config"
)

// driver is one entity's slice of the REPL: listing, adding, editing, and
// deleting items.
type driver interface {
	List(ctx context.Context) error
	Add(ctx context.Context, in *bufio.Scanner) error
	Edit(ctx context.Context, id string, in *bufio.Scanner) error
	Delete(ctx context.Context, id string) error
}

// column describes how one attribute of an item is rendered in the list view.
type column[T any] struct {
	Label string
	Value func(T) string
}

// field maps a prompt label to the json name the form controller edits.
type field struct {
	Label string
	Name  string
}

type entityDriver[T any] struct {
	table   *admin.TableController[T]
	form    *admin.FormController[T]
	service admin.ItemService[T]
	columns []column[T]
	fields  []field
}

func newEntityDriver[T any](service admin.ItemService[T], entityName string, columns []column[T], fields []field, notifier *admin.Notifier, confirm admin.ConfirmFunc, logger *slog.Logger) *entityDriver[T] {
	table := admin.NewTableController(service, notifier, confirm, entityName, logger)
	form := admin.NewFormController(service, table.Submit)
	return &entityDriver[T]{
		table:   table,
		form:    form,
		service: service,
		columns: columns,
		fields:  fields,
	}
}

func (d *entityDriver[T]) List(ctx context.Context) error {
	if err := d.table.Load(ctx); err != nil {
		return err
	}
	d.render()
	return nil
}

func (d *entityDriver[T]) render() {
	widths := make([]int, len(d.columns))
	for i, col := range d.columns {
		widths[i] = len(col.Label)
	}
	rows := make([][]string, 0, len(d.table.Items()))
	for _, item := range d.table.Items() {
		row := make([]string, len(d.columns))
		for i, col := range d.columns {
			row[i] = col.Value(item)
			if len(row[i]) > widths[i] {
				widths[i] = len(row[i])
			}
		}
		rows = append(rows, row)
	}
	for i, col := range d.columns {
		fmt.Printf("%-*s  ", widths[i], col.Label)
	}
	fmt.Println()
	for _, row := range rows {
		for i, cell := range row {
			fmt.Printf("%-*s  ", widths[i], cell)
		}
		fmt.Println()
	}
	fmt.Printf("(%d items)\n", len(rows))
}

func (d *entityDriver[T]) Add(ctx context.Context, in *bufio.Scanner) error {
	var zero T
	d.form.Open(zero)
	return d.fill(ctx, in)
}

func (d *entityDriver[T]) Edit(ctx context.Context, id string, in *bufio.Scanner) error {
	item, ok := d.find(ctx, id)
	if !ok {
		fmt.Printf("no item with id %s\n", id)
		return nil
	}
	d.form.Open(item)
	return d.fill(ctx, in)
}

// fill prompts for every field; an empty answer keeps the current value.
func (d *entityDriver[T]) fill(ctx context.Context, in *bufio.Scanner) error {
	for _, f := range d.fields {
		fmt.Printf("%s: ", f.Label)
		if !in.Scan() {
			d.form.Close()
			return nil
		}
		raw := strings.TrimSpace(in.Text())
		if raw == "" {
			continue
		}
		if err := d.form.SetField(f.Name, raw); err != nil {
			fmt.Printf("invalid value: %v\n", err)
			d.form.Close()
			return nil
		}
	}
	return d.form.Submit(ctx)
}

func (d *entityDriver[T]) Delete(ctx context.Context, id string) error {
	item, ok := d.find(ctx, id)
	if !ok {
		fmt.Printf("no item with id %s\n", id)
		return nil
	}
	return d.table.Delete(ctx, item)
}

func (d *entityDriver[T]) find(ctx context.Context, id string) (T, bool) {
	var zero T
	if len(d.table.Items()) == 0 {
		if err := d.table.Load(ctx); err != nil {
			return zero, false
		}
	}
	for _, item := range d.table.Items() {
		if d.service.ItemID(item) == id {
			return item, true
		}
	}
	return zero, false
}

func newCategoryDriver(cfg *config.AdminConfig, notifier *admin.Notifier, confirm admin.ConfirmFunc, logger *slog.Logger) driver {
	service := admin.NewCategoryService(cfg.Api.URL, cfg.Api.Key, cfg.Api.Timeout)
	columns := []column[admin.Category]{
		{Label: "ID", Value: func(c admin.Category) string { return c.ID }},
		{Label: "Name", Value: func(c admin.Category) string { return c.Name }},
	}
	fields := []field{{Label: "Name", Name: "name"}}
	return newEntityDriver(service, "category", columns, fields, notifier, confirm, logger)
}

func newProductDriver(cfg *config.AdminConfig, notifier *admin.Notifier, confirm admin.ConfirmFunc, logger *slog.Logger) driver {
	service := admin.NewProductService(cfg.Api.URL, cfg.Api.Key, cfg.Api.Timeout)
	columns := []column[admin.Product]{
		{Label: "ID", Value: func(p admin.Product) string { return p.ID }},
		{Label: "Name", Value: func(p admin.Product) string { return p.Name }},
		{Label: "Price", Value: func(p admin.Product) string { return fmt.Sprintf("%.2f", p.Price) }},
		{Label: "Categories", Value: func(p admin.Product) string { return p.Categories }},
	}
	fields := []field{
		{Label: "Name", Name: "name"},
		{Label: "Description", Name: "description"},
		{Label: "Price", Name: "price"},
		{Label: "Category IDs (comma separated)", Name: "categoryIds"},
		{Label: "Image URL", Name: "imageUrl"},
	}
	return newEntityDriver(service, "product", columns, fields, notifier, confirm, logger)
}

func newOrderDriver(cfg *config.AdminConfig, notifier *admin.Notifier, confirm admin.ConfirmFunc, logger *slog.Logger) driver {
	service := admin.NewOrderService(cfg.Api.URL, cfg.Api.Key, cfg.Api.Timeout)
	columns := []column[admin.Order]{
		{Label: "ID", Value: func(o admin.Order) string { return o.ID }},
		{Label: "Date", Value: func(o admin.Order) string { return o.Date }},
		{Label: "Products", Value: func(o admin.Order) string { return o.Products }},
		{Label: "Total", Value: func(o admin.Order) string { return fmt.Sprintf("%.2f", o.Total) }},
	}
	fields := []field{
		{Label: "Date (RFC3339, empty for now)", Name: "date"},
		{Label: "Product IDs (comma separated)", Name: "productIds"},
		{Label: "Total", Name: "total"},
	}
	return newEntityDriver(service, "order", columns, fields, notifier, confirm, logger)
}

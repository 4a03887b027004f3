package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"partscatalog/internal/domain/model"
)

// -item <productId>[:qty] を何回でも
type itemsFlag []model.OrderItemInput

func (f *itemsFlag) String() string { return fmt.Sprint(len(*f)) }

func (f *itemsFlag) Set(v string) error {
	id, qty := v, 1
	if i := strings.LastIndex(v, ":"); i >= 0 {
		n, err := strconv.Atoi(v[i+1:])
		if err != nil || n <= 0 {
			return fmt.Errorf("bad quantity in %q", v)
		}
		id, qty = v[:i], n
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("bad item %q", v)
	}
	*f = append(*f, model.OrderItemInput{ProductID: id, Quantity: qty})
	return nil
}

func (a *app) order(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ContinueOnError)
	var items itemsFlag
	fs.Var(&items, "item", "productId[:qty] (repeatable)")
	email := fs.String("email", "", "customer email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(items) == 0 {
		return errors.New("at least one -item is required")
	}

	in := model.OrderInput{Items: items}
	if *email != "" {
		in.CustomerEmail = email
	}
	o, err := a.client.PlaceOrder(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "placed %s (%s) total %s\n", o.ID, o.Status, o.Total.StringFixed(2))
	return nil
}

func (a *app) orders(ctx context.Context) error {
	list, err := a.client.ListOrders(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSTATUS\tPAYMENT\tITEMS\tTOTAL")
	for _, o := range list {
		n := 0
		for _, l := range o.Items {
			n += l.Quantity
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", o.ID, o.Date, o.Status, o.PaymentStatus, n, o.Total.StringFixed(2))
	}
	return w.Flush()
}

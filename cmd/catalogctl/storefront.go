package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"partscatalog/internal/catalog"
	"partscatalog/internal/domain/model"
)

// selection は空なら未選択。
func selection(v string) catalog.Selection {
	if v == "" {
		return catalog.Any()
	}
	return catalog.Only(v)
}

func (a *app) browse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)
	q := fs.String("q", "", "search name/description")
	brand := fs.String("brand", "", "brand name (exact)")
	category := fs.String("category", "", "category (exact)")
	manufacturer := fs.String("manufacturer", "", "manufacturer name (exact)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	snap, err := catalog.NewStorefront(a.client).Load(ctx)
	if err != nil {
		return err
	}

	facets := catalog.Facets{
		Search:       *q,
		Brand:        selection(*brand),
		Category:     selection(*category),
		Manufacturer: selection(*manufacturer),
	}
	visible := snap.Visible(facets)

	opts := snap.Options()
	fmt.Fprintf(a.stdout, "brands: %s\n", strings.Join(opts.Brands, ", "))
	fmt.Fprintf(a.stdout, "categories: %s\n", strings.Join(opts.Categories, ", "))
	fmt.Fprintf(a.stdout, "manufacturers: %s\n\n", strings.Join(opts.Manufacturers, ", "))

	if len(visible) == 0 {
		if facets.Active() {
			fmt.Fprintln(a.stdout, "no products match; clear the filters to see everything")
		} else {
			fmt.Fprintln(a.stdout, "no products")
		}
		return nil
	}
	printProducts(a, visible)
	fmt.Fprintf(a.stdout, "\n%d of %d products\n", len(visible), len(snap.Products))
	return nil
}

func (a *app) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: show <id>")
	}
	d, err := catalog.NewStorefront(a.client).Detail(ctx, args[0])
	if err != nil {
		return err
	}

	p := d.Product
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", p.ID)
	fmt.Fprintf(w, "name\t%s\n", p.Name)
	fmt.Fprintf(w, "brand\t%s\n", p.Brand)
	if p.Manufacturer != nil {
		fmt.Fprintf(w, "manufacturer\t%s\n", *p.Manufacturer)
	}
	fmt.Fprintf(w, "category\t%s\n", p.Category)
	fmt.Fprintf(w, "rating\t%.1f (%d reviews)\n", p.Rating, p.ReviewCount)
	if p.Discount != nil && *p.Discount > 0 {
		fmt.Fprintf(w, "price\t%s (-%d%%, was %s)\n", d.DiscountedPrice.StringFixed(2), *p.Discount, p.Price.StringFixed(2))
	} else {
		fmt.Fprintf(w, "price\t%s\n", p.Price.StringFixed(2))
	}
	fmt.Fprintf(w, "description\t%s\n", p.Description)
	if err := w.Flush(); err != nil {
		return err
	}

	if len(d.Related) > 0 {
		fmt.Fprintln(a.stdout, "\nrelated:")
		printProducts(a, d.Related)
	}
	return nil
}

func (a *app) categories(ctx context.Context) error {
	cs, err := a.client.ListCategories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cs {
		fmt.Fprintln(a.stdout, c)
	}
	return nil
}

func printProducts(a *app, ps []model.Product) {
	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBRAND\tMANUFACTURER\tCATEGORY\tPRICE\tRATING")
	for _, p := range ps {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.1f\n",
			p.ID, p.Name, p.Brand, p.ManufacturerName(), p.Category, p.DiscountedPrice().StringFixed(2), p.Rating)
	}
	_ = w.Flush()
}

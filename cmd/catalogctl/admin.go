package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"partscatalog/internal/admin"
)

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", os.Getenv("ADMIN_EMAIL"), "admin email")
	password := fs.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("email and password are required")
	}

	tok, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "export API_TOKEN=%s\n", tok.AccessToken)
	fmt.Fprintf(a.stdout, "# expires in %ds\n", tok.ExpiresIn)
	return nil
}

// confirmer は stdin で y/N を聞く。-yes なら聞かない。
func (a *app) confirmer(yes bool) admin.Confirmer {
	return admin.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
		if yes {
			return true, nil
		}
		fmt.Fprintf(a.stdout, "%s [y/N]: ", prompt)
		line, err := bufio.NewReader(a.stdin).ReadString('\n')
		if err != nil && line == "" {
			return false, nil
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	})
}

func (a *app) manage(ctx context.Context, entity string, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: %s list|create|edit <id>|delete <id>", entity)
	}
	action, rest := args[0], args[1:]

	yes := false
	if action == "delete" {
		fs := flag.NewFlagSet("delete", flag.ContinueOnError)
		fs.BoolVar(&yes, "yes", false, "do not ask for confirmation")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		rest = fs.Args()
	}

	dash := admin.NewDashboard(a.client, a.confirmer(yes), admin.PanelConfig{Timeout: a.cfg.Timeout, Logger: a.logger})
	view, err := admin.ParseView(entity)
	if err != nil {
		return err
	}
	if err := dash.Activate(ctx, view); err != nil {
		return err
	}

	switch entity {
	case "products":
		return a.manageProducts(ctx, dash.Products, action, rest)
	case "brands":
		return a.manageBrands(ctx, dash.Brands, action, rest)
	default:
		return a.manageManufacturers(ctx, dash.Manufacturers, action, rest)
	}
}

// target は edit/delete の <id> を取り出す。
func target(action string, args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, fmt.Errorf("usage: %s <id>", action)
	}
	return args[0], args[1:], nil
}

func (a *app) deleteEntity(ctx context.Context, del func(context.Context, string) (bool, error), args []string) error {
	id, _, err := target("delete", args)
	if err != nil {
		return err
	}
	deleted, err := del(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintln(a.stdout, "cancelled")
		return nil
	}
	fmt.Fprintf(a.stdout, "deleted %s\n", id)
	return nil
}

func (a *app) manageProducts(ctx context.Context, p *admin.ProductPanel, action string, args []string) error {
	switch action {
	case "list":
		printProducts(a, p.Items())
		return nil
	case "delete":
		return a.deleteEntity(ctx, p.Delete, args)
	case "edit":
		id, rest, err := target("edit", args)
		if err != nil {
			return err
		}
		if err := p.Edit(id); err != nil {
			return err
		}
		args = rest
	case "create":
	default:
		return fmt.Errorf("unknown action %q", action)
	}

	d := p.Session().Draft()
	fs := flag.NewFlagSet(action, flag.ContinueOnError)
	fs.StringVar(&d.Name, "name", d.Name, "name")
	fs.StringVar(&d.Description, "description", d.Description, "description")
	fs.StringVar(&d.Price, "price", d.Price, "price")
	fs.StringVar(&d.Brand, "brand", d.Brand, "brand name")
	fs.StringVar(&d.Manufacturer, "manufacturer", d.Manufacturer, "manufacturer name (empty for none)")
	fs.StringVar(&d.Category, "category", d.Category, "category")
	fs.StringVar(&d.ImageURL, "image-url", d.ImageURL, "image URL")
	fs.StringVar(&d.ImageHint, "image-hint", d.ImageHint, "image hint")
	fs.StringVar(&d.Rating, "rating", d.Rating, "rating 0-5")
	fs.StringVar(&d.ReviewCount, "reviews", d.ReviewCount, "review count")
	fs.StringVar(&d.Discount, "discount", d.Discount, "discount percent (empty for none)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := p.SetDraft(d); err != nil {
		return err
	}

	out, err := p.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "saved product %s (%s)\n", out.ID, out.Name)
	return nil
}

func (a *app) manageBrands(ctx context.Context, p *admin.BrandPanel, action string, args []string) error {
	switch action {
	case "list":
		w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tLOGO")
		for _, b := range p.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", b.ID, b.Name, b.LogoURL)
		}
		return w.Flush()
	case "delete":
		return a.deleteEntity(ctx, p.Delete, args)
	case "edit":
		id, rest, err := target("edit", args)
		if err != nil {
			return err
		}
		if err := p.Edit(id); err != nil {
			return err
		}
		args = rest
	case "create":
	default:
		return fmt.Errorf("unknown action %q", action)
	}

	d := p.Session().Draft()
	fs := flag.NewFlagSet(action, flag.ContinueOnError)
	fs.StringVar(&d.Name, "name", d.Name, "name")
	fs.StringVar(&d.LogoURL, "logo-url", d.LogoURL, "logo URL")
	fs.StringVar(&d.LogoHint, "logo-hint", d.LogoHint, "logo hint")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := p.SetDraft(d); err != nil {
		return err
	}

	out, err := p.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "saved brand %s (%s)\n", out.ID, out.Name)
	return nil
}

func (a *app) manageManufacturers(ctx context.Context, p *admin.ManufacturerPanel, action string, args []string) error {
	switch action {
	case "list":
		w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMODELS\tLOGO")
		for _, m := range p.Items() {
			logo := "-"
			if m.ImageBase64 != nil {
				logo = "yes"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.ID, m.Name, strings.Join(m.Models, ", "), logo)
		}
		return w.Flush()
	case "delete":
		return a.deleteEntity(ctx, p.Delete, args)
	case "edit":
		id, rest, err := target("edit", args)
		if err != nil {
			return err
		}
		if err := p.Edit(id); err != nil {
			return err
		}
		args = rest
	case "create":
	default:
		return fmt.Errorf("unknown action %q", action)
	}

	d := p.Session().Draft()
	fs := flag.NewFlagSet(action, flag.ContinueOnError)
	fs.StringVar(&d.Name, "name", d.Name, "name")
	fs.StringVar(&d.Models, "models", d.Models, "comma separated models")
	logo := fs.String("logo", "", "image file to use as logo")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *logo != "" {
		uri, err := admin.EncodeLogo(*logo)
		if err != nil {
			return err
		}
		d.ImageBase64 = uri
	}
	if err := p.SetDraft(d); err != nil {
		return err
	}

	out, err := p.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "saved manufacturer %s (%s)\n", out.ID, out.Name)
	return nil
}

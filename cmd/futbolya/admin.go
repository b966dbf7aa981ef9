package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"futbolya/internal/domain"
	"futbolya/internal/modules/business"
	"futbolya/internal/modules/coupons"
	"futbolya/internal/modules/users"
)

func (a *app) cmdBusiness(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("business needs a subcommand: list, get, mine, add, update, activate, deactivate, remove")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		list, err := a.business.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("no businesses found")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tADDRESS\tHOURS\tACTIVE\tRATING")
		for _, b := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s-%s\t%t\t%.1f\n",
				b.ID, b.BusinessName, b.Address, b.OpeningAt, b.ClosingAt, b.Active, b.AverageRating)
		}
		return w.Flush()

	case "mine":
		biz, err := a.business.CurrentForOwner(ctx)
		if err != nil {
			return err
		}
		printBusiness(biz)
		return nil

	case "get":
		id, err := idFlag("business get", rest)
		if err != nil {
			return err
		}
		biz, err := a.business.Get(ctx, id)
		if err != nil {
			return err
		}
		printBusiness(biz)
		return nil

	case "add", "update":
		fs := flag.NewFlagSet("business "+sub, flag.ExitOnError)
		id := fs.Int64("id", 0, "business id (update only)")
		name := fs.String("name", "", "business name")
		address := fs.String("address", "", "address")
		locality := fs.Int64("locality", 0, "locality id")
		opening := fs.String("opening", "", "opening hour HH:MM")
		closing := fs.String("closing", "", "closing hour HH:MM")
		deposit := fs.Float64("deposit", 0, "reservation deposit percentage")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		in := business.BusinessInput{
			BusinessName:                 *name,
			Address:                      *address,
			Locality:                     *locality,
			OpeningAt:                    *opening,
			ClosingAt:                    *closing,
			ReservationDepositPercentage: *deposit,
		}
		if sub == "add" {
			sess := a.sessions.Current()
			if sess.LoggedIn() {
				in.Owner = sess.UserData.UserID
			}
			b, err := a.business.Create(ctx, in)
			if err != nil {
				return err
			}
			a.bus.Success(fmt.Sprintf("business %d created, pending activation", b.ID))
			return nil
		}
		if *id == 0 {
			return fmt.Errorf("-id is required")
		}
		if _, err := a.business.Update(ctx, *id, in); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("business %d updated", *id))
		return nil

	case "activate", "deactivate":
		id, err := idFlag("business "+sub, rest)
		if err != nil {
			return err
		}
		if _, err := a.business.SetActive(ctx, id, sub == "activate"); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("business %d %sd", id, sub))
		return nil

	case "remove":
		id, err := idFlag("business remove", rest)
		if err != nil {
			return err
		}
		if err := a.business.Remove(ctx, id); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("business %d removed", id))
		return nil

	default:
		return fmt.Errorf("unknown business subcommand %q", sub)
	}
}

func (a *app) cmdUsers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("users needs a subcommand: list, get, update, remove")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		list, err := a.users.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("no users found")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tCATEGORY")
		for _, u := range list {
			fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n", u.ID, u.Name, u.Surname, u.Email, u.Category)
		}
		return w.Flush()

	case "get":
		id, err := idFlag("users get", rest)
		if err != nil {
			return err
		}
		u, err := a.users.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("%d: %s %s <%s> (%s)\n", u.ID, u.Name, u.Surname, u.Email, u.Category)
		return nil

	case "update":
		fs := flag.NewFlagSet("users update", flag.ExitOnError)
		id := fs.Int64("id", 0, "user id")
		name := fs.String("name", "", "first name")
		surname := fs.String("surname", "", "surname")
		email := fs.String("email", "", "email")
		category := fs.String("category", "", "user|owner|admin")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == 0 {
			return fmt.Errorf("-id is required")
		}
		if _, err := a.users.Update(ctx, *id, users.UserInput{
			Name: *name, Surname: *surname, Email: *email, Category: *category,
		}); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("user %d updated", *id))
		return nil

	case "remove":
		id, err := idFlag("users remove", rest)
		if err != nil {
			return err
		}
		if err := a.users.Remove(ctx, id); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("user %d removed", id))
		return nil

	default:
		return fmt.Errorf("unknown users subcommand %q", sub)
	}
}

// namedRow is the shared shape of the two lookup catalogs.
type namedRow struct {
	ID   int64
	Name string
}

// cmdNameCatalog drives both catalog families; they differ only in the
// service calls behind each subcommand.
func (a *app) cmdNameCatalog(ctx context.Context, args []string, kind string,
	list func(context.Context) ([]namedRow, error),
	create func(context.Context, string) (namedRow, error),
	update func(context.Context, int64, string) (namedRow, error),
	remove func(context.Context, int64) error,
) error {
	if len(args) == 0 {
		return fmt.Errorf("%s needs a subcommand: list, add, update, remove", kind)
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		rows, err := list(ctx)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Printf("no %s found\n", kind)
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, row := range rows {
			fmt.Fprintf(w, "%d\t%s\n", row.ID, row.Name)
		}
		return w.Flush()

	case "add":
		fs := flag.NewFlagSet(kind+" add", flag.ExitOnError)
		name := fs.String("name", "", "name")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *name == "" {
			return fmt.Errorf("-name is required")
		}
		row, err := create(ctx, *name)
		if err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("%s %q created (id %d)", kind, row.Name, row.ID))
		return nil

	case "update":
		fs := flag.NewFlagSet(kind+" update", flag.ExitOnError)
		id := fs.Int64("id", 0, "record id")
		name := fs.String("name", "", "new name")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == 0 || *name == "" {
			return fmt.Errorf("-id and -name are required")
		}
		if _, err := update(ctx, *id, *name); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("%s %d renamed to %q", kind, *id, *name))
		return nil

	case "remove":
		id, err := idFlag(kind+" remove", rest)
		if err != nil {
			return err
		}
		if err := remove(ctx, id); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("%s %d removed", kind, id))
		return nil

	default:
		return fmt.Errorf("unknown %s subcommand %q", kind, sub)
	}
}

func (a *app) cmdCategories(ctx context.Context, args []string) error {
	return a.cmdNameCatalog(ctx, args, "categories",
		func(ctx context.Context) ([]namedRow, error) {
			cats, err := a.catalog.Categories(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]namedRow, 0, len(cats))
			for _, c := range cats {
				rows = append(rows, namedRow{ID: c.ID, Name: c.Name})
			}
			return rows, nil
		},
		func(ctx context.Context, name string) (namedRow, error) {
			c, err := a.catalog.CreateCategory(ctx, name)
			if err != nil {
				return namedRow{}, err
			}
			return namedRow{ID: c.ID, Name: c.Name}, nil
		},
		func(ctx context.Context, id int64, name string) (namedRow, error) {
			c, err := a.catalog.UpdateCategory(ctx, id, name)
			if err != nil {
				return namedRow{}, err
			}
			return namedRow{ID: c.ID, Name: c.Name}, nil
		},
		a.catalog.RemoveCategory,
	)
}

func (a *app) cmdLocalities(ctx context.Context, args []string) error {
	return a.cmdNameCatalog(ctx, args, "localities",
		func(ctx context.Context) ([]namedRow, error) {
			locs, err := a.catalog.Localities(ctx)
			if err != nil {
				return nil, err
			}
			rows := make([]namedRow, 0, len(locs))
			for _, l := range locs {
				rows = append(rows, namedRow{ID: l.ID, Name: l.Name})
			}
			return rows, nil
		},
		func(ctx context.Context, name string) (namedRow, error) {
			l, err := a.catalog.CreateLocality(ctx, name)
			if err != nil {
				return namedRow{}, err
			}
			return namedRow{ID: l.ID, Name: l.Name}, nil
		},
		func(ctx context.Context, id int64, name string) (namedRow, error) {
			l, err := a.catalog.UpdateLocality(ctx, id, name)
			if err != nil {
				return namedRow{}, err
			}
			return namedRow{ID: l.ID, Name: l.Name}, nil
		},
		a.catalog.RemoveLocality,
	)
}

func printBusiness(b *domain.Business) {
	fmt.Printf("%d: %s\n", b.ID, b.BusinessName)
	fmt.Printf("   address:  %s (locality %d)\n", b.Address, b.Locality.ID)
	fmt.Printf("   hours:    %s - %s\n", b.OpeningAt, b.ClosingAt)
	fmt.Printf("   deposit:  %.0f%%\n", b.ReservationDepositPercentage)
	fmt.Printf("   active:   %t\n", b.Active)
	fmt.Printf("   rating:   %.1f\n", b.AverageRating)
}

func (a *app) cmdCoupons(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("coupons needs a subcommand: list, get, add, update, remove")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		list, err := a.coupons.List(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("no coupons found")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCODE\tDISCOUNT\tBUSINESS\tACTIVE")
		for _, c := range list {
			fmt.Fprintf(w, "%d\t%s\t%.0f%%\t%d\t%t\n", c.ID, c.Code, c.DiscountPercentage, c.Business.ID, c.Active)
		}
		return w.Flush()

	case "get":
		id, err := idFlag("coupons get", rest)
		if err != nil {
			return err
		}
		c, err := a.coupons.Get(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("%d: %s (%.0f%% off, business %d, active=%t)\n",
			c.ID, c.Code, c.DiscountPercentage, c.Business.ID, c.Active)
		return nil

	case "add", "update":
		fs := flag.NewFlagSet("coupons "+sub, flag.ExitOnError)
		id := fs.Int64("id", 0, "coupon id (update only)")
		code := fs.String("code", "", "coupon code")
		discount := fs.Float64("discount", 0, "discount percentage")
		businessID := fs.Int64("business", 0, "business id")
		expires := fs.String("expires", "", "expiry date YYYY-MM-DD")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		in := coupons.CouponInput{
			Code:               *code,
			DiscountPercentage: *discount,
			Business:           *businessID,
			ExpiresAt:          *expires,
		}
		if sub == "add" {
			c, err := a.coupons.Create(ctx, in)
			if err != nil {
				return err
			}
			a.bus.Success(fmt.Sprintf("coupon %s created", c.Code))
			return nil
		}
		if *id == 0 {
			return fmt.Errorf("-id is required")
		}
		if _, err := a.coupons.Update(ctx, *id, in); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("coupon %d updated", *id))
		return nil

	case "remove":
		id, err := idFlag("coupons remove", rest)
		if err != nil {
			return err
		}
		if err := a.coupons.Remove(ctx, id); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("coupon %d removed", id))
		return nil

	default:
		return fmt.Errorf("unknown coupons subcommand %q", sub)
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"futbolya/internal/domain"
	"futbolya/internal/modules/auth"
	"futbolya/internal/modules/pitches"
	"futbolya/internal/modules/reservations"
	"futbolya/internal/session"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	sess, err := a.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	a.bus.Success(fmt.Sprintf("welcome back, %s", sess.UserData.Name))
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "first name")
	surname := fs.String("surname", "", "surname")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	category := fs.String("category", string(domain.CategoryUser), "account category (user|owner)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("-name, -email and -password are required")
	}

	sess, err := a.auth.Register(ctx, auth.RegisterRequest{
		Name:     *name,
		Surname:  *surname,
		Email:    *email,
		Password: *password,
		Category: *category,
	})
	if err != nil {
		return err
	}
	if sess.LoggedIn() {
		a.bus.Success(fmt.Sprintf("account created, you are logged in as %s", sess.UserData.Email))
	} else {
		a.bus.Success("account created, you can log in now")
	}
	return nil
}

func (a *app) cmdLogout() error {
	if err := a.auth.Logout(); err != nil {
		return err
	}
	a.bus.Info("logged out")
	return nil
}

func (a *app) cmdWhoami() error {
	sess := a.sessions.Current()
	if !sess.LoggedIn() {
		fmt.Println("not logged in")
		return nil
	}
	u := sess.UserData
	fmt.Printf("%s %s <%s> (%s, id %d)\n", u.Name, u.Surname, u.Email, u.Category, u.UserID)
	return nil
}

func (a *app) cmdPitches(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("pitches needs a subcommand: list, get, add, update, remove")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		fs := flag.NewFlagSet("pitches list", flag.ExitOnError)
		active := fs.Bool("active", false, "only pitches of active businesses")
		businessID := fs.Int64("business", 0, "only pitches of one business")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		var (
			list []domain.Pitch
			err  error
		)
		switch {
		case *businessID != 0:
			list, err = a.pitches.ByBusiness(ctx, *businessID)
		case *active:
			list, err = a.pitches.ListActive(ctx)
		default:
			list, err = a.pitches.List(ctx)
		}
		if err != nil {
			return err
		}
		printPitches(list)
		return nil

	case "get":
		id, err := idFlag("pitches get", rest)
		if err != nil {
			return err
		}
		p, err := a.pitches.Get(ctx, id)
		if err != nil {
			return err
		}
		printPitches([]domain.Pitch{*p})
		return nil

	case "add", "update":
		fs := flag.NewFlagSet("pitches "+sub, flag.ExitOnError)
		id := fs.Int64("id", 0, "pitch id (update only)")
		businessID := fs.Int64("business", 0, "owning business id")
		rating := fs.Float64("rating", 0, "rating")
		price := fs.Float64("price", 0, "price per hour")
		size := fs.String("size", "", "pitch size, e.g. 5v5")
		ground := fs.String("ground", "", "ground type")
		roof := fs.Bool("roof", false, "covered pitch")
		image := fs.String("image", "", "path to image file")
		if err := fs.Parse(rest); err != nil {
			return err
		}

		in := pitches.PitchInput{
			BusinessID: *businessID,
			Rating:     *rating,
			Price:      *price,
			Size:       *size,
			GroundType: *ground,
			Roof:       *roof,
		}
		if *image != "" {
			f, err := os.Open(*image)
			if err != nil {
				return err
			}
			defer f.Close()
			in.Image = f
			in.ImageName = *image
		}

		if sub == "add" {
			p, err := a.pitches.Create(ctx, in)
			if err != nil {
				return err
			}
			a.bus.Success(fmt.Sprintf("pitch %d created", p.ID))
			return nil
		}
		if *id == 0 {
			return fmt.Errorf("-id is required")
		}
		if _, err := a.pitches.Update(ctx, *id, in); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("pitch %d updated", *id))
		return nil

	case "remove":
		id, err := idFlag("pitches remove", rest)
		if err != nil {
			return err
		}
		if err := a.pitches.Remove(ctx, id); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("pitch %d removed", id))
		return nil

	default:
		return fmt.Errorf("unknown pitches subcommand %q", sub)
	}
}

// businessForPitch resolves the business hours of a pitch, using the
// embedded object when the API sent one and fetching otherwise.
func (a *app) businessForPitch(ctx context.Context, p *domain.Pitch) (*domain.Business, error) {
	if b, ok := domain.DecodeBusiness(p.Business); ok {
		return b, nil
	}
	return a.business.Get(ctx, p.Business.ID)
}

func (a *app) cmdAvailability(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("availability", flag.ExitOnError)
	pitchID := fs.Int64("pitch", 0, "pitch id")
	date := fs.String("date", "", "date YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pitchID == 0 || *date == "" {
		return fmt.Errorf("-pitch and -date are required")
	}

	p, err := a.pitches.Get(ctx, *pitchID)
	if err != nil {
		return err
	}
	b, err := a.businessForPitch(ctx, p)
	if err != nil {
		return err
	}

	day, err := a.reservations.AvailabilityFor(ctx, *pitchID, b, *date)
	if err != nil {
		return err
	}

	if day.FullyBooked {
		a.bus.Info(fmt.Sprintf("pitch %d is fully booked on %s", *pitchID, *date))
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tHOUR\tSTATUS")
	for _, s := range day.Slots {
		status := "available"
		if !s.Available {
			status = "taken"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Label, s.Value, status)
	}
	return w.Flush()
}

func (a *app) cmdBook(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	pitchID := fs.Int64("pitch", 0, "pitch id")
	date := fs.String("date", "", "date YYYY-MM-DD")
	hour := fs.String("hour", "", "slot hour, e.g. 10")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sess := a.sessions.Current()
	if !sess.LoggedIn() {
		return session.ErrNotLoggedIn
	}

	res, err := a.reservations.Create(ctx, reservations.CreateReservationRequest{
		Date:    *date,
		Hour:    *hour,
		PitchID: *pitchID,
		UserID:  sess.UserData.UserID,
	})
	if err != nil {
		return err
	}
	a.bus.Success(fmt.Sprintf("reservation %d created for %s at %s:00", res.ID, *date, *hour))
	return nil
}

func (a *app) cmdReservations(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("reservations needs a subcommand: mine, business, status, cancel")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "mine":
		sess := a.sessions.Current()
		if !sess.LoggedIn() {
			return session.ErrNotLoggedIn
		}
		list, err := a.reservations.FindAllFromUser(ctx, sess.UserData.UserID)
		if err != nil {
			return err
		}
		printReservations(list)
		return nil

	case "business":
		fs := flag.NewFlagSet("reservations business", flag.ExitOnError)
		id := fs.Int64("id", 0, "business id (defaults to your own business)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		businessID := *id
		if businessID == 0 {
			b, err := a.business.CurrentForOwner(ctx)
			if err != nil {
				return err
			}
			businessID = b.ID
		}
		list, err := a.reservations.FindByBusiness(ctx, businessID)
		if err != nil {
			return err
		}
		printReservations(list)
		return nil

	case "status":
		fs := flag.NewFlagSet("reservations status", flag.ExitOnError)
		id := fs.Int64("id", 0, "reservation id")
		status := fs.String("status", "", "pending|confirmed|completed|cancelled")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == 0 || *status == "" {
			return fmt.Errorf("-id and -status are required")
		}
		res, err := a.reservations.UpdateStatus(ctx, *id, domain.ReservationStatus(*status))
		if err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("reservation %d is now %s", res.ID, res.Status))
		return nil

	case "cancel":
		id, err := idFlag("reservations cancel", rest)
		if err != nil {
			return err
		}
		if err := a.reservations.Cancel(ctx, id); err != nil {
			return err
		}
		a.bus.Success(fmt.Sprintf("reservation %d cancelled", id))
		return nil

	default:
		return fmt.Errorf("unknown reservations subcommand %q", sub)
	}
}

func idFlag(name string, args []string) (int64, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	id := fs.Int64("id", 0, "record id")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	if *id == 0 {
		return 0, fmt.Errorf("-id is required")
	}
	return *id, nil
}

func printPitches(list []domain.Pitch) {
	if len(list) == 0 {
		fmt.Println("no pitches found")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tGROUND\tROOF\tPRICE\tRATING\tBUSINESS")
	for _, p := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%.2f\t%.1f\t%d\n",
			p.ID, p.Size, p.GroundType, p.Roof, p.Price, p.Rating, p.Business.ID)
	}
	w.Flush()
}

func printReservations(list []domain.Reservation) {
	if len(list) == 0 {
		fmt.Println("no reservations found")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTIME\tPITCH\tSTATUS")
	for _, r := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n",
			r.ID, r.ReservationDate, r.ReservationTime, r.Pitch.ID, r.Status)
	}
	w.Flush()
}

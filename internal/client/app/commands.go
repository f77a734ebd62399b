package app

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/agromaps/agromaps-go/internal/client/api"
	"github.com/agromaps/agromaps-go/internal/client/domain"
	"github.com/agromaps/agromaps-go/internal/client/validate"
	"github.com/agromaps/agromaps-go/pkg/jwtx"
)

const usage = `AgroMaps client

Usage:
  agromaps login <username-or-email> <password>
  agromaps register -username U -email E -password P -confirm P [-first F] [-last L]
  agromaps logout
  agromaps whoami
  agromaps profile [update -first F -last L -email E -phone P]
  agromaps studies list
  agromaps studies show <id>
  agromaps studies create -name N -date YYYY-MM-DD -location L -lat X -lon Y -region R -sample N [-notes T]
  agromaps studies delete <id>
  agromaps chat [-study ID] <message...>
  agromaps health
`

// Run dispatches a CLI invocation. The session is initialised from the
// credential store first so every command sees the same view of who, if
// anyone, is signed in.
func (a *Application) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("no command given")
	}

	a.Session.Init(ctx)

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.cmdLogin(ctx, rest)
	case "register":
		return a.cmdRegister(ctx, rest)
	case "logout":
		a.Session.Logout(ctx)
		return nil
	case "whoami":
		return a.cmdWhoami(ctx)
	case "profile":
		return a.cmdProfile(ctx, rest)
	case "studies":
		return a.cmdStudies(ctx, rest)
	case "chat":
		return a.cmdChat(ctx, rest)
	case "health":
		return a.cmdHealth(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *Application) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: agromaps login <username-or-email> <password>")
	}

	form := validate.Login(validate.LoginData{
		UsernameOrEmail: args[0],
		Password:        args[1],
	})
	if !form.Valid {
		return fmt.Errorf("invalid input: %s", strings.Join(form.Errors, "; "))
	}

	auth, err := a.API.Login(ctx, api.LoginRequest{
		UsernameOrEmail: form.Sanitized.UsernameOrEmail,
		Password:        form.Sanitized.Password,
	})
	if err != nil {
		return err
	}

	a.Session.Login(&auth.User)
	fmt.Printf("Signed in as %s (%s)\n", auth.User.Username, auth.User.Email)
	return nil
}

func (a *Application) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "username")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	confirm := fs.String("confirm", "", "password confirmation")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form := validate.Registration(validate.RegistrationData{
		Username:        *username,
		Email:           *email,
		Password:        *password,
		PasswordConfirm: *confirm,
		FirstName:       *first,
		LastName:        *last,
	})
	if !form.Valid {
		return fmt.Errorf("invalid input: %s", strings.Join(form.Errors, "; "))
	}

	auth, err := a.API.Register(ctx, api.RegisterRequest{
		Username:        form.Sanitized.Username,
		Email:           form.Sanitized.Email,
		Password:        form.Sanitized.Password,
		PasswordConfirm: form.Sanitized.Password,
		FirstName:       form.Sanitized.FirstName,
		LastName:        form.Sanitized.LastName,
	})
	if err != nil {
		return err
	}

	a.Session.Login(&auth.User)
	fmt.Printf("Account created. Signed in as %s\n", auth.User.Username)
	return nil
}

func (a *Application) cmdWhoami(ctx context.Context) error {
	st := a.Session.State()
	if !st.Authenticated {
		fmt.Println("Not signed in.")
		return nil
	}

	fmt.Printf("%s <%s> role=%s\n", st.User.Username, st.User.Email, st.User.Role)

	if claims, err := jwtx.Inspect(a.Creds.AccessToken(ctx)); err == nil {
		if claims.Expired() {
			fmt.Println("Access token expired; the next API call will refresh it.")
		} else {
			fmt.Printf("Access token valid until %s\n", claims.ExpiresAt().Format("2006-01-02 15:04:05 MST"))
		}
	}
	return nil
}

func (a *Application) cmdProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.Session.RefreshUser(ctx)
		st := a.Session.State()
		if st.Err != "" {
			return fmt.Errorf("%s", st.Err)
		}
		if st.User == nil {
			fmt.Println("Not signed in.")
			return nil
		}
		return printJSON(st.User)
	}

	if args[0] != "update" {
		return fmt.Errorf("usage: agromaps profile [update ...]")
	}

	fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "email address")
	phone := fs.String("phone", "", "phone number")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var req api.UpdateProfileRequest
	if *first != "" {
		r := validate.Name(*first, "first name")
		if !r.Valid {
			return fmt.Errorf("invalid input: %s", strings.Join(r.Errors, "; "))
		}
		req.FirstName = &r.Sanitized
	}
	if *last != "" {
		r := validate.Name(*last, "last name")
		if !r.Valid {
			return fmt.Errorf("invalid input: %s", strings.Join(r.Errors, "; "))
		}
		req.LastName = &r.Sanitized
	}
	if *email != "" {
		r := validate.Email(*email)
		if !r.Valid {
			return fmt.Errorf("invalid input: %s", strings.Join(r.Errors, "; "))
		}
		req.Email = &r.Sanitized
	}
	if *phone != "" {
		req.PhoneNumber = phone
	}

	profile, err := a.API.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	a.Session.Login(profile)
	return printJSON(profile)
}

func (a *Application) cmdStudies(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: agromaps studies <list|show|create|delete>")
	}

	switch args[0] {
	case "list":
		studies, err := a.API.ListStudies(ctx)
		if err != nil {
			return err
		}
		for _, s := range studies {
			fmt.Printf("%s  %-30s %s (%s)\n", s.ID, s.Name, s.DateOfStudy, s.Region)
		}
		return nil

	case "show":
		if len(args) != 2 {
			return fmt.Errorf("usage: agromaps studies show <id>")
		}
		study, err := a.API.GetStudy(ctx, args[1])
		if err != nil {
			return err
		}
		return printJSON(study)

	case "create":
		fs := flag.NewFlagSet("studies create", flag.ContinueOnError)
		name := fs.String("name", "", "study name")
		date := fs.String("date", "", "date of study (YYYY-MM-DD)")
		location := fs.String("location", "", "location name")
		lat := fs.Float64("lat", 0, "latitude")
		lon := fs.Float64("lon", 0, "longitude")
		region := fs.String("region", "", "region")
		sample := fs.Int("sample", 0, "sample number")
		notes := fs.String("notes", "", "free-form notes")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *name == "" || *date == "" || *location == "" || *region == "" {
			return fmt.Errorf("-name, -date, -location and -region are required")
		}

		study, err := a.API.CreateStudy(ctx, domain.SoilStudy{
			Name:         *name,
			DateOfStudy:  *date,
			LocationName: *location,
			Latitude:     *lat,
			Longitude:    *lon,
			Region:       *region,
			SampleNumber: *sample,
			Notes:        *notes,
		})
		if err != nil {
			return err
		}
		return printJSON(study)

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: agromaps studies delete <id>")
		}
		if err := a.API.DeleteStudy(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("Study deactivated.")
		return nil

	default:
		return fmt.Errorf("unknown studies command %q", args[0])
	}
}

func (a *Application) cmdChat(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("chat", flag.ContinueOnError)
	study := fs.String("study", "", "soil study id for grounding")
	conversation := fs.String("conversation", "", "existing conversation id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	message := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if message == "" {
		return fmt.Errorf("usage: agromaps chat [-study ID] <message...>")
	}

	reply, err := a.API.SendMessage(ctx, api.SendMessageRequest{
		Message:        message,
		ConversationID: *conversation,
		SoilStudyID:    *study,
	})
	if err != nil {
		return err
	}

	fmt.Println(reply.Reply)
	fmt.Fprintf(os.Stderr, "conversation: %s\n", reply.ConversationID)
	return nil
}

func (a *Application) cmdHealth(ctx context.Context) error {
	health, err := a.API.ChatHealth(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("assistant: %s\n", health.Status)
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

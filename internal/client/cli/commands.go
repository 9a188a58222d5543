package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/dmitrijs2005/profilekeeper/internal/client/client"
	"github.com/dmitrijs2005/profilekeeper/internal/profile"
)

// report logs err in user terms and returns it unchanged.
func report(err error) error {
	switch {
	case errors.Is(err, client.ErrNotFound):
		log.Println("Error: profile not found")
	case errors.Is(err, client.ErrAlreadyExists):
		log.Println("Error: username or id already taken")
	case errors.Is(err, client.ErrInvalidArgument):
		log.Println("Error: invalid input")
	case errors.Is(err, client.ErrUnavailable):
		log.Println("Error: server unavailable, try again later")
	default:
		log.Printf("error: %v", err)
	}
	return err
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return report(err)
	}
	a.setMode(ModeOnline)
	fmt.Fprintln(a.out, "pong")
	return nil
}

func (a *App) Sample(ctx context.Context) error {
	p, err := a.client.Sample(ctx)
	if err != nil {
		return report(err)
	}
	printProfile(a.out, p)
	return nil
}

func (a *App) Show(ctx context.Context, username string) error {
	p, err := a.client.GetByUsername(ctx, username)
	if err != nil {
		return report(err)
	}
	printProfile(a.out, p)
	return nil
}

func (a *App) ShowByID(ctx context.Context, id string) error {
	p, err := a.client.GetByID(ctx, id)
	if err != nil {
		return report(err)
	}
	printProfile(a.out, p)
	return nil
}

// Search lists matching profiles. A zero limit leaves the choice to the server.
func (a *App) Search(ctx context.Context, prefix string, limit int) error {
	found, err := a.client.Search(ctx, prefix, limit)
	if err != nil {
		return report(err)
	}
	printProfiles(a.out, found)
	return nil
}

// Create prompts for every field and creates the profile. The server
// assigns the user id.
func (a *App) Create(ctx context.Context) error {
	var values [6]string
	prompts := [6]string{
		"Enter username",
		"Enter email",
		"Enter first name",
		"Enter last name",
		"Enter profile picture name (empty for default)",
		"Enter bio",
	}

	for i, prompt := range prompts {
		v, err := GetSimpleText(a.reader, prompt, a.prompt)
		if err != nil {
			return report(err)
		}
		values[i] = v
	}

	if values[0] == "" {
		log.Println("Error: username is required")
		return client.ErrInvalidArgument
	}

	p := profile.New("", values[0], values[1], values[2], values[3], values[4])
	p.SetBio(values[5])

	created, err := a.client.Create(ctx, p)
	if err != nil {
		return report(err)
	}

	fmt.Fprintf(a.out, "Created %s with id %s\n", created.Username(), created.UserID())
	return nil
}

// Edit looks the profile up and asks for each field in turn. Enter keeps a
// value, ClearValue empties it.
func (a *App) Edit(ctx context.Context, username string) error {
	p, err := a.client.GetByUsername(ctx, username)
	if err != nil {
		return report(err)
	}

	var patch profile.Patch
	fields := []struct {
		prompt  string
		current string
		dst     **string
	}{
		{"Username", p.Username(), &patch.Username},
		{"Email", p.Email(), &patch.Email},
		{"First name", p.FirstName(), &patch.FirstName},
		{"Last name", p.LastName(), &patch.LastName},
		{"Profile picture", p.ProfilePictureName(), &patch.ProfilePictureName},
		{"Bio", p.Bio(), &patch.Bio},
	}

	fmt.Fprintf(a.prompt, "Press Enter to keep a value, type %q to clear it.\n", ClearValue)

	for _, f := range fields {
		v, err := GetOptionalText(a.reader, f.prompt, f.current, a.prompt)
		if err != nil {
			return report(err)
		}
		*f.dst = v
	}

	if patch.Username != nil && *patch.Username == "" {
		log.Println("Error: username cannot be empty")
		return client.ErrInvalidArgument
	}

	if patch.IsEmpty() {
		fmt.Fprintln(a.out, "Nothing to change")
		return nil
	}

	bio := p.Bio()
	if patch.Bio != nil {
		bio = *patch.Bio
	}
	if strings.TrimSpace(bio) == "" {
		log.Println("Error: bio cannot be empty")
		return client.ErrInvalidArgument
	}

	updated, err := a.client.Update(ctx, p.UserID(), patch)
	if err != nil {
		return report(err)
	}

	printProfile(a.out, updated)
	return nil
}

func (a *App) Delete(ctx context.Context, username string) error {
	p, err := a.client.GetByUsername(ctx, username)
	if err != nil {
		return report(err)
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete %s (id %s)?", p.Username(), p.UserID()), a.prompt)
	if err != nil {
		return report(err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.client.Delete(ctx, p.UserID()); err != nil {
		return report(err)
	}

	fmt.Fprintf(a.out, "Deleted %s\n", p.Username())
	return nil
}

package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/mvolkova/taskquest/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for name, email, and password and attempts to create a
// new account. The backend sends a verification email; the user confirms it
// with the 'verify' command before logging in.
func (a *App) Register(ctx context.Context) error {
	if a.api == nil {
		log.Printf("Registration is not available in offline mode")
		return nil
	}

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	resp, err := a.api.Register(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	msg := resp.Message
	if msg == "" {
		msg = "Registered! Check your inbox for a verification link."
	}
	fmt.Println(msg)
	return nil
}

// Login prompts for credentials and authenticates. On success the API client
// has already persisted the token pair; the returned user is cached in the
// session.
func (a *App) Login(ctx context.Context) error {
	if a.api == nil {
		log.Printf("Login is not available in offline mode")
		return nil
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	a.session.SetUser(user)
	log.Printf("Login successful")
	return nil
}

// Logout invalidates the refresh token (best effort), clears the stored
// pair, and drops the session to anonymous.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}
	log.Printf("Logged out")
	return nil
}

// VerifyEmail confirms the address behind an emailed verification token.
func (a *App) VerifyEmail(ctx context.Context, token string) error {
	if a.api == nil {
		log.Printf("Email verification is not available in offline mode")
		return nil
	}

	msg, err := a.api.VerifyEmail(ctx, token)
	if err != nil {
		log.Printf("Verification unsuccessful: %s", err.Error())
		return err
	}
	fmt.Println(msg)
	return nil
}

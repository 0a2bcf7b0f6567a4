package cli

import (
	"context"
	"os"
)

// Register prompts for the account fields and creates a new account. The
// user still has to log in afterwards to obtain a token.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	email, err := getSimpleText(a.reader, "Enter e-mail", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.api.Register(ctx, name, email, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Registered. Use 'login' to sign in.")
	return nil
}

// Login prompts for credentials and stores the session token on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter e-mail", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.api.Login(ctx, email, string(password)); err != nil {
		printlnFn(err.Error())
		return err
	}

	a.userEmail = email
	printlnFn("Logged in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.api.Logout()
	a.userEmail = ""
	printlnFn("Logged out.")
	return nil
}

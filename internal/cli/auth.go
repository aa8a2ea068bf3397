package cli

import (
	"context"
	"errors"
	"os"

	"github.com/binayakpanigrahi011-debug/Invoicor/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email, and password (entered twice) and
// creates the account. Passwords are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		printlnFn("Passwords do not match.")
		return common.ErrorValidation
	}

	if err := a.auth.Register(ctx, name, email, password); err != nil {
		switch {
		case errors.Is(err, common.ErrUserExists):
			printlnFn("An account with this email already exists.")
		case errors.Is(err, common.ErrorValidation):
			printlnFn("Registration failed:", err.Error())
		default:
			a.logger.Error(ctx, "registering user", "error", err)
		}
		return err
	}

	printlnFn("Account created, you can log in now.")
	return nil
}

// Login prompts for credentials and a remember-me choice. A remembered
// session is written to the durable store and survives restarts until it
// expires; otherwise it lives only for this run.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	remember, err := GetYesNo(a.reader, "Remember me?", os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, email, password, remember)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrUserNotFound):
			printlnFn("No account found for this email.")
		case errors.Is(err, common.ErrWrongPassword):
			printlnFn("Incorrect password.")
		default:
			a.logger.Error(ctx, "logging in", "error", err)
		}
		return err
	}

	a.userName = sess.Name
	printlnFn("Welcome,", sess.Name)
	return nil
}

// Logout ends the session in both scopes.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logging out", "error", err)
		return err
	}
	a.userName = ""
	printlnFn("Logged out.")
	return nil
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/tuneboxed/sessionstore/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the sign-up fields and attempts to create a new
// account. On success the new account is signed in. The password byte
// slices are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	account, err := a.store.Register(ctx, username, email, string(password), string(confirm))
	if err != nil {
		fmt.Println(errorMessage(err))
		return nil
	}

	fmt.Printf("Welcome to TuneBoxed, %s!\n", account.Username)
	return nil
}

// Login prompts for credentials and tries to authenticate.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	account, err := a.store.Login(ctx, username, string(password))
	if err != nil {
		fmt.Println(errorMessage(err))
		return nil
	}

	fmt.Printf("Logged in as %s\n", account.Username)
	return nil
}

// Logout clears the active session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Logout(ctx); err != nil {
		fmt.Println(errorMessage(err))
		return nil
	}
	fmt.Println("Logged out")
	return nil
}

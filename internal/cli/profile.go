package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// UpdateProfile prompts for the optional profile fields. An empty answer
// leaves the field as it is.
func (a *App) UpdateProfile(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "First name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	bio, err := getSimpleText(a.reader, "Bio (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.UpdateProfile(ctx, firstName, lastName, bio); err != nil {
		fmt.Println(errorMessage(err))
		return nil
	}
	fmt.Println("Profile updated")
	return nil
}

// UpdateUsername prompts for a new username for the current account.
func (a *App) UpdateUsername(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "New username", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.store.UpdateUsername(ctx, username); err != nil {
		fmt.Println(errorMessage(err))
		return nil
	}
	fmt.Printf("Username changed to %s\n", username)
	return nil
}

// Verify marks the current account as verified.
func (a *App) Verify(ctx context.Context) {
	if err := a.store.Verify(ctx); err != nil {
		fmt.Println(errorMessage(err))
		return
	}
	fmt.Println("Account verified")
}

func (a *App) setFollowers(ctx context.Context, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Usage: followers <number>")
		return
	}
	if err := a.store.UpdateFollowerCount(ctx, n); err != nil {
		fmt.Println(errorMessage(err))
	}
}

func (a *App) setFollowing(ctx context.Context, arg string) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Usage: following <number>")
		return
	}
	if err := a.store.UpdateFollowingCount(ctx, n); err != nil {
		fmt.Println(errorMessage(err))
	}
}

package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
)

func (a *App) getStatus() string {
	cur := a.store.Current()
	if cur == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", cur.Username)
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to TuneBoxed (type 'help' for commands)")

	// Commands are read through the same buffered reader the prompts use,
	// so buffered-ahead input is never lost between the two.
	for {
		fmt.Printf("tbx %s> ", a.getStatus())
		line, readErr := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				break
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.store.SignedIn() {
				fmt.Println("Available commands: whoami, profile, username, verify, followers <n>, following <n>, users, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, users, exit")
			}

		case "register":
			if err := a.Register(ctx); err != nil {
				log.Printf("error: %v", err)
			}
		case "login":
			if err := a.Login(ctx); err != nil {
				log.Printf("error: %v", err)
			}
		case "logout":
			if err := a.Logout(ctx); err != nil {
				log.Printf("error: %v", err)
			}
		case "whoami":
			a.whoami()
		case "profile":
			if err := a.UpdateProfile(ctx); err != nil {
				log.Printf("error: %v", err)
			}
		case "username":
			if err := a.UpdateUsername(ctx); err != nil {
				log.Printf("error: %v", err)
			}
		case "verify":
			a.Verify(ctx)
		case "followers":
			if len(args) == 0 {
				fmt.Println("Usage: followers <number>")
				continue
			}
			a.setFollowers(ctx, args[0])
		case "following":
			if len(args) == 0 {
				fmt.Println("Usage: following <number>")
				continue
			}
			a.setFollowing(ctx, args[0])
		case "users":
			a.listUsers()
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}

		if readErr != nil {
			break
		}
	}

}

package cli

import (
	"fmt"
)

// listUsers prints the full registered set. Administrative/debug listing.
func (a *App) listUsers() {
	accounts := a.store.Accounts()
	if len(accounts) == 0 {
		fmt.Println("No registered users")
		return
	}

	for _, u := range accounts {
		verified := ""
		if u.IsVerified {
			verified = " [verified]"
		}
		fmt.Printf("%s <%s>%s: %d followers, %d following, joined %s\n",
			u.Username, u.Email, verified, u.Followers, u.Following,
			u.CreatedAt.Format("2006-01-02"))
	}
}

// whoami prints the current account, if any.
func (a *App) whoami() {
	cur := a.store.Current()
	if cur == nil {
		fmt.Println("Not logged in")
		return
	}

	fmt.Printf("%s <%s>\n", cur.Username, cur.Email)
	if cur.FirstName != "" || cur.LastName != "" {
		fmt.Printf("  name: %s %s\n", cur.FirstName, cur.LastName)
	}
	if cur.Bio != "" {
		fmt.Printf("  bio: %s\n", cur.Bio)
	}
	fmt.Printf("  followers: %d, following: %d, verified: %v\n",
		cur.Followers, cur.Following, cur.IsVerified)
}

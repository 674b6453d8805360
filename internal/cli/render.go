package cli

import (
	"fmt"
	"strings"
)

const (
	emptyNoUsers = "No users."
	emptyNoMatch = "No profiles match your search."
)

func (c *CLI) renderHome() {
	st := c.sess.Store()
	users := st.VisibleUsers()
	if len(users) == 0 {
		if st.Searching() {
			fmt.Fprintln(c.out, emptyNoMatch)
		} else {
			fmt.Fprintln(c.out, emptyNoUsers)
		}
		return
	}

	for _, u := range users {
		tasks := st.TasksFor(u.ID)
		fmt.Fprintf(c.out, "#%d %s — %s (%d/%d tasks done)\n",
			u.ID, u.Name, u.Company.Name, tasks.CompletedCount(), len(tasks))
		fmt.Fprintf(c.out, "    @%s · %s · %s\n", u.Username, u.Address.City, u.Email)
		if first := st.FirstTasks(u.ID, 3); len(first) > 0 {
			titles := make([]string, len(first))
			for i, t := range first {
				titles[i] = truncate(t.Title, 26)
			}
			fmt.Fprintf(c.out, "    tasks: %s\n", strings.Join(titles, " | "))
		}
	}
	if st.HasMore() {
		fmt.Fprintf(c.out, "(%d of %d shown — type more)\n", len(users), len(st.Users()))
	}
}

func (c *CLI) renderUser() {
	st := c.sess.Store()
	u := st.UserByID(c.userID)
	if u == nil {
		fmt.Fprintln(c.out, "User not found.")
		return
	}
	all := st.TasksFor(u.ID)
	fmt.Fprintf(c.out, "%s (@%s)\n", u.Name, u.Username)
	fmt.Fprintf(c.out, "  %s · %s · %s\n", u.Email, u.Phone, u.Website)
	fmt.Fprintf(c.out, "  %s, %s, %s %s (GPS %s / %s)\n",
		u.Address.Street, u.Address.Suite, u.Address.Zipcode, u.Address.City,
		u.Address.Geo.Lat, u.Address.Geo.Lng)
	fmt.Fprintf(c.out, "  %s — \"%s\" (%s)\n", u.Company.Name, u.Company.CatchPhrase, u.Company.BS)
	fmt.Fprintf(c.out, "  tasks: %d loaded, %d done\n", len(all), all.CompletedCount())

	visible := st.VisibleTasks(u.ID)
	fmt.Fprintf(c.out, "tasks [%s] (%d):\n", st.Filter(), len(visible))
	if len(visible) == 0 {
		fmt.Fprintln(c.out, "  No tasks.")
		return
	}
	for _, t := range visible {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(c.out, "  [%s] %3d %s\n", mark, t.ID, t.Title)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

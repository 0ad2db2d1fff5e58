package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"flowternity/pkg/intake"
)

// BuildIntakeForm returns the interactive sign-up form bound to state. The
// inline checks only give early feedback while typing; the workflow runs the
// authoritative validation on submit.
func BuildIntakeForm(state *intake.State) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Your full name").
				Value(&state.Name).
				Validate(required("name")),
			huh.NewInput().
				Title("Age").
				Placeholder("Your age").
				Value(&state.Age).
				Validate(func(s string) error {
					if err := required("age")(s); err != nil {
						return err
					}
					if _, ok := intake.ParseAge(s); !ok {
						return fmt.Errorf("Please enter a valid age")
					}
					return nil
				}),
			huh.NewInput().
				Title("City").
				Placeholder("Where you live").
				Value(&state.City).
				Validate(required("city")),
			huh.NewInput().
				Title("Phone").
				Placeholder("Phone number").
				Value(&state.Phone).
				Validate(required("phone")),
			huh.NewInput().
				Title("Email").
				Placeholder("you@example.com").
				Value(&state.Email).
				Validate(required("email")),
		).Title("Join Flowternity Turf"),
	)
}

func required(field string) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return fmt.Errorf("A %s is required", field)
		}
		return nil
	}
}

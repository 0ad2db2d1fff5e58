package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"flowternity/pkg/config"
	"flowternity/pkg/form"
	"flowternity/pkg/intake"
	"flowternity/pkg/log"
	"flowternity/pkg/notify"
	"flowternity/pkg/spinner"
	"flowternity/pkg/webhook"
)

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		fmt.Printf("Warning: Could not read config file: %v\n", err)
		cfg = config.Default()
	}

	webhookURL := pflag.StringP("webhook-url", "u", cfg.WebhookURL, "Webhook endpoint for sign-ups (can be set in config)")
	logLevel := pflag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	name := pflag.StringP("name", "n", "", "Name to prefill")
	age := pflag.StringP("age", "a", "", "Age to prefill")
	city := pflag.StringP("city", "c", "", "City to prefill")
	phone := pflag.StringP("phone", "p", "", "Phone number to prefill")
	email := pflag.StringP("email", "e", "", "Email address to prefill")
	help := pflag.BoolP("help", "h", false, "Show help information")

	pflag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	log.Setup(*logLevel)

	if *webhookURL == "" {
		fmt.Println("Error: No webhook URL configured. Set webhook_url in config or use --webhook-url")
		printUsage()
		os.Exit(1)
	}

	state := intake.State{
		Name:  *name,
		Age:   *age,
		City:  *city,
		Phone: *phone,
		Email: *email,
	}

	// All five fields on the command line means scripting mode; otherwise
	// the interactive form takes over, prefilled with whatever was given.
	if needsForm(state) {
		f := form.BuildIntakeForm(&state)
		if err := f.Run(); err != nil {
			fmt.Printf("Error: Could not run form: %v\n", err)
			os.Exit(1)
		}
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFA500")).
		Padding(0, 1).
		Foreground(lipgloss.Color("#FFFFFF"))
	info := fmt.Sprintf(" Flowternity Turf sign-up\n Endpoint: %s ", *webhookURL)
	fmt.Println(style.Render(info))

	client := webhook.NewClient(*webhookURL)
	workflow := intake.NewWorkflow(client, notify.NewConsole(), log.WithModule("intake"))
	workflow.State = state
	workflow.SetProgress(spinner.NewSpinner("Submitting"))

	if workflow.Submit(context.Background()) != intake.OutcomeDelivered {
		os.Exit(1)
	}
}

func needsForm(state intake.State) bool {
	return state.Name == "" || state.Age == "" || state.City == "" ||
		state.Phone == "" || state.Email == ""
}

func printUsage() {
	fmt.Println("Usage: flowternity [--webhook-url=<url>] [field flags]")
	fmt.Println("\nOptions:")
	pflag.PrintDefaults()
	fmt.Println("\nExamples:")
	fmt.Println("  flowternity")
	fmt.Println("  flowternity -n \"Jane Doe\" -a 30 -c Springfield -p 555-1234 -e jane@example.com")
}

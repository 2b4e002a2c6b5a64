package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mood-architect/affirm-api/internal/session"
)

var apiURL string

func main() {
	root := &cobra.Command{
		Use:          "affirm",
		Short:        "Ask the Mood Architect backend for a short affirmation",
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().StringVar(&apiURL, "api-url", "",
		"affirmation backend base URL (defaults to AFFIRM_API_URL or "+session.DefaultBaseURL+")")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()
	if apiURL == "" {
		apiURL = os.Getenv("AFFIRM_API_URL")
	}

	orch := session.NewOrchestrator(session.NewClient(apiURL))
	orch.OnChange(func(s session.RequestState) {
		switch s.Phase {
		case session.PhaseLoading:
			fmt.Fprintln(cmd.OutOrStdout(), "Generating...")
		case session.PhaseError:
			fmt.Fprintln(cmd.OutOrStdout(), s.Message)
		case session.PhaseSuccess:
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n\n", s.Affirmation)
		}
	})

	in := bufio.NewScanner(os.Stdin)
	orch.Input().SetField(session.FieldName, ask(in, cmd, "Your name: "))

	for {
		presets := session.Presets()
		fmt.Fprintln(cmd.OutOrStdout(), "How are you feeling? Pick a number or type your own:")
		for i, label := range presets {
			marker := " "
			if orch.Input().IsPresetActive(label) {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), " %s %d. %s\n", marker, i+1, label)
		}

		feeling := ask(in, cmd, "> ")
		if n, err := strconv.Atoi(strings.TrimSpace(feeling)); err == nil && n >= 1 && n <= len(presets) {
			orch.Input().SelectPreset(presets[n-1])
		} else {
			orch.Input().SetField(session.FieldFeeling, feeling)
		}
		orch.Input().SetField(session.FieldDetails, ask(in, cmd, "Anything else on your mind? (optional) "))

		orch.Submit(cmd.Context())

		if strings.EqualFold(ask(in, cmd, "Another? [y/N] "), "y") {
			continue
		}
		return nil
	}
}

func ask(in *bufio.Scanner, cmd *cobra.Command, prompt string) string {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	if !in.Scan() {
		return ""
	}
	return in.Text()
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"randnd/internal/config"
	"randnd/internal/phrase"
	"randnd/internal/render"
	"randnd/internal/words"

	"github.com/spf13/cobra"
)

type renderedPhrase struct {
	Name   string        `json:"name"`
	Phrase string        `json:"phrase"`
	Words  []string      `json:"words"`
	Config phrase.Config `json:"config"`
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts words.Options
	root := &cobra.Command{
		Use:          "phrasegen",
		Short:        "Roll randnd phrases from the command line",
		SilenceUsage: true,
	}
	defaults := config.Default()
	root.PersistentFlags().StringVar(&opts.Kind, "source", defaults.WordSource, "word source: local or remote")
	root.PersistentFlags().StringVar(&opts.WordListDir, "wordlists", defaults.WordListDir, "directory holding the local word lists")
	root.PersistentFlags().StringVar(&opts.RemoteURL, "remote-url", defaults.RemoteURL, "remote word generator endpoint")
	root.PersistentFlags().DurationVar(&opts.RemoteTimeout, "timeout", defaults.RemoteTimeout, "remote request timeout")
	root.PersistentFlags().Uint64Var(&opts.Seed, "seed", 0, "random seed for local word lists (0 picks one)")

	root.AddCommand(newRenderCmd(&opts), newCheckCmd(&opts), newListCmd())
	return root
}

func newRenderCmd(opts *words.Options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "render <phrase>...",
		Short: "Render phrases and print them as JSON lines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := words.New(*opts)
			if err != nil {
				return err
			}
			phrases := make([]phrase.Phrase, 0, len(args))
			for _, name := range args {
				p, ok := phrase.Lookup(name)
				if !ok {
					return fmt.Errorf("unknown phrase %q", name)
				}
				phrases = append(phrases, p)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			for i := 0; i < count; i++ {
				for _, p := range phrases {
					result, err := render.Render(cmd.Context(), p, source)
					if err != nil {
						return err
					}
					if err := enc.Encode(renderedPhrase{
						Name:   p.Name,
						Phrase: result.Text,
						Words:  result.Words,
						Config: p.Config(),
					}); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "times to render each phrase")
	return cmd
}

func newCheckCmd(opts *words.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every phrase part has a usable word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := words.New(*opts)
			if err != nil {
				return err
			}
			checker, ok := source.(words.Checker)
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "source %s has nothing to check\n", opts.Kind)
				return nil
			}
			if err := checker.Check(cmd.Context(), phrase.CatalogParts()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "word lists ok")
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every phrase configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, p := range phrase.Catalog() {
				if err := enc.Encode(map[string]any{"name": p.Name, "config": p.Config()}); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

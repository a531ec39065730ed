package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GlebRadaev/knowledgebuddy/internal/checkout"
	"github.com/GlebRadaev/knowledgebuddy/internal/client"
	"github.com/GlebRadaev/knowledgebuddy/internal/config"
	"github.com/GlebRadaev/knowledgebuddy/internal/dto"
	"github.com/GlebRadaev/knowledgebuddy/pkg/clients"
	"github.com/GlebRadaev/knowledgebuddy/pkg/logger"
	"github.com/GlebRadaev/knowledgebuddy/pkg/session"
)

var Version = "dev"

type env struct {
	cfg     cliConfig
	api     *client.Client
	session string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		apiURL     string
		e          = &env{}
	)

	root := &cobra.Command{
		Use:           "kbctl",
		Short:         "Browse, rate and download Knowledge Buddy resources",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if apiURL != "" {
				cfg.APIURL = apiURL
			}
			if err := logger.InitLogger(&config.Config{LogLvl: cfg.LogLevel}); err != nil {
				return fmt.Errorf("can't init logger: %w", err)
			}

			e.cfg = cfg
			e.session = session.NewProvider(session.NewFileStore(cfg.SessionFile)).GetOrCreate()
			e.api = client.New(cfg.APIURL, e.session, clients.NewHTTPClient(cfg.Timeout))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", filepath.Join(configDir(), "config.yaml"), "Config file")
	root.PersistentFlags().StringVar(&apiURL, "api", "", "API base URL, overrides the config file")

	root.AddCommand(
		listCmd(e),
		showCmd(e),
		categoriesCmd(e),
		rateCmd(e),
		downloadCmd(e),
		contributeCmd(e),
		sessionCmd(e),
	)
	return root
}

func listCmd(e *env) *cobra.Command {
	var category, query string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List resources, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resources, err := e.api.ListResources(cmd.Context(), category, query)
			if err != nil {
				return err
			}
			printResources(cmd.OutOrStdout(), resources)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category filter (project, notes, misc, presentation, reference-material)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search title and description")
	return cmd
}

func showCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <resource-id>",
		Short: "Show one resource with its stats and your rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := e.api.GetResource(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n%s\n\n", res.Title, res.Description)
			fmt.Fprintf(out, "category:   %s\n", res.Category)
			if len(res.Tags) > 0 {
				fmt.Fprintf(out, "tags:       %s\n", strings.Join(res.Tags, ", "))
			}
			fmt.Fprintf(out, "suggested:  %d INR\n", res.SuggestedPrice)
			fmt.Fprintf(out, "rating:     %.1f (%d)\n", res.Rating, res.RatingCount)
			fmt.Fprintf(out, "downloads:  %d\n", res.DownloadCount)
			if mine := e.api.GetUserRating(cmd.Context(), res.ID); mine > 0 {
				fmt.Fprintf(out, "your rating: %d\n", mine)
			}
			return nil
		},
	}
}

func categoriesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List resource categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := e.api.Categories(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range categories {
				fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Label)
			}
			return tw.Flush()
		},
	}
}

func rateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <resource-id> <1-5>",
		Short: "Rate a resource, replacing your previous rating",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, err := strconv.Atoi(args[1])
			if err != nil || rating < 1 || rating > 5 {
				return fmt.Errorf("rating must be a whole number from 1 to 5")
			}
			if !e.api.SubmitRating(cmd.Context(), args[0], rating) {
				return errors.New("rating was not saved")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Thanks for rating!")
			return nil
		},
	}
}

func downloadCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "download <resource-id>",
		Short: "Download a resource for free",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := e.api.GetResource(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			o := checkout.New(e.api, checkout.NewWidgetLoader(nil), e.cfg.DownloadURLTemplate)
			result, err := o.FreeDownload(cmd.Context(), *res)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.DownloadURL)
			return nil
		},
	}
}

func contributeCmd(e *env) *cobra.Command {
	var amount int
	cmd := &cobra.Command{
		Use:   "contribute <resource-id>",
		Short: "Pay what you want for a resource and download it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			res, err := e.api.GetResource(ctx, args[0])
			if err != nil {
				return err
			}
			if amount == 0 {
				amount = res.SuggestedPrice
				printPresets(out)
			}

			widget := newTerminalWidget(cmd.InOrStdin(), out)
			loader := checkout.NewWidgetLoader(func(context.Context) (checkout.Widget, error) {
				return widget, nil
			})
			o := checkout.New(e.api, loader, e.cfg.DownloadURLTemplate)

			result, err := o.Contribute(ctx, *res, amount)
			switch {
			case errors.Is(err, checkout.ErrCancelled):
				fmt.Fprintln(out, "Payment Cancelled. You can contribute anytime to support the creator.")
				return nil
			case errors.Is(err, checkout.ErrVerificationFailed):
				return fmt.Errorf("%w. Please contact support if amount was deducted", err)
			case err != nil:
				return err
			}

			fmt.Fprintf(out, "Payment Successful! Thank you for contributing to %s.\n", res.Title)
			fmt.Fprintln(out, result.DownloadURL)
			if result.PromptRating {
				fmt.Fprintf(out, "Rate it with: kbctl rate %s <1-5>\n", res.ID)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&amount, "amount", "a", 0, "Amount in INR, defaults to the suggested price")
	return cmd
}

func sessionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Print the anonymous session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), e.session)
			return nil
		},
	}
}

func printResources(w io.Writer, resources []dto.ResourceResponseDTO) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tRATING\tDOWNLOADS")
	for _, r := range resources {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f (%d)\t%d\n", r.ID, r.Title, r.Category, r.Rating, r.RatingCount, r.DownloadCount)
	}
	tw.Flush()
}

func printPresets(w io.Writer) {
	fmt.Fprint(w, "Suggested amounts:")
	for _, p := range checkout.Presets {
		fmt.Fprintf(w, "  %d INR (%s)", p.Amount, p.Label)
	}
	fmt.Fprintln(w)
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caiogeraldes/wttr/internal/models"
	"github.com/caiogeraldes/wttr/internal/present"
)

const version = "1.0"

// weatherSource is what the commands need from the pipeline.
type weatherSource interface {
	Weather(ctx context.Context, noCache bool) (models.Weather, error)
	Refresh(ctx context.Context) (models.Weather, error)
}

var fieldHelp = map[present.Field]string{
	present.Temperature:    "Current temperature",
	present.FeelsLike:      "Current feels-like temperature",
	present.Description:    "Weather description (text or emoji)",
	present.WindSpeed:      "Wind speed",
	present.WindDirection:  "Wind direction (text or emoji)",
	present.MinTemperature: "Today's minimum temperature",
	present.MaxTemperature: "Today's maximum temperature",
	present.Area:           "Area reported by the provider",
	present.Full:           "One-line summary",
}

func newRootCmd(src weatherSource) *cobra.Command {
	var noCache bool

	root := &cobra.Command{
		Use:           "wttr",
		Short:         "wttr.in querier",
		Long:          "Prints one field of the current weather from wttr.in, cached for an hour in ~/.cache/wttr.json.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&noCache, "no-cache", false, "ignore the cached record and fetch fresh data")

	for _, field := range present.Fields() {
		root.AddCommand(newFieldCmd(src, field, &noCache))
	}
	root.AddCommand(newRefreshCmd(src))
	return root
}

func newFieldCmd(src weatherSource, field present.Field, noCache *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(field),
		Short: fieldHelp[field],
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := present.Text
			if len(args) == 1 {
				m, err := present.ParseMode(args[0])
				if err != nil {
					return err
				}
				mode = m
			}
			w, err := src.Weather(cmd.Context(), *noCache)
			if err != nil {
				return err
			}
			out, err := present.Format(w, field, mode)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	if field.HasMode() {
		cmd.Use = string(field) + " [text|emoji]"
		cmd.Args = cobra.MaximumNArgs(1)
		cmd.ValidArgs = []string{string(present.Text), string(present.Symbol)}
	}
	return cmd
}

func newRefreshCmd(src weatherSource) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch fresh data into the cache and print the summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := src.Refresh(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), present.Summary(w))
			return err
		},
	}
}

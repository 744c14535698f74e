// Package cli wires the command line surface.
package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// RunOptions holds flags for the logger. Zero values mean "use the config
// file value".
type RunOptions struct {
	ConfigFile string
	Output     string
	Subreddits []string
	PollEvery  time.Duration
	FlushEvery time.Duration
	Verbose    bool
}

// NewRootCommand creates the redditlog command.
func NewRootCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "redditlog",
		Short: "Log new Reddit posts to an OpenDocument spreadsheet",
		Long: `redditlog polls Reddit for new posts, prints each one to the console,
and appends them to an .ods spreadsheet. Every post gets a running ID that
picks up where the previous run left off.

Example:
  redditlog --config reddit_config.json --subreddit golang --poll-every 1m`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogger(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigFile, "config", "reddit_config.json", "path to the JSON credentials file")
	cmd.Flags().StringVar(&opts.Output, "out", "", "spreadsheet path (overrides config)")
	cmd.Flags().StringSliceVar(&opts.Subreddits, "subreddit", nil, "subreddit to watch, repeatable (overrides config)")
	cmd.Flags().DurationVar(&opts.PollEvery, "poll-every", 0, "poll interval (overrides config)")
	cmd.Flags().DurationVar(&opts.FlushEvery, "flush-every", 0, "flush interval (overrides config)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	return cmd
}

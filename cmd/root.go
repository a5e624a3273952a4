package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tanq16/pullr/internal/output"
	"github.com/tanq16/pullr/internal/scheduler"
	"github.com/tanq16/pullr/internal/utils"
)

var PullrVersion = "dev"

type rootOptions struct {
	url       string
	method    string
	output    string
	header    string
	userAgent string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "pullr -u URL [flags]",
		Short:         "pullr sends one HTTP request and saves the response body to a file",
		Version:       PullrVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.InitLogger(opts.verbose)
			log.Debug().Str("op", "cmd/root").Msg("Got args")

			if err := confirmURL(cmd.InOrStdin(), cmd.OutOrStdout(), opts.url); err != nil {
				return err
			}

			bar := output.NewProgressBar(cmd.OutOrStdout())
			job := &utils.Job{
				JobType:      "http",
				URL:          opts.url,
				Method:       opts.method,
				RawHeader:    opts.header,
				OutputPath:   opts.output,
				ProgressFunc: bar.Update,
				FinishFunc:   bar.Finish,
				HTTPClientConfig: utils.HTTPClientConfig{
					UserAgent: opts.userAgent,
				},
			}
			err := scheduler.Run(cmd.Context(), job)
			if err != nil && bar.Started() {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.url, "url", "u", "", "URL to download from")
	cmd.Flags().StringVarP(&opts.method, "type", "t", "get", "Type of request (get, post, put, delete, head)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (derived from the response Content-Type if not provided)")
	cmd.Flags().StringVarP(&opts.header, "header", "H", "", "Header to add to the request (like 'Authorization: Basic dXNlcjpwYXNz')")
	cmd.Flags().StringVarP(&opts.userAgent, "user-agent", "a", utils.ToolUserAgent, "User agent")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")
	cmd.MarkFlagRequired("url")
	return cmd
}

func Execute() {
	err := newRootCmd().Execute()
	if errors.Is(err, errAborted) {
		output.PrintWarning("Aborted")
		return
	}
	if err != nil {
		output.PrintError(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}

// youtubectl invokes YouTube API operations from the command line using the
// same catalog-driven client the MCP server serves.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/universal-mcp/youtube/client"
	"github.com/universal-mcp/youtube/client/transcript"
)

var (
	baseURL   string
	apiKey    string
	authToken string
	debug     bool
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "youtubectl",
		Short: "CLI for the YouTube Data, Reporting and Analytics APIs",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				os.Setenv("YOUTUBE_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", getEnv("YOUTUBE_MCP_API_BASE_URL", client.DefaultBaseURL), "Base URL of the YouTube API")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("YOUTUBE_MCP_API_KEY"), "YouTube API key")
	rootCmd.PersistentFlags().StringVar(&authToken, "auth-token", os.Getenv("YOUTUBE_MCP_AUTH_TOKEN"), "OAuth bearer token")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newCallCmd())
	rootCmd.AddCommand(newTranscriptCmd())

	return rootCmd
}

func newClient(opts ...client.Option) *client.Client {
	opts = append([]client.Option{client.WithBaseURL(baseURL)}, opts...)
	if apiKey != "" {
		opts = append(opts, client.WithAPIKey(apiKey))
	}
	if authToken != "" {
		opts = append(opts, client.WithAuthToken(authToken))
	}
	return client.New(opts...)
}

func newToolsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List every invocable YouTube operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := newClient().Operations()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ops)
			}

			for _, ep := range ops {
				required := "-"
				if len(ep.Required) > 0 {
					required = strings.Join(ep.Required, ",")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s %s\trequired: %s\toptional: %d\n",
					ep.Name, ep.Method, ep.Path, required, len(ep.Optional))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d\n", len(ops))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}

func newCallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call <operation> [param=value ...]",
		Short: "Invoke a YouTube operation by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op := args[0]
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			log.Debug().
				Str("operation", op).
				Int("param_count", len(params)).
				Str("base_url", baseURL).
				Msg("invoking operation")

			c := newClient()
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			start := time.Now()
			raw, err := c.Call(ctx, op, params)
			elapsed := time.Since(start)

			if err != nil {
				log.Error().
					Err(err).
					Str("operation", op).
					Dur("elapsed", elapsed).
					Msg("operation failed")
				return err
			}

			log.Debug().
				Str("operation", op).
				Dur("elapsed", elapsed).
				Int("response_len", len(raw)).
				Msg("operation completed")

			if raw == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "OK")
				return nil
			}
			b, _ := json.MarshalIndent(raw, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	return cmd
}

func newTranscriptCmd() *cobra.Command {
	var langs []string

	cmd := &cobra.Command{
		Use:   "transcript <videoId>",
		Short: "Fetch the caption transcript of a video as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoID := args[0]

			log.Debug().
				Str("video_id", videoID).
				Strs("langs", langs).
				Msg("fetching transcript")

			fetcher := transcript.NewWatchPageFetcher(transcript.WithLanguages(langs...))
			c := newClient(client.WithTranscriptFetcher(fetcher))
			ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
			defer cancel()

			start := time.Now()
			text, err := c.Transcript(ctx, videoID)
			if err != nil {
				log.Error().
					Err(err).
					Str("video_id", videoID).
					Dur("elapsed", time.Since(start)).
					Msg("transcript fetch failed")
				return err
			}

			log.Debug().
				Str("video_id", videoID).
				Dur("elapsed", time.Since(start)).
				Int("text_len", len(text)).
				Msg("transcript fetch completed")

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&langs, "lang", []string{"en"}, "Preferred caption languages in preference order")
	return cmd
}

// parseParams converts key=value arguments into a call argument map.
func parseParams(args []string) (map[string]any, error) {
	params := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q, expected key=value", arg)
		}
		params[key] = value
	}
	return params, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

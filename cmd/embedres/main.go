package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joestump/embedres/internal/config"
	"github.com/joestump/embedres/internal/logging"
	"github.com/joestump/embedres/internal/resource"
)

func main() {
	rootCmd := newRootCmd(afero.NewOsFs(), os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Generated files go through fs; logs go
// to logOut.
func newRootCmd(fs afero.Fs, logOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "embedres",
		Short: "Embed resource files as C source literals",
		Long: `embedres converts a resource file into a C declaration so a build can
compile the asset directly into its binary.

  embedres text   <input> <output>   macro expanding to a string literal
  embedres binary <input> <output>   nul-terminated static char array
  embedres xxd    <input> <output>   xxd -i style array plus length`,
		SilenceUsage: true,
	}

	f := rootCmd.PersistentFlags()
	f.String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	f.String("log-format", "console", "log format (console, json)")

	_ = viper.BindPFlag("log_level", f.Lookup("log-level"))
	_ = viper.BindPFlag("log_format", f.Lookup("log-format"))

	// EMBEDRES_LOG_LEVEL -> "log_level", EMBEDRES_LOG_FORMAT -> "log_format".
	viper.SetEnvPrefix("EMBEDRES")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, mode := range resource.Modes {
		rootCmd.AddCommand(newEmbedCmd(fs, logOut, mode))
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the embedres version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.Version)
		},
	})

	return rootCmd
}

var modeShort = map[resource.Mode]string{
	resource.ModeText:   "Write a #define macro expanding to the file's text",
	resource.ModeBinary: "Write a nul-terminated static char array of the file's bytes",
	resource.ModeXXD:    "Write an xxd -i style unsigned char array and length",
}

func newEmbedCmd(fs afero.Fs, logOut io.Writer, mode resource.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   string(mode) + " <input-path> <output-path>",
		Short: modeShort[mode],
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmbed(cmd.Context(), fs, logOut, mode, args[0], args[1])
		},
	}
}

func runEmbed(ctx context.Context, fs afero.Fs, logOut io.Writer, mode resource.Mode, in, out string) error {
	cfg := config.Load()
	log := logging.New(logOut, cfg.LogLevel, cfg.LogFormat)

	if mode != resource.ModeXXD {
		if name := resource.DeriveName(in); !resource.ValidIdentifier(name) {
			log.Warn().Str("input", in).Str("name", name).
				Msg("derived symbol name is not a valid C identifier")
		}
	}

	res, err := resource.New(fs, mode).Embed(ctx, in, out)
	if err != nil {
		return fmt.Errorf("embedding %s: %w", in, err)
	}

	log.Info().
		Str("mode", string(res.Mode)).
		Str("symbol", res.Symbol).
		Str("input", in).
		Str("output", out).
		Str("size", humanize.Bytes(uint64(res.InputBytes))).
		Msg("resource embedded")
	return nil
}

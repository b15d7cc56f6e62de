// Command bstdemo builds a binary search tree from its flags and prints the
// tree together with its structural reports.
package main

import (
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// 1..9 inserted in order, which builds a right-leaning chain
var defaultValues = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.InfoValue())))
	return log.With(logger, "ts", log.DefaultTimestampUTC)
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "bstdemo",
		Short:        "build a binary search tree and report on its shape",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if path := v.GetString(cfgConfigFile); path != "" {
				v.SetConfigFile(path)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger := log.With(newLogger(cfg.logLevel), "module", "bstdemo")
			return run(cfg, cmd.OutOrStdout(), logger)
		},
	}

	flags := cmd.Flags()
	flags.String(cfgConfigFile, "", "config file (yaml, toml or json)")
	flags.StringSlice(cfgValues, defaultValues, "elements to insert, in order")
	flags.StringSlice(cfgRemove, nil, "elements to remove after inserting")
	flags.StringSlice(cfgRotate, nil, "rotations to apply, as right:X or left:X")
	flags.String(cfgOrder, orderBoth, "traversal to print: sorted, levels or both")
	flags.String(cfgLogLevel, "info", "log level: debug, info, warn or error")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("BST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

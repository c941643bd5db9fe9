package main

import (
	"github.com/spf13/cobra"

	"github.com/askiada/go-textpipe/internal/config"
	"github.com/askiada/go-textpipe/internal/logging"
)

var (
	cfgFile   string
	activeCfg config.Config
)

func NewRootCmd() *cobra.Command {
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:           "textpipe",
		Short:         "Apply a pipeline of text operations to files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(config.LoadOptions{
				Cmd:        cmd,
				ConfigFile: cfgFile,
				Defaults:   defaults,
			})
			if err != nil {
				return err
			}
			activeCfg = loaded
			logging.Setup(loaded.Log.Level, loaded.Log.Format, cmd.ErrOrStderr())

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Optional config file (yaml|toml|json)")
	config.RegisterPersistentFlags(cmd.PersistentFlags(), defaults)

	cmd.AddCommand(newRunCmd(defaults))
	cmd.AddCommand(newOpsCmd())

	return cmd
}

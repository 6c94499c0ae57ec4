// Package cmd contains the command line applications for the project.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yeisme/archivault/pkg/app"
)

var (
	// configPath 配置文件路径或所在目录，serve 与 config 子命令共用.
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "archivault",
		Short: "A file archive service backed by an object store and a metadata database",
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "start the archivault HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(configPath).Run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./", "config file or directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	rootCmd.AddCommand(serveCmd)
	registerConfigsCommands()
	registerDBCommands()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Command oractl drives the console API from a terminal: live session
// monitoring, connection switching and script generation.
package main

import (
	"fmt"
	"os"
	"time"

	"oraconsoleapi/pkg/apiclient"
	"oraconsoleapi/pkg/logger"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	defaultServer  = "http://localhost:8000"
	defaultTimeout = 30 * time.Second
)

var (
	serverURL    string
	outputFormat string
	timeout      time.Duration
	configPath   string
	debug        bool
)

// fileConfig is the optional YAML file read by --config.
type fileConfig struct {
	Server string `yaml:"server"`
	Output string `yaml:"output"`
}

var rootCmd = &cobra.Command{
	Use:   "oractl",
	Short: "Oracle console command line client",
	Long: `oractl talks to the console API to watch sessions, switch the active
connection and render RMAN, Data Pump and TNS scripts.

The server defaults to $ORACTL_SERVER or ` + defaultServer + `.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			logger.InitWithConfig("", logger.DEBUG, 0, 0, 0, false)
		}
		return applyConfigFile(cmd)
	},
}

func init() {
	server := os.Getenv("ORACTL_SERVER")
	if server == "" {
		server = defaultServer
	}
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", server, "Console API base URL")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Per-request timeout")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with server and output defaults")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log requests and retries")
}

// applyConfigFile fills flags the user did not set from --config.
func applyConfigFile(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", configPath, err)
	}
	flags := cmd.Flags()
	if fc.Server != "" && !flags.Changed("server") {
		serverURL = fc.Server
	}
	if fc.Output != "" && !flags.Changed("output") {
		outputFormat = fc.Output
	}
	return nil
}

func newClient() *apiclient.Client {
	return apiclient.New(serverURL, apiclient.WithRetries(2, 500*time.Millisecond))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

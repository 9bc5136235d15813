package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Manu343726/sysregs/cmd/iss"
	"github.com/Manu343726/sysregs/cmd/output"
	"github.com/Manu343726/sysregs/cmd/regs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var logFile io.Closer

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "sysregs",
	Short: "AArch64 virtualization system registers toolkit",
	Long: `Sysregs describes the AArch64 system registers a hypervisor running at EL2 works with:
their bit layouts, field values and the syndromes reported for trapped coprocessor accesses.

This CLI documents the registers, decodes raw register values and syndromes, and composes
register values from field values`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := output.ConfigureColor(os.Stdout); err != nil {
			return err
		}

		if _, err := output.CurrentFormat(); err != nil {
			return err
		}

		closer, err := output.SetupLogger(os.Stderr)
		if err != nil {
			return err
		}

		logFile = closer
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLogFile()
	},
}

func closeLogFile() error {
	if logFile == nil {
		return nil
	}

	err := logFile.Close()
	logFile = nil
	return err
}

// Runs the root command. Post run hooks are skipped when a command fails, so the
// log file is closed here in that case
func run() error {
	err := RootCmd.Execute()
	if err != nil {
		output.Logger().Error("command failed", "error", err)
		closeLogFile()
	}

	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := run(); err != nil {
		output.Fail(err, 1)
	}
}

func init() {
	RootCmd.AddCommand(regs.RegsCmd, iss.IssCmd)
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.sysregs.yaml)")
	flags.StringP("output", "o", "text", "Output format (text, yaml)")
	flags.String("color", "auto", "Colored output (auto, always, never)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-file", "", "Also write json logs to this file")

	cobra.CheckErr(viper.BindPFlag("output", flags.Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("color", flags.Lookup("color")))
	cobra.CheckErr(viper.BindPFlag("log.level", flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("log.file", flags.Lookup("log-file")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".sysregs" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".sysregs")
	}

	// SYSREGS_OUTPUT, SYSREGS_LOG_LEVEL, ...
	viper.SetEnvPrefix("sysregs")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

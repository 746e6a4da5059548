package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aaronlimck/moolah/api"
	appconfig "github.com/aaronlimck/moolah/config"
)

const (
	jsonOutputFormat  = "json"
	tableOutputFormat = "table"
)

// Global variables for configuration.
var (
	cfgFile  string
	debug    bool
	token    string
	baseURL  string
	currency string
	client   *api.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "moolah",
	Short: "A terminal UI and CLI for moolah",
	Long:  `A terminal-based interface and CLI for entering and reviewing your moolah transactions.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		config := appConfig()

		// Setup logging
		log.SetLevel(log.InfoLevel)
		if config.Debug {
			log.SetLevel(log.DebugLevel)
		}

		if config.Token == "" {
			return errors.New("API token is required (set via --token flag, " +
				"MOOLAH_TOKEN environment variable, or config file)")
		}

		var err error
		client, err = api.NewClient(config.BaseURL, config.Token)
		if err != nil {
			return fmt.Errorf("failed to create moolah client: %w", err)
		}

		client.HTTP.Transport = newLoggingTransport(client.HTTP.Transport, log.Default())

		return nil
	},
	RunE: func(c *cobra.Command, _ []string) error {
		// Start TUI when no subcommands are provided
		return rootAction(c.Context(), appConfig(), client)
	},
}

// appConfig assembles the effective configuration from flags, environment,
// and the config file.
func appConfig() appconfig.Config {
	return appconfig.Config{
		Debug:    debug,
		Token:    token,
		BaseURL:  baseURL,
		Currency: currency,
		Colors: appconfig.Colors{
			Primary:       viper.GetString("colors.primary"),
			Error:         viper.GetString("colors.error"),
			Success:       viper.GetString("colors.success"),
			Warning:       viper.GetString("colors.warning"),
			Muted:         viper.GetString("colors.muted"),
			Income:        viper.GetString("colors.income"),
			Expense:       viper.GetString("colors.expense"),
			Border:        viper.GetString("colors.border"),
			Background:    viper.GetString("colors.background"),
			Text:          viper.GetString("colors.text"),
			SecondaryText: viper.GetString("colors.secondary_text"),
		},
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.moolah.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "the API token for moolah")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API endpoint for a self-hosted server")
	rootCmd.PersistentFlags().StringVar(&currency, "currency", "USD", "display currency for amounts")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("currency", rootCmd.PersistentFlags().Lookup("currency"))

	// Bind environment variables
	_ = viper.BindEnv("token", "MOOLAH_TOKEN")
	_ = viper.BindEnv("base_url", "MOOLAH_BASE_URL")

	// Add subcommands
	rootCmd.AddCommand(transactionCmd)
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(accountsCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A local .env is handy during development; ignore it when absent.
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			log.Error("Error finding home directory", "error", err)
			os.Exit(1)
		}

		// Search config in multiple locations (in order of precedence)
		// Current directory (highest precedence)
		viper.AddConfigPath(".")
		viper.SetConfigName("moolah")
		viper.SetConfigType("toml")

		// User config directory
		if configDir, configErr := os.UserConfigDir(); configErr == nil {
			viper.AddConfigPath(filepath.Join(configDir, "moolah"))
		}

		// User home directory
		viper.AddConfigPath(home)
		viper.AddConfigPath(filepath.Join(home, ".config", "moolah"))

		// System-wide config directory (lowest precedence)
		viper.AddConfigPath("/etc/moolah")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Config file not found or error reading", "error", err)
	} else {
		log.Debug("Using config file", "file", viper.ConfigFileUsed())
	}

	// Update global variables from viper
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("token") {
		token = viper.GetString("token")
	}
	if !rootCmd.PersistentFlags().Changed("base-url") {
		baseURL = viper.GetString("base_url")
	}
	if !rootCmd.PersistentFlags().Changed("currency") {
		if c := viper.GetString("currency"); c != "" {
			currency = c
		}
	}
}

// Utility functions for output formatting.
func outputJSON(data any) error {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	fmt.Println(string(jsonData))
	return nil
}

func validateOutputFormat(cmd *cobra.Command) (string, error) {
	outputFormat, _ := cmd.Flags().GetString("output")

	validFormats := []string{tableOutputFormat, jsonOutputFormat}
	if !slices.Contains(validFormats, outputFormat) {
		return "", fmt.Errorf("invalid output format: %s (must be one of %v)", outputFormat, validFormats)
	}

	return outputFormat, nil
}

func createStyledTable(headers ...string) *table.Table {
	var (
		green     = lipgloss.Color("#36d399")
		gray      = lipgloss.Color("245")
		lightGray = lipgloss.Color("241")

		headerStyle  = lipgloss.NewStyle().Foreground(green).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
		oddRowStyle  = cellStyle.Foreground(gray)
		evenRowStyle = cellStyle.Foreground(lightGray)
	)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(green)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Headers(headers...)
}

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/modelcheck/internal"
	"codeberg.org/snonux/modelcheck/internal/models"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modelcheck",
		Short: "List generative AI models available to an API key",
		Long: `modelcheck lists the models your API key can use and keeps only
those that support a generation method (generateContent by default).

The key is read from GEMINI_API_KEY or GOOGLE_API_KEY (OPENAI_API_KEY for
the openai provider), a .env file, or $HOME/.modelcheck.yaml.

Examples:
  modelcheck                           # Gemini models supporting generateContent
  modelcheck --method embedContent     # Gemini embedding models
  modelcheck --provider genai          # Same listing through the Gen AI SDK
  modelcheck --provider openai         # OpenAI chat models`,
		Args:          cobra.NoArgs,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.modelcheck.yaml)")
	cmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", flags.EnvFile, "dotenv file loaded before reading API keys")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Write diagnostic logs to stderr")

	// Local flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Model source: gemini, genai or openai")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "Override the API host (default depends on provider)")
	cmd.Flags().StringVar(&flags.Method, "method", flags.Method, "Generation method a model must support")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("method", cmd.Flags().Lookup("method"))
}

// InitConfig loads the dotenv file and initializes viper configuration
func InitConfig(cfgFile, envFile string) {
	if envFile != "" {
		// Existing environment variables win over the file
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", envFile, err)
		}
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".modelcheck" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".modelcheck")
	}

	// Environment variables
	viper.SetEnvPrefix("MODELCHECK")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ResolveFlags copies config file values into flags the user did not set
func ResolveFlags(cmd *cobra.Command, flags *Flags) {
	if !cmd.Flags().Changed("provider") && viper.IsSet("provider") {
		flags.Provider = viper.GetString("provider")
	}
	if !cmd.Flags().Changed("base-url") && viper.IsSet("base_url") {
		flags.BaseURL = viper.GetString("base_url")
	}
	if !cmd.Flags().Changed("method") && viper.IsSet("method") {
		flags.Method = viper.GetString("method")
	}
}

// GetAPIKey retrieves the API key for a provider from environment or config
func GetAPIKey(provider string) string {
	if provider == models.ProviderOpenAI {
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			return key
		}
		return viper.GetString("openai.api_key")
	}

	// First check environment variables
	for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}

	// Then check config file
	return viper.GetString("gemini.api_key")
}

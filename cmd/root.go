package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "xoxide",
	Short:         "X-Plane scenery load-order organizer",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `xoxide manages the scenery_packs.ini load order of an X-Plane
installation. It classifies every scenery pack from its name and on-disk
structure, scores it with an editable heuristic rule set, sorts the list
into a correct layering order, and flags known layering mistakes.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .xoxide.yaml)")
	rootCmd.PersistentFlags().String("root", "", "X-Plane installation root")
	rootCmd.PersistentFlags().String("profile", "", "heuristics profile name")
	rootCmd.PersistentFlags().String("region", "", "region focus (e.g. Europe)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("xplane_root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("region_focus", rootCmd.PersistentFlags().Lookup("region"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".xoxide")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("XOXIDE")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()

	if viper.GetBool("verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

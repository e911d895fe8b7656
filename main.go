package main

import (
	"context"
	"errors"
	"os"
	"path"

	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"portscribe/cli/commands"
	app_info "portscribe/internal/app-info"
	"portscribe/internal/config"
	"portscribe/internal/inventory"
	"portscribe/internal/logger"
)

/**
 * Main entry point for all commands
 * Here we setup environment config via viper
 */

func setRuntimeConfig() (string, error) {
	userHomeDir, err := os.UserHomeDir()

	if err != nil {
		return "", err
	}

	configDir := path.Join(userHomeDir, ".config", app_info.NAME)

	if err := os.MkdirAll(configDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return "", err
	}

	configFile := path.Join(configDir, "config.yml")

	logFile := path.Join(configDir, app_info.NAME+".log")

	userCacheDir, err := os.UserCacheDir()

	if err != nil {
		return "", err
	}

	cacheDir := path.Join(userCacheDir, app_info.NAME)

	if err := os.MkdirAll(cacheDir, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		return "", err
	}

	dbFile := path.Join(cacheDir, app_info.NAME+".db")

	// share location of files and directories globally using viper
	viper.Set("log-file", logFile)
	viper.Set("config-dir", configDir)
	viper.Set("config-file", configFile)
	viper.Set("cache-dir", cacheDir)
	viper.Set("database-file", dbFile)

	return configFile, nil
}

// Entry point for the cli
func main() {
	log := logger.New()

	configFile, err := setRuntimeConfig()

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}

	conf, err := config.New(configFile)

	if err != nil {
		if writeErr := config.Write(*config.Default(), configFile); writeErr != nil {
			log.Fatal().Err(writeErr).Msg("failed to write starter config")
		}

		log.Fatal().
			Str("file", configFile).
			Msg("no usable config found, starter config written, fill in your devices and rerun")
	}

	dbFile := viper.Get("database-file").(string)

	db, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})

	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	if err := db.AutoMigrate(&inventory.PortModel{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	portRepo := inventory.NewSqliteRepo(db)
	portService := inventory.NewService(portRepo)

	// logging goes to a file so the review ui owns the terminal
	if err := logger.GlobalSetLogFile(viper.Get("log-file").(string)); err != nil {
		log.Fatal().Err(err).Msg("failed to open log file")
	}

	// Get the "root" cobra cli command
	cmd := commands.Root(&commands.CommandProps{
		Conf:  conf,
		Ports: portService,
	})

	// Allows "grepping" of command output
	cmd.SetOutput(os.Stdout)

	// execute the cobra command and exit with error code if necessary
	err = cmd.ExecuteContext(context.Background())

	if err != nil {
		log.Fatal().Err(err).Msg("")
	}
}

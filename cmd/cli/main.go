package main

import (
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/school-management/sm-console/internal/session"
	"github.com/school-management/sm-console/pkg/client/studentapi"
)

var log *zap.Logger

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func unwrap[T any](value T, err error) T {
	check(err)
	return value
}

var (
	rootCmd = &cobra.Command{
		Use:   "smctl",
		Short: "Student records console client",
	}

	studentsCmd = &cobra.Command{
		Use:   "students",
		Short: "Manage student records",
	}

	endpoint string
	dataDir  string
)

func initLogging() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.ConsoleSeparator = " "
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.StampMilli)
	log = unwrap(config.Build())
}

func initCommands() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", envOr("SM_API_BASEURL", "http://localhost:8081"), "Remote API base URL")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", envOr("SM_SESSION_DATADIR", "data"), "Directory holding the session token")

	studentsCmd.AddCommand(makeListCommand())
	studentsCmd.AddCommand(makeGetCommand())
	studentsCmd.AddCommand(makeCreateCommand())
	studentsCmd.AddCommand(makeUpdateCommand())
	studentsCmd.AddCommand(makeDeleteCommand())

	rootCmd.AddCommand(makeLoginCommand())
	rootCmd.AddCommand(makeLogoutCommand())
	rootCmd.AddCommand(studentsCmd)
	rootCmd.AddCommand(makeExportCommand())
	rootCmd.AddCommand(makeImportCommand())
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func newSessionStore() (*session.Store, error) {
	stash, err := session.NewFileStash(dataDir)
	if err != nil {
		return nil, err
	}
	return session.NewStore(stash)
}

func newClient() (*studentapi.Client, *session.Store, error) {
	store, err := newSessionStore()
	if err != nil {
		return nil, nil, err
	}
	return studentapi.NewClient(endpoint, time.Second*10, store), store, nil
}

func init() {
	initLogging()
	initCommands()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Command failed: %s", err.Error())
		os.Exit(1)
	}
}

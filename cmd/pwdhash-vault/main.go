package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"

	"github.com/pwdhash/vault/internal/announce"
	"github.com/pwdhash/vault/internal/backup"
	"github.com/pwdhash/vault/internal/clipboard"
	"github.com/pwdhash/vault/internal/config"
	"github.com/pwdhash/vault/internal/generator"
	"github.com/pwdhash/vault/internal/health"
	"github.com/pwdhash/vault/internal/models"
	"github.com/pwdhash/vault/internal/noop"
	"github.com/pwdhash/vault/internal/search"
	"github.com/pwdhash/vault/internal/server"
	"github.com/pwdhash/vault/internal/vault"
	"github.com/pwdhash/vault/internal/vault/sqlite"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate ephemeral instance
			// through the Docker built-in healthcheck, to query the
			// long running instance about its status.
			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, healthSettings.ServerAddress)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	announcer, err := announce.New(config.Shoutrrr.Addresses,
		config.Shoutrrr.DefaultTitle, logger.New(log.SetComponent("announce")))
	if err != nil {
		return fmt.Errorf("setting up notifications: %w", err)
	}

	const dataDirPerms = 0o700
	err = os.MkdirAll(*config.Paths.DataDir, dataDirPerms)
	if err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	store, err := sqlite.NewDatabase(*config.Paths.DataDir)
	if err != nil {
		announcer.Notify(err.Error())
		return fmt.Errorf("opening vault database: %w", err)
	}
	db := vault.NewService(store)

	pwGenerator := generator.New(generator.Settings{
		MasterPassword: config.Generator.MasterPassword,
		Length:         *config.Generator.PasswordLength,
	})

	searcher, err := createSearcher(config.Search, logger)
	if err != nil {
		return fmt.Errorf("creating image searcher: %w", err)
	}

	healthServer, err := createHealthServer(store, logger,
		config.Health.ServerAddress)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	httpServer, err := createServer(config.Server, *config.Paths.UIDir,
		logger, store, pwGenerator, clipboard.New(), searcher)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	var backupService goservices.Service
	backupLogger := logger.New(log.SetComponent("backup"))
	backupService = backup.New(config.Backup.Period, *config.Paths.DataDir,
		config.Backup.Directory, backupLogger)
	backupService, err = goservices.NewRestarter(goservices.RestarterSettings{Service: backupService})
	if err != nil {
		return fmt.Errorf("creating backup restarter: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{db, healthServer, httpServer, backupService},
		ServicesStop:  []goservices.Service{httpServer, healthServer, backupService, db},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	announcer.Notify("Vault listening on " + config.Server.ListeningAddress)

	select {
	case <-ctx.Done():
	case err = <-runError:
		announcer.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		announcer.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "pwdhash",
		Repository: "vault",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

//nolint:ireturn
func createSearcher(settings config.Search, logger log.LoggerInterface) (
	searcher server.ImageSearcher, err error) {
	if !settings.Enabled() {
		logger.Info("image picker disabled: no search API key set")
		return nil, nil
	}

	const imageFetchTimeout = 10 * time.Second
	client, err := search.New(search.Settings{
		APIKey:   settings.APIKey,
		EngineID: settings.EngineID,
		Client:   &http.Client{Timeout: imageFetchTimeout},
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

//nolint:ireturn
func createHealthServer(store vault.Store, logger log.LoggerInterface,
	serverAddress string) (healthServer goservices.Service, err error) {
	if !health.IsDocker() {
		return noop.New("healthcheck server"), nil
	}
	isHealthy := health.MakeIsHealthy(store)
	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	return health.NewServer(serverAddress, healthLogger, isHealthy)
}

//nolint:ireturn
func createServer(settings config.Server, uiDir string,
	logger log.LoggerInterface, store vault.Store,
	pwGenerator server.PasswordGenerator, clip server.Clipboard,
	searcher server.ImageSearcher) (service goservices.Service, err error) {
	if !*settings.Enabled {
		return noop.New("server"), nil
	}
	serverLogger := logger.New(log.SetComponent("http server"))
	return server.New(server.Settings{
		Address:   settings.ListeningAddress,
		RootURL:   settings.RootURL,
		UIDir:     uiDir,
		Store:     store,
		Generator: pwGenerator,
		Clipboard: clip,
		Searcher:  searcher,
		Logger:    serverLogger,
	})
}

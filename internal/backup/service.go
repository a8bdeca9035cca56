// Package backup periodically archives the vault database file
// to a zip file in the output directory.
package backup

import (
	"context"
	"path/filepath"
	"strconv"
	"time"
)

type Logger interface {
	Info(s string)
}

type Service struct {
	// Injected fields
	backupPeriod time.Duration
	dataDir      string
	outputDir    string
	ziper        FileZiper
	logger       Logger

	// Internal fields
	stopCh chan<- struct{}
	done   <-chan struct{}
}

func New(backupPeriod time.Duration,
	dataDir, outputDir string, logger Logger) *Service {
	return &Service{
		logger:       logger,
		backupPeriod: backupPeriod,
		dataDir:      dataDir,
		outputDir:    outputDir,
		ziper:        NewZiper(),
	}
}

func (s *Service) String() string {
	return "backup"
}

func makeZipFileName() string {
	return "pwdhash-vault-backup-" +
		strconv.Itoa(int(time.Now().UnixNano())) + ".zip"
}

func (s *Service) Start(ctx context.Context) (runError <-chan error, startErr error) {
	ready := make(chan struct{})
	runErrorCh := make(chan error)
	stopCh := make(chan struct{})
	s.stopCh = stopCh
	done := make(chan struct{})
	s.done = done
	go s.run(ready, runErrorCh, stopCh, done)
	select {
	case <-ready:
	case <-ctx.Done():
		return nil, s.Stop()
	}
	return runErrorCh, nil
}

func (s *Service) run(ready chan<- struct{}, runError chan<- error,
	stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	if s.backupPeriod == 0 {
		close(ready)
		s.logger.Info("disabled")
		return
	}

	s.logger.Info("each " + s.backupPeriod.String() +
		"; writing zip files to directory " + s.outputDir)
	timer := time.NewTimer(s.backupPeriod)
	close(ready)

	for {
		select {
		case <-timer.C:
		case <-stopCh:
			_ = timer.Stop()
			return
		}
		err := s.ziper.ZipFiles(
			filepath.Join(s.outputDir, makeZipFileName()),
			filepath.Join(s.dataDir, "vault.db"),
		)
		if err != nil {
			runError <- err
			return
		}
		timer.Reset(s.backupPeriod)
	}
}

func (s *Service) Stop() (err error) {
	close(s.stopCh)
	<-s.done
	return nil
}

package web

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/school-management/sm-console/internal/config"
)

func Run(logger *zap.Logger) error {
	cfg, err := config.ParseConfig()
	if err != nil {
		return err
	}

	s, err := newServer(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "Failed to start server")
	}

	return errors.Wrap(s.run(), "Server failed")
}

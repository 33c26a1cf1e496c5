package web

import (
	"go.uber.org/zap"

	"github.com/school-management/sm-console/internal/config"
)

type webService struct {
	server *server
	config *config.Config
	log    *zap.Logger
}

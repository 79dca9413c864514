package handler

import (
	"github.com/dmikh/job-tracker/internal/config"
	"github.com/dmikh/job-tracker/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc      *service.Service
	validate *validator.Validate
	log      *logrus.Logger
	cfg      *config.Config
}

func NewHandler(svc *service.Service, log *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
		log:      log,
		cfg:      cfg,
	}
}

package service

import (
	"github.com/amorags/notepad/internal/config"
	"github.com/amorags/notepad/internal/logger"
	"github.com/amorags/notepad/internal/store"
)

type Services struct {
	AuthService AuthService
	NoteService NoteService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		NoteService: NewNoteService(storages.NoteRepository, logger),
	}
}

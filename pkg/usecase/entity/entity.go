package entity

import (
	"github.com/bettyabay/LeanChems-AI-CRM-MVP-sub000/pkg/repository"
)

// UseCase provides entity lifecycle operations
type UseCase struct {
	repo repository.Repository
}

// New creates a new entity UseCase instance
func New(repo repository.Repository) *UseCase {
	return &UseCase{repo: repo}
}

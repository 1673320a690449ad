package ui

import (
	"time"

	"timekeeper/internal/domain"
	"timekeeper/internal/services"
)

// tickMsg is the redraw signal. It carries no data and only triggers a reload.
type tickMsg struct{}

// refreshedMsg carries a fresh snapshot of the store
type refreshedMsg struct {
	err      error
	loadedAt time.Time
	overview *services.Overview
	tags     []domain.Tag
}

// actionDoneMsg reports the outcome of a command sent to the store
type actionDoneMsg struct {
	err    error
	status string
}

package app

import (
	"github.com/VetSecItPro/styrby-app-sub006/internal/domain"
	"github.com/VetSecItPro/styrby-app-sub006/internal/secretsource"
	messagesvc "github.com/VetSecItPro/styrby-app-sub006/internal/services/message"
	"github.com/VetSecItPro/styrby-app-sub006/internal/store"
)

// Wire bundles the stores, providers, and services for the CLI.
type Wire struct {
	Keystore *secretsource.Keystore
	Store    domain.MessageStore
	Messages domain.MessageService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	keystore := secretsource.NewKeystore(cfg.Home, cfg.Passphrase)
	messageStore := store.NewMessageFileStore(cfg.Home)
	messages := messagesvc.New(keystore, messageStore, cfg.MachineID)

	return &Wire{
		Keystore: keystore,
		Store:    messageStore,
		Messages: messages,
	}
}

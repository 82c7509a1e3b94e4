package app

import "github.com/VetSecItPro/styrby-app-sub006/internal/domain"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string           // data directory, e.g. $HOME/.styrby
	MachineID  domain.MachineID // identifier of this device
	Passphrase string           // protects the master-secret keystore
}

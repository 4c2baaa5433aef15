package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/colortools/internal/core/ports"
)

// NodeID is the unique identifier for the config store Graft node.
const NodeID graft.ID = "adapter.config_store"

func init() {
	graft.Register(graft.Node[ports.ConfigStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigStore, error) {
			home, _ := os.UserHomeDir()
			return NewStore(Options{
				ConfigHome: os.Getenv("XDG_CONFIG_HOME"),
				Home:       home,
			}), nil
		},
	})
}

package internal

import (
	"time"

	"chat-ledger/protocol"
)

type Config struct {
	// PeerTimeout bounds every wait on a stakeholder during a handshake.
	PeerTimeout time.Duration `env:"PEER_TIMEOUT,required=true"`
	// SinkTimeout bounds one observer sink consuming one event.
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT,required=true"`
	FanoutBufferSize  int           `env:"FANOUT_BUFFER_SIZE,required=true"`
	NetworkBufferSize int           `env:"NETWORK_BUFFER_SIZE,required=true"`
	// HealthInterval paces the process self-monitoring log line.
	HealthInterval time.Duration `env:"HEALTH_INTERVAL,default=30s"`
	// VaultDir holds one Badger directory per party.
	VaultDir string `env:"VAULT_DIR,required=true"`
	LogLevel string `env:"LOG_LEVEL,required=true"`
	// RetireEmptyPolicy: "strict" makes retiring zero messages an error,
	// "lenient" a no-op. Empty means lenient.
	RetireEmptyPolicy string `env:"RETIRE_EMPTY_POLICY"`
}

func (c Config) RetirePolicy() protocol.RetirePolicy {
	if c.RetireEmptyPolicy == string(protocol.RetireStrict) {
		return protocol.RetireStrict
	}
	return protocol.RetireLenient
}

func (c Config) ProtocolConfig() protocol.Config {
	return protocol.Config{
		PeerTimeout: c.PeerTimeout,
		RetireEmpty: c.RetirePolicy(),
	}
}

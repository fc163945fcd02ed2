package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	QuorumQueueType  = "quorum"
	ClassicQueueType = "classic"

	defaultQueueProcessingTimeout = 5 * time.Second
)

type QueueConfig struct {
	QueueUser              string        `mapstructure:"queue-user"`
	QueuePassword          string        `mapstructure:"queue-password"`
	Url                    string        `mapstructure:"url"`
	QueueProcessingTimeout time.Duration `mapstructure:"processing-timeout"`
	QueueType              string        `mapstructure:"queue-type"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.QueueUser == "" {
		return errors.New("missing queue user")
	}

	if cfg.QueuePassword == "" {
		return errors.New("missing queue password")
	}

	if cfg.Url == "" {
		return errors.New("missing queue url")
	}

	if cfg.QueueProcessingTimeout <= 0 {
		cfg.QueueProcessingTimeout = defaultQueueProcessingTimeout
	}

	switch cfg.QueueType {
	case "":
		cfg.QueueType = QuorumQueueType
	case QuorumQueueType, ClassicQueueType:
	default:
		return fmt.Errorf("invalid queue type %s", cfg.QueueType)
	}

	return nil
}

// ConnectionString builds the amqp url from the configured credentials.
func (cfg *QueueConfig) ConnectionString() string {
	return fmt.Sprintf("amqp://%s:%s@%s", cfg.QueueUser, cfg.QueuePassword, cfg.Url)
}

package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
	AllowedOrigins() []string
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
	SeedDemoData() bool
}

type Kafka interface {
	Brokers() []string
	InventoryCheckedTopic() string
	ReorderConsumerGroupID() string
	InventoryCheckedProducerConfig() *sarama.Config
	InventoryCheckedConsumerConfig() *sarama.Config
}

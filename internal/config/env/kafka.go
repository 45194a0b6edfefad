package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers                   []string `env:"KAFKA_BROKERS,required"`
	InventoryCheckedTopicName string   `env:"INVENTORY_CHECKED_TOPIC_NAME,required"`
	ReorderConsumerGroupID    string   `env:"REORDER_CONSUMER_GROUP_ID,required"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string             { return cfg.raw.Brokers }
func (cfg *kafka) InventoryCheckedTopic() string { return cfg.raw.InventoryCheckedTopicName }
func (cfg *kafka) ReorderConsumerGroupID() string {
	return cfg.raw.ReorderConsumerGroupID
}

func (cfg *kafka) InventoryCheckedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true

	return config
}

func (cfg *kafka) InventoryCheckedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/sethvargo/go-retry"

	"github.com/fieldscope/fieldops-inventory/internal/config"
	"github.com/fieldscope/fieldops-inventory/internal/converter"
	"github.com/fieldscope/fieldops-inventory/internal/model"
	"github.com/fieldscope/fieldops-inventory/internal/platform/closer"
	"github.com/fieldscope/fieldops-inventory/internal/platform/db/migrator"
	"github.com/fieldscope/fieldops-inventory/internal/platform/kafka"
	"github.com/fieldscope/fieldops-inventory/internal/platform/kafka/consumer"
	"github.com/fieldscope/fieldops-inventory/internal/platform/kafka/middleware"
	"github.com/fieldscope/fieldops-inventory/internal/platform/kafka/producer"
	"github.com/fieldscope/fieldops-inventory/internal/platform/logger"
	customerrepo "github.com/fieldscope/fieldops-inventory/internal/repository/customer"
	equipmentrepo "github.com/fieldscope/fieldops-inventory/internal/repository/equipment"
	reorderrepo "github.com/fieldscope/fieldops-inventory/internal/repository/reorder"
	reorderconsumer "github.com/fieldscope/fieldops-inventory/internal/service/consumer/reorder"
	custservice "github.com/fieldscope/fieldops-inventory/internal/service/customer"
	invservice "github.com/fieldscope/fieldops-inventory/internal/service/inventory"
	invproducer "github.com/fieldscope/fieldops-inventory/internal/service/producer/inventory"
	thttp "github.com/fieldscope/fieldops-inventory/internal/transport/http/inventory/v1"
	tservice "github.com/fieldscope/fieldops-inventory/internal/transport/http/service"
)

type Converter interface {
	InventoryCheckedToBytes(m model.InventoryChecked) ([]byte, error)
	InventoryCheckedToModel(data []byte) (model.InventoryChecked, error)
}

type EquipmentRepository interface {
	invservice.EquipmentRepository
	equipmentrepo.DemoSeeder
}

type ReorderConsumer interface {
	RunInventoryCheckedConsume(ctx context.Context) error
}

type InventoryHandler interface {
	Register(r chi.Router)
}

type IdentifyHandler interface {
	Identify(w http.ResponseWriter, r *http.Request)
}

type di struct {
	dbPool   *pgxpool.Pool
	migrator *migrator.Migrator

	equipmentRepo EquipmentRepository
	customerRepo  custservice.CustomerRepository
	reorderRepo   reorderconsumer.ReorderRepository

	conv Converter

	syncProducer      sarama.SyncProducer
	checkedProducer   kafka.Producer
	inventoryProducer invservice.CheckEventSender

	consumerGroup   sarama.ConsumerGroup
	checkedConsumer kafka.Consumer
	reorderConsumer ReorderConsumer

	inventoryService thttp.InventoryService
	customerService  tservice.CustomerService

	inventoryHandler InventoryHandler
	identifyHandler  IdentifyHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		backoff := retry.WithMaxRetries(5, retry.NewFibonacci(250*time.Millisecond))
		err = retry.Do(ctx, backoff, func(ctx context.Context) error {
			if pingErr := pool.Ping(ctx); pingErr != nil {
				return retry.RetryableError(pingErr)
			}
			return nil
		})
		if err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) EquipmentRepository(ctx context.Context) EquipmentRepository {
	if d.equipmentRepo == nil {
		d.equipmentRepo = equipmentrepo.NewEquipmentRepository(d.DBPool(ctx))
	}

	return d.equipmentRepo
}

func (d *di) CustomerRepository(ctx context.Context) custservice.CustomerRepository {
	if d.customerRepo == nil {
		d.customerRepo = customerrepo.NewCustomerRepository(d.DBPool(ctx))
	}

	return d.customerRepo
}

func (d *di) ReorderRepository(ctx context.Context) reorderconsumer.ReorderRepository {
	if d.reorderRepo == nil {
		d.reorderRepo = reorderrepo.NewReorderRepository(d.DBPool(ctx))
	}

	return d.reorderRepo
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.InventoryCheckedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) InventoryCheckedProducer(ctx context.Context) kafka.Producer {
	if d.checkedProducer == nil {
		d.checkedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.InventoryCheckedTopic(),
			logger.L(),
		)
	}

	return d.checkedProducer
}

func (d *di) InventoryProducer(ctx context.Context) invservice.CheckEventSender {
	if d.inventoryProducer == nil {
		d.inventoryProducer = invproducer.NewInventoryProducer(
			d.InventoryCheckedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.inventoryProducer
}

func (d *di) ConsumerGroup(_ context.Context) sarama.ConsumerGroup {
	if d.consumerGroup == nil {
		cfg := config.C()

		consumerGroup, err := sarama.NewConsumerGroup(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ReorderConsumerGroupID(),
			cfg.Kafka.InventoryCheckedConsumerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create consumer group: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka consumer group", func(ctx context.Context) error {
			return d.consumerGroup.Close()
		})

		d.consumerGroup = consumerGroup
	}

	return d.consumerGroup
}

func (d *di) InventoryCheckedConsumer(ctx context.Context) kafka.Consumer {
	if d.checkedConsumer == nil {
		d.checkedConsumer = consumer.NewConsumer(
			d.ConsumerGroup(ctx),
			[]string{
				config.C().Kafka.InventoryCheckedTopic(),
			},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)
	}

	return d.checkedConsumer
}

func (d *di) ReorderConsumer(ctx context.Context) ReorderConsumer {
	if d.reorderConsumer == nil {
		d.reorderConsumer = reorderconsumer.NewReorderConsumer(
			d.InventoryCheckedConsumer(ctx),
			d.KafkaConverter(ctx),
			d.ReorderRepository(ctx),
		)
	}

	return d.reorderConsumer
}

func (d *di) InventoryService(ctx context.Context) thttp.InventoryService {
	if d.inventoryService == nil {
		d.inventoryService = invservice.NewInventoryService(
			d.EquipmentRepository(ctx),
			d.InventoryProducer(ctx),
			config.C().Server.DBReadTimeout(),
			config.C().Server.DBWriteTimeout(),
		)
	}

	return d.inventoryService
}

func (d *di) CustomerService(ctx context.Context) tservice.CustomerService {
	if d.customerService == nil {
		d.customerService = custservice.NewCustomerService(
			d.CustomerRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.customerService
}

func (d *di) InventoryHandler(ctx context.Context) InventoryHandler {
	if d.inventoryHandler == nil {
		d.inventoryHandler = thttp.NewInventoryHandler(d.InventoryService(ctx))
	}

	return d.inventoryHandler
}

func (d *di) IdentifyHandler(ctx context.Context) IdentifyHandler {
	if d.identifyHandler == nil {
		d.identifyHandler = tservice.NewIdentifyHandler(d.CustomerService(ctx))
	}

	return d.identifyHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}

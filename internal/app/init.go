package app

import (
	"fmt"
	"math/rand/v2"
	"net/http"

	server "github.com/admin/lucky-shop/divination-api/internal/adapters/primary/http"
	divinationController "github.com/admin/lucky-shop/divination-api/internal/adapters/primary/http/controllers/divination"
	healthcheckController "github.com/admin/lucky-shop/divination-api/internal/adapters/primary/http/controllers/healthcheck"
	productsController "github.com/admin/lucky-shop/divination-api/internal/adapters/primary/http/controllers/products"
	"github.com/admin/lucky-shop/divination-api/internal/adapters/secondary/catalog"
	kafkaAdapter "github.com/admin/lucky-shop/divination-api/internal/adapters/secondary/kafka"
	"github.com/admin/lucky-shop/divination-api/internal/adapters/secondary/storage/inmemory"
	"github.com/admin/lucky-shop/divination-api/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/admin/lucky-shop/divination-api/internal/adapters/secondary/storage/redis"
	"github.com/admin/lucky-shop/divination-api/internal/ports/kafka"
	"github.com/admin/lucky-shop/divination-api/internal/ports/repository"
	"github.com/admin/lucky-shop/divination-api/internal/ports/storage"
	historyRepo "github.com/admin/lucky-shop/divination-api/internal/repository/history"
	productRepo "github.com/admin/lucky-shop/divination-api/internal/repository/product"
	profileRepo "github.com/admin/lucky-shop/divination-api/internal/repository/profile"
	divinationUsecase "github.com/admin/lucky-shop/divination-api/internal/usecases/divination"
	productsUsecase "github.com/admin/lucky-shop/divination-api/internal/usecases/products"
	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB         *sqlx.DB
	KV         storage.KV
	Producer   kafka.IEventProducer
	HTTPServer *http.Server
}

// stdRNG источник случайности поверх math/rand/v2
type stdRNG struct{}

func (stdRNG) Intn(n int) int {
	return rand.IntN(n)
}

// initDependencies инициализирует все зависимости приложения
func (a *App) initDependencies() (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	kv := a.initKV()
	producer := a.initKafkaProducer()

	cat, err := catalog.NewEmbeddedCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	history := historyRepo.New(kv, a.Cfg.HistoryLimit, a.Log)
	profiles := profileRepo.New(kv, a.Log)

	var products repository.IProductRepo
	if db != nil {
		products = productRepo.New(pg.NewDB(db), a.Log)
	}

	divinationSvc := divinationUsecase.New(cat, history, profiles, producer, stdRNG{}, a.Log)
	productsSvc := productsUsecase.New(products, a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log,
		healthcheckController.New(db, a.Log),
		divinationController.New(divinationSvc, productsSvc, a.Log),
		productsController.New(productsSvc, a.Log),
	)

	return &Dependencies{
		DB:         db,
		KV:         kv,
		Producer:   producer,
		HTTPServer: httpServer,
	}, nil
}

// initPostgres подключается к Postgres и прогоняет миграции.
// Без конфигурации БД приложение работает без каталога товаров.
// envconfig аллоцирует вложенные конфиги даже без переменных окружения,
// поэтому признак несконфигурированной БД - пустой хост, а не nil.
func (a *App) initPostgres() (*sqlx.DB, error) {
	if a.Cfg.Postgres == nil || a.Cfg.Postgres.Host == "" {
		a.Log.Warn("postgres configuration is missing, product catalog disabled")
		return nil, nil
	}

	db, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// initKV подключается к Redis. При отсутствии конфигурации или ошибке
// подключения история и профили живут в памяти процесса.
func (a *App) initKV() storage.KV {
	if a.Cfg.Redis == nil || a.Cfg.Redis.Host == "" {
		a.Log.Warn("redis configuration is missing, using in-memory storage")
		return inmemory.NewKV()
	}

	client, err := a.Cfg.Redis.NewConnection()
	if err != nil {
		a.Log.Warn("failed to connect to redis, using in-memory storage", "error", err)
		return inmemory.NewKV()
	}

	a.Log.Info("redis connected successfully")
	return redisAdapter.NewClient(client)
}

// initKafkaProducer опциональный producer событий раскладов
func (a *App) initKafkaProducer() kafka.IEventProducer {
	if a.Cfg.Kafka == nil || a.Cfg.Kafka.Brokers == "" {
		a.Log.Info("kafka configuration is missing, reading events disabled")
		return nil
	}

	producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
	if err != nil {
		a.Log.Warn("failed to init kafka producer, reading events disabled", "error", err)
		return nil
	}

	a.Log.Info("kafka producer connected successfully")
	return producer
}

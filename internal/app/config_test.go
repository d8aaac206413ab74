package app

import (
	"testing"

	"github.com/admin/lucky-shop/divination-api/internal/adapters/secondary/storage/inmemory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envconfig аллоцирует вложенные указатели даже без единой переменной
// окружения, поэтому nil-проверки не отличают несконфигурированную
// подсистему. Признаком служат пустой хост и пустой список брокеров.
func TestNewEnvConfigEmptyEnvironment(t *testing.T) {
	cfg, err := NewEnvConfig("divination_api_test_empty")
	require.NoError(t, err)

	require.NotNil(t, cfg.Postgres)
	assert.Empty(t, cfg.Postgres.Host)

	require.NotNil(t, cfg.Redis)
	assert.Empty(t, cfg.Redis.Host)

	require.NotNil(t, cfg.Kafka)
	assert.Empty(t, cfg.Kafka.Brokers)

	require.NotNil(t, cfg.Server)
	assert.Equal(t, "8080", cfg.Server.Port)
}

// Пустое окружение не валит старт: Postgres пропускается (каталог
// товаров отключён), хранилище уходит в память, producer не создаётся.
func TestInitSkipsUnconfiguredSubsystems(t *testing.T) {
	cfg, err := NewEnvConfig("divination_api_test_empty")
	require.NoError(t, err)

	a := New("divination_api_test_empty", cfg)

	db, err := a.initPostgres()
	require.NoError(t, err)
	assert.Nil(t, db)

	kv := a.initKV()
	require.NotNil(t, kv)
	_, usesMemory := kv.(*inmemory.KV)
	assert.True(t, usesMemory)

	assert.Nil(t, a.initKafkaProducer())
}

func TestInitDependenciesWithoutBackends(t *testing.T) {
	cfg, err := NewEnvConfig("divination_api_test_empty")
	require.NoError(t, err)

	a := New("divination_api_test_empty", cfg)

	deps, err := a.initDependencies()
	require.NoError(t, err)
	assert.Nil(t, deps.DB)
	assert.Nil(t, deps.Producer)
	assert.NotNil(t, deps.KV)
	assert.NotNil(t, deps.HTTPServer)
}

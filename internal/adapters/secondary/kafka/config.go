package kafka

import "strings"

// Config конфигурация для Kafka producer
type Config struct {
	Brokers          string `envconfig:"BROKERS"`           // "broker1:9092,broker2:9092"
	Topic            string `envconfig:"TOPIC"`             // название топика
	SecurityProtocol string `envconfig:"SECURITY_PROTOCOL"` // "SASL_SSL", "PLAINTEXT"
	SASLMechanism    string `envconfig:"SASL_MECHANISM"`    // "PLAIN", "SCRAM-SHA-256"
	SASLUsername     string `envconfig:"SASL_USERNAME"`
	SASLPassword     string `envconfig:"SASL_PASSWORD"`
}

// GetBrokers возвращает список брокеров из строки
func (c *Config) GetBrokers() []string {
	if c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	return strings.Split(c.Brokers, ",")
}

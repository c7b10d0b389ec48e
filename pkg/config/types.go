package config

import "time"

// AppConfig é a configuração completa do processo, montada uma única vez no
// boot e compartilhada somente leitura entre as invocações.
type AppConfig struct {
	Service ServiceConf `yaml:"service"`
	AWS     AWSConf     `yaml:"aws"`
	Store   StoreConf   `yaml:"store"`
	Logging LoggingConf `yaml:"logging"`
	Metrics MetricsConf `yaml:"metrics"`
	Events  EventsConf  `yaml:"events"`
}

// ServiceConf contém os metadados e configurações de runtime do serviço.
type ServiceConf struct {
	Name         string        `yaml:"name" env:"SERVICE_NAME" envDefault:"items-handler" validate:"required"`
	Runtime      string        `yaml:"runtime" env:"RUNTIME" envDefault:"lambda" validate:"required,oneof=local lambda"`
	Port         int           `yaml:"port" env:"PORT" envDefault:"8080" validate:"required_if=Runtime local,gte=0,lte=65535"`
	Route        string        `yaml:"route" env:"ROUTE" envDefault:"/items" validate:"required,startswith=/"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	// GenerateIDs atribui um uuid ao create sem `id` no corpo
	GenerateIDs bool `yaml:"generate_ids" env:"SERVICE_GENERATE_IDS"`
}

type AWSConf struct {
	Region string `yaml:"region" env:"AWS_REGION"`
}

// StoreConf seleciona e configura o backend do RecordStore.
type StoreConf struct {
	Backend string `yaml:"backend" env:"STORE_BACKEND" envDefault:"dynamodb" validate:"oneof=dynamodb memory redis postgres"`
	// TableName não tem default nem validação: vazio segue adiante como veio.
	TableName string `yaml:"table_name" env:"TABLE_NAME"`

	DynamoEndpoint string `yaml:"dynamodb_endpoint" env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"`

	RedisAddr      string `yaml:"redis_addr" env:"REDIS_ADDR" validate:"required_if=Backend redis"`
	RedisPassword  string `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB        int    `yaml:"redis_db" env:"REDIS_DB" validate:"gte=0"`
	RedisKeyPrefix string `yaml:"redis_key_prefix" env:"REDIS_KEY_PREFIX" envDefault:"items:"`

	PostgresDSN string `yaml:"postgres_dsn" env:"POSTGRES_DSN" validate:"required_if=Backend postgres"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"LOG_ENABLED" envDefault:"true"`
	Level   string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format  string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"items."`
}

// EventsConf habilita a publicação de eventos de alteração no SQS.
type EventsConf struct {
	SQSQueueURL string `yaml:"sqs_queue_url" env:"EVENTS_SQS_QUEUE_URL" validate:"omitempty,url"`
}

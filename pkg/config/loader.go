package config

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/items-handler/envloader"
	"github.com/raywall/items-handler/pkg/awsconf"
	"github.com/raywall/items-handler/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// EnvConfigFilePath aponta para um YAML opcional (caminho local, file:// ou s3://).
const EnvConfigFilePath = "CONFIG_FILE_PATH"

// S3Downloader permite mockar o client do S3
type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader monta o AppConfig: ambiente, arquivo YAML, injeção de segredos e validação.
type Loader struct {
	validator *ConfigValidator
	injector  *injector.Injector
	s3Client  S3Downloader
}

// NewLoader cria um loader com o validador e o injector padrão.
func NewLoader() *Loader {
	return &Loader{
		validator: NewValidator(),
		injector:  injector.New(),
	}
}

// Load é o atalho usado pelo cmd/server.
func Load(ctx context.Context) (*AppConfig, error) {
	return NewLoader().Load(ctx, os.Getenv(EnvConfigFilePath))
}

// Load aplica, nesta ordem: variáveis de ambiente e defaults, o YAML de
// source (quando informado), a interpolação ${env|ssm|secret.*} e a validação.
func (l *Loader) Load(ctx context.Context, source string) (*AppConfig, error) {
	var cfg AppConfig

	if err := envloader.Load(&cfg); err != nil {
		return nil, fmt.Errorf("falha leitura do ambiente: %w", err)
	}

	if source != "" {
		raw, err := l.read(ctx, source, cfg.AWS.Region)
		if err != nil {
			return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("YAML malformado: %w", err)
		}
	}

	if l.injector != nil {
		// aws.region do YAML vale também para ${ssm.*} e ${secret.*}
		l.injector.WithRegion(cfg.AWS.Region)
		if err := l.injector.Inject(ctx, &cfg); err != nil {
			return nil, fmt.Errorf("falha na injeção de variáveis: %w", err)
		}
	}

	if l.validator != nil {
		if err := l.validator.Validate(&cfg); err != nil {
			return nil, fmt.Errorf("validação da configuração falhou: %w", err)
		}
	}

	return &cfg, nil
}

func (l *Loader) read(ctx context.Context, source, region string) ([]byte, error) {
	if !strings.HasPrefix(source, "s3://") {
		return os.ReadFile(strings.TrimPrefix(source, "file://"))
	}

	client := l.s3Client
	if client == nil {
		awsCfg, err := awsconf.GetAWSConfig(ctx, region)
		if err != nil {
			return nil, err
		}
		client = s3.NewFromConfig(awsCfg)
	}
	return loadFromS3(ctx, client, source)
}

func loadFromS3(ctx context.Context, client S3Downloader, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL S3 inválida: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("URL S3 inválida: %s", uri)
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

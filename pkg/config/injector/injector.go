package injector

import (
	"context"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/raywall/items-handler/pkg/awsconf"
)

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.TABLE_NAME}, ${ssm./items/table}, ${secret.db#dsn}
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// Fetcher resolve uma chave de uma fonte (env, ssm, secret)
type Fetcher func(ctx context.Context, key string) (string, error)

type Injector struct {
	sources map[string]Fetcher
	region  string
}

// Leitores reais do SSM e do Secrets Manager (substituídos nos testes)
var (
	parameterFn = awsconf.Parameter
	secretFn    = awsconf.Secret
)

// New cria o injector com as fontes padrão. SSM e Secrets Manager usam a região
// de WithRegion e, na falta dela, AWS_REGION.
func New() *Injector {
	i := &Injector{}
	i.sources = map[string]Fetcher{
		"env": func(_ context.Context, key string) (string, error) {
			return os.Getenv(key), nil // variável não encontrada vira vazio
		},
		"ssm": func(ctx context.Context, key string) (string, error) {
			return parameterFn(ctx, i.Region(), key)
		},
		"secret": func(ctx context.Context, key string) (string, error) {
			return secretFn(ctx, i.Region(), key)
		},
	}
	return i
}

// WithRegion fixa a região usada pelas fontes ssm e secret
func (i *Injector) WithRegion(region string) *Injector {
	i.region = region
	return i
}

// Region devolve a região efetiva das fontes AWS
func (i *Injector) Region() string {
	if i.region != "" {
		return i.region
	}
	return os.Getenv("AWS_REGION")
}

// WithSource substitui a fonte informada (útil para testes)
func (i *Injector) WithSource(name string, fn Fetcher) *Injector {
	i.sources[name] = fn
	return i
}

// Inject percorre a struct e resolve as interpolações em todos os campos string
func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("target deve ser um ponteiro para struct não nulo")
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		for k := 0; k < v.NumField(); k++ {
			if err := i.injectRecursive(ctx, v.Field(k)); err != nil {
				return fmt.Errorf("%s: %w", v.Type().Field(k).Name, err)
			}
		}

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		newValue, err := i.interpolateString(ctx, v.String())
		if err != nil {
			return err
		}
		v.SetString(newValue)

	case reflect.Map:
		if v.Type().Key().Kind() == reflect.String && !v.IsNil() {
			return i.injectMap(ctx, v)
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.injectRecursive(ctx, v.Index(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// interpolateString realiza a substituição baseada em Regex
func (i *Injector) interpolateString(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		if err != nil {
			return match
		}
		parts := pattern.FindStringSubmatch(match)
		fetch, ok := i.sources[parts[1]]
		if !ok {
			return match
		}

		val, resolveErr := fetch(ctx, parts[2])
		if resolveErr != nil {
			err = fmt.Errorf("falha ao resolver %s: %w", match, resolveErr)
			return match
		}
		return val
	})

	return result, err
}

// injectMap lida com mapas dinâmicos (valores string ou mapas aninhados)
func (i *Injector) injectMap(ctx context.Context, v reflect.Value) error {
	updates := make(map[string]reflect.Value)

	iter := v.MapRange()
	for iter.Next() {
		elem := iter.Value()
		if elem.Kind() == reflect.Interface {
			elem = elem.Elem()
		}
		if !elem.IsValid() {
			continue
		}

		switch elem.Kind() {
		case reflect.String:
			newVal, err := i.interpolateString(ctx, elem.String())
			if err != nil {
				return err
			}
			updates[iter.Key().String()] = reflect.ValueOf(newVal).Convert(elem.Type())
		case reflect.Map:
			if elem.Type().Key().Kind() == reflect.String {
				if err := i.injectMap(ctx, elem); err != nil {
					return err
				}
			}
		}
	}

	for k, val := range updates {
		if v.Type().Elem().Kind() != reflect.Interface && !val.Type().AssignableTo(v.Type().Elem()) {
			continue
		}
		v.SetMapIndex(reflect.ValueOf(k).Convert(v.Type().Key()), val)
	}
	return nil
}

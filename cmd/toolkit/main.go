package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/raywall/items-handler/pkg/config"
)

// report é a saída JSON do comando validate (OUTPUT_FORMAT=json)
type report struct {
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
	Runtime string `json:"runtime,omitempty"`
	Backend string `json:"backend,omitempty"`
	Table   string `json:"table,omitempty"`
}

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	filePtr := validateCmd.String("file", "", "Caminho do arquivo YAML (local, file:// ou s3://). Vazio usa só o ambiente")

	if len(os.Args) < 2 {
		fmt.Println("Comandos esperados: validate")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := runValidate(context.Background(), *filePtr, os.Getenv("OUTPUT_FORMAT"), os.Stdout); err != nil {
			os.Exit(1) // Falha no CI
		}
	default:
		fmt.Println("Comando desconhecido")
		os.Exit(1)
	}
}

// runValidate carrega a configuração exatamente como o cmd/server faria.
func runValidate(ctx context.Context, path, format string, out io.Writer) error {
	cfg, err := config.NewLoader().Load(ctx, path)

	if format == "json" {
		r := report{Valid: err == nil}
		if err != nil {
			r.Error = err.Error()
		} else {
			r.Runtime, r.Backend, r.Table = cfg.Service.Runtime, cfg.Store.Backend, cfg.Store.TableName
		}
		if encErr := json.NewEncoder(out).Encode(r); encErr != nil {
			return encErr
		}
		return err
	}

	if err != nil {
		fmt.Fprintf(out, "❌ Configuração inválida:\n%v\n", err)
		return err
	}

	fmt.Fprintf(out, "✅ Configuração válida (runtime=%s, backend=%s, table=%q)\n",
		cfg.Service.Runtime, cfg.Store.Backend, cfg.Store.TableName)
	return nil
}

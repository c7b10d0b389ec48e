// Package record define o item endereçável pelo handler: um mapa de campos
// arbitrários com uma chave primária obrigatória `id`.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	// FieldID é a chave primária do registro.
	FieldID = "id"
	// FieldInfo é o único campo sobrescrito pela operação de update.
	FieldInfo = "info"
)

// ErrNotObject indica um corpo JSON válido que não é um objeto (array, string, número ou null).
var ErrNotObject = errors.New("record: body is not a JSON object")

// Record é um item do store. Todos os campos além de `id` são opacos.
type Record map[string]any

// Parse decodifica o corpo da requisição. Corpo ausente equivale a `{}`.
func Parse(body string) (Record, error) {
	if strings.TrimSpace(body) == "" {
		return Record{}, nil
	}

	var raw any
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("record: invalid JSON body: %w", err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Record(obj), nil
}

// ID retorna o `id` quando presente como string não vazia; ids não string (ex: numéricos) contam como ausentes.
func (r Record) ID() (string, bool) {
	id, ok := r[FieldID].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// Info retorna o campo `info` e se ele existe no registro.
func (r Record) Info() (any, bool) {
	v, ok := r[FieldInfo]
	return v, ok
}

// WithID devolve uma cópia rasa do registro com o `id` informado.
func (r Record) WithID(id string) Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[FieldID] = id
	return out
}

// JSON serializa o registro. Um registro nil vira `null`.
func (r Record) JSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(map[string]any(r)); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

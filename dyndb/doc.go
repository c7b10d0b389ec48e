// Package dyndb fornece uma abstração genérica e fortemente tipada sobre o
// AWS DynamoDB Go SDK (v2).
//
// Visão Geral:
// O pacote `dyndb` oferece a interface `Store[T]`, que simplifica as operações
// de item único (Get, Put, Update, Delete) eliminando a necessidade de lidar
// diretamente com os tipos de baixo nível do SDK (AttributeValue, etc.).
//
// Funcionalidades Principais:
// - CRUD Tipado: `Get`, `Put` e `Delete` usando tipos Go nativos, inclusive `map[string]any`.
// - Update por campo: `Update` gera `SET campo = :valor` com o Expression Builder do SDK.
// - Mocks Integrados: `MockStore` e `MockDynamoClient` para testes unitários.
//
// Exemplo Básico:
//
//	cfg := dyndb.TableConfig[map[string]any]{TableName: "Items", HashKey: "id"}
//	items := dyndb.New(dynamodb.NewFromConfig(awsCfg), cfg)
//
//	_ = items.Put(ctx, map[string]any{"id": "a", "info": "x"})
//	_ = items.Update(ctx, "a", map[string]any{"info": "y"})
//
//	item, err := items.Get(ctx, "a")
//	if errors.Is(err, dyndb.ErrNotFound) { /* ... */ }
//
// O nome da tabela não é validado: uma tabela vazia chega ao DynamoDB como
// veio e o erro do serviço é devolvido ao chamador.
package dyndb

// Package itemshandler é um handler HTTP mínimo que traduz POST, GET, PUT e
// DELETE em create, read, update e delete sobre uma tabela chave-valor
// (DynamoDB por padrão). Roda como AWS Lambda atrás do API Gateway ou como
// servidor HTTP local.
//
// Visão Geral:
// O módulo é organizado em camadas pequenas e testáveis:
//  1. Configuração (pkg/config, envloader): ambiente, YAML opcional (arquivo
//     ou S3) e interpolação de ${env|ssm|secret.*}, validada no boot.
//  2. Despacho (pkg/dispatcher): roteia o método para a operação, valida a
//     entrada e converte erros em respostas 400/500.
//  3. Persistência (pkg/store, dyndb): RecordStore sobre DynamoDB, Redis,
//     PostgreSQL ou memória.
//  4. Transporte (pkg/transport): adaptador Lambda e router gorilla/mux, ambos
//     com correlation id e log por requisição.
//  5. Observabilidade (pkg/logger, pkg/observability, pkg/events): zerolog,
//     métricas DataDog e eventos de alteração no SQS.
//
// Contrato HTTP:
//
//	POST   /items            {"id":"a","info":...}  -> 201 {"message":"Item created"}
//	GET    /items?id=a                              -> 200 <registro> | null
//	PUT    /items            {"id":"a","info":...}  -> 200 {"message":"Item updated"}
//	DELETE /items?id=a                              -> 200 {"message":"Item deleted"}
//	outro método                                    -> 400 {"message":"Invalid HTTP Method"}
//
// Falhas do store viram 500 {"message":"Internal Server Error","error":"..."}.
//
// Exemplo de Início Rápido (runtime local, store em memória):
//
//	RUNTIME=local STORE_BACKEND=memory TABLE_NAME=items go run ./cmd/server
//	curl -XPOST localhost:8080/items -d '{"id":"a","info":"x"}'
//	curl 'localhost:8080/items?id=a'
package itemshandler

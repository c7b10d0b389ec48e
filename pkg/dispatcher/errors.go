package dispatcher

import "fmt"

// Mensagens devolvidas ao cliente. Fazem parte do contrato da API.
const (
	MsgInvalidMethod   = "Invalid HTTP Method"
	MsgInternalError   = "Internal Server Error"
	MsgMissingIDParam  = "Missing id parameter"
	MsgMissingIDInBody = "Missing id in body"
	MsgBodyNotObject   = "Request body must be a JSON object"

	MsgItemCreated = "Item created"
	MsgItemUpdated = "Item updated"
	MsgItemDeleted = "Item deleted"
)

// ValidationError representa uma entrada rejeitada antes de qualquer acesso ao store (400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RoutingError indica um método HTTP sem operação associada (400).
type RoutingError struct {
	Method string
}

func (e *RoutingError) Error() string {
	return fmt.Sprintf("no operation for method %q", e.Method)
}

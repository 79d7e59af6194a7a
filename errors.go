package main

import "errors"

// Erros esperados do domínio, distinguíveis pelo chamador
var (
	ErrProductNotFound       = errors.New("product not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrInsufficientInventory = errors.New("insufficient inventory")
)

// ValidationError indica entrada malformada ou fora do intervalo permitido
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

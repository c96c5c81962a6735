package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indica que a chave não existe ou já foi consumida
var ErrNotFound = errors.New("snapshot não encontrado ou já consumido")

// Mailbox é o slot efêmero de leitura única usado no handoff do
// checkout para a tela de recibo: a venda é gravada sob uma chave com
// TTL curto e a primeira leitura a remove. Uma segunda leitura (ou uma
// leitura após o TTL) encontra ErrNotFound.
type Mailbox interface {
	// Put grava o valor sob a chave com o tempo de vida informado
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Take lê e remove o valor da chave em uma única operação
	Take(ctx context.Context, key string) ([]byte, error)
}

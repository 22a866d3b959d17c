package service

import "errors"

// Sentinel errors carried up to the handlers, which map them to HTTP status
// codes. Messages are user-facing; never wrap store errors into these.
var (
	// ErrInvalidBadge is deliberately generic: it never reveals whether the
	// badge exists.
	ErrInvalidBadge = errors.New("Crachá inválido.")
	// ErrInvalidCredential covers admin username/password mismatches, also
	// without distinguishing which part was wrong.
	ErrInvalidCredential = errors.New("Credenciais inválidas.")
	ErrAccountInactive   = errors.New("Sua conta está inativa. Por favor, contate o administrador.")

	ErrCodeMismatch = errors.New("Os códigos informados não coincidem.")
	ErrCodeTooShort = errors.New("O código de acesso deve ter pelo menos 4 caracteres.")
	// ErrAccessCodeSet means a concurrent setup won the race or setup was
	// already completed; the session must be re-established by logging in.
	ErrAccessCodeSet = errors.New("Código de acesso já cadastrado.")

	ErrNotFound  = errors.New("Registro não encontrado.")
	ErrDuplicate = errors.New("Registro duplicado.")

	ErrInvalidDate = errors.New("Data inválida. Use o formato AAAA-MM-DD.")
)

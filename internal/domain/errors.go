package domain

import (
	"errors"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
)

var (
	// Erros de fonte de dados
	ErrSourceUnreachable = errors.New("fonte de dados indisponível")
	ErrSchemaMismatch    = errors.New("esquema da fonte de dados inválido")
	ErrMalformedRecord   = errors.New("registro de venda inválido")

	// Erros de filtro
	ErrInvalidFilter = errors.New("filtro inválido")
	ErrInvalidRange  = errors.New("intervalo inválido")
	ErrNoColumns     = errors.New("nenhuma coluna selecionada")

	// Erros de exportação
	ErrExportFailed = errors.New("falha ao exportar dados")
)

// SourceKind identifica o tipo de fonte de dados
type SourceKind string

const (
	SourceFile     SourceKind = "file"
	SourceDatabase SourceKind = "database"
)

// DataSourceError indica que a fonte de dados não pôde ser lida ou não tem o esquema esperado
type DataSourceError struct {
	Err     error
	Kind    SourceKind
	Source  string // caminho do arquivo ou tabela consultada
	Details string
	Cause   error // erro de infraestrutura original, quando houver
}

func (e *DataSourceError) Error() string {
	msg := fmt.Sprintf("%s (%s %s)", e.Err.Error(), e.Kind, e.Source)
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause.Error())
	}
	return msg
}

// Unwrap expõe tanto o erro de domínio quanto a causa de infraestrutura
func (e *DataSourceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// WithCause anexa o erro de infraestrutura que originou a falha
func (e *DataSourceError) WithCause(cause error) *DataSourceError {
	e.Cause = cause
	return e
}

// Code retorna o código de erro da API
func (e *DataSourceError) Code() string {
	if e.Kind == SourceDatabase {
		return apiErrors.ErrDatabaseOperation
	}
	return apiErrors.ErrDataSourceFile
}

// NewDataSourceError cria um novo DataSourceError
func NewDataSourceError(err error, kind SourceKind, source string, details string) *DataSourceError {
	return &DataSourceError{
		Err:     err,
		Kind:    kind,
		Source:  source,
		Details: details,
	}
}

// FilterError é um erro de validação causado pela entrada do usuário
type FilterError struct {
	Err     error
	Field   string // parâmetro de filtro envolvido
	Details string
}

func (e *FilterError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Err.Error(), e.Field, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Field)
}

func (e *FilterError) Unwrap() error {
	return e.Err
}

// Code retorna o código de erro da API
func (e *FilterError) Code() string {
	if errors.Is(e.Err, ErrNoColumns) {
		return apiErrors.ErrMissingRequiredData
	}
	if errors.Is(e.Err, ErrInvalidRange) {
		return apiErrors.ErrInvalidRequest
	}
	return apiErrors.ErrInvalidFormat
}

// NewFilterError cria um novo FilterError
func NewFilterError(err error, field string, details string) *FilterError {
	return &FilterError{
		Err:     err,
		Field:   field,
		Details: details,
	}
}

// ExportError indica falha ao serializar a tabela filtrada
type ExportError struct {
	Err      error
	Filename string
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s: %s", ErrExportFailed.Error(), e.Filename)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Code retorna o código de erro da API
func (e *ExportError) Code() string {
	return apiErrors.ErrExportOperation
}

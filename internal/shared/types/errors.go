package types

import "errors"

var (
	// ErrInvalidInput é retornado quando um parâmetro de operação está fora do intervalo aceito.
	ErrInvalidInput = errors.New("invalid input")

	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	ErrInvalidReportType       = errors.New("invalid report type")
)

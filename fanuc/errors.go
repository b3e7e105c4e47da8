package fanuc

import "errors"

// Фатальные ошибки конфигурации и неподдерживаемые возможности.
// Любая из них прерывает генерацию в точке обнаружения: частичная
// программа для лазерной резки хуже отсутствующей.
var (
	ErrInvalidProgramName     = errors.New("program name must be a number in range 1..9999")
	ErrUnsupportedTool        = errors.New("only laser cutter tools are supported")
	ErrUnsupportedOrientation = errors.New("work plane orientation is not supported by a 2-axis machine")
	ErrUnsupportedMode        = errors.New("unsupported cutting mode")
	ErrModeCodeMissing        = errors.New("machine mode code is not configured")
	ErrCompensationInArc      = errors.New("radius compensation cannot change during circular motion")
	ErrRapidWithCompensation  = errors.New("rapid motion is not allowed while compensation change is pending")
)

// Пределы выдержки G4. Значения вне диапазона не фатальны:
// они ограничиваются с предупреждением.
const (
	minDwellSeconds = 0.001
	maxDwellSeconds = 99999.999
)

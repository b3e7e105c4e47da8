package emitter

import (
	"math"
	"strconv"
	"strings"
)

// Spec описывает формат одного адреса кадра: префикс, точность и
// правила знака. Преобразование детерминировано и не зависит от локали:
// разделитель — всегда точка, групповых разделителей нет.
type Spec struct {
	Prefix    string
	Decimals  int     // число знаков после точки; 0 — целочисленный адрес
	Width     int     // минимальная ширина целой части, дополняется нулями
	ForceSign bool    // выводить "+" для положительных значений
	Scale     float64 // множитель перед форматированием; 0 означает 1
}

// Round приводит значение к выходной точности адреса. Два значения,
// совпадающие после Round, дают одинаковые токены и считаются равными
// модальным кэшем.
func (s Spec) Round(value float64) float64 {
	if s.Scale != 0 {
		value *= s.Scale
	}
	p := math.Pow(10, float64(s.Decimals))
	r := math.Round(value*p) / p
	if r == 0 {
		return 0 // нормализуем -0
	}
	return r
}

// Format возвращает канонический токен адреса, например Format(3) при
// Decimals=3 и Prefix="X" дает "X3.000".
func (s Spec) Format(value float64) string {
	v := s.Round(value)

	neg := math.Signbit(v)
	body := strconv.FormatFloat(math.Abs(v), 'f', s.Decimals, 64)

	if s.Width > 0 {
		intLen := len(body)
		if dot := strings.IndexByte(body, '.'); dot >= 0 {
			intLen = dot
		}
		if pad := s.Width - intLen; pad > 0 {
			body = strings.Repeat("0", pad) + body
		}
	}

	switch {
	case neg:
		body = "-" + body
	case s.ForceSign && v != 0:
		body = "+" + body
	}
	return s.Prefix + body
}

// FormatInt форматирует целочисленный адрес (номер программы, кадра).
func (s Spec) FormatInt(value int) string {
	return s.Format(float64(value))
}

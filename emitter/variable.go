package emitter

// Variable — один модальный выходной канал (X, Y, F, S, I, J и т.д.).
// Хранит последнее выданное значение и подавляет повторную выдачу
// неизменившегося слова. Пропустить неизменившуюся координату —
// корректно; пропустить изменившуюся — дефект, дающий неверное
// перемещение станка.
type Variable struct {
	spec   Spec
	always bool
	value  float64
	valid  bool
}

// NewVariable создает модальный канал с заданным форматом.
func NewVariable(spec Spec) *Variable {
	return &Variable{spec: spec}
}

// NewAlwaysVariable создает канал, выдающий слово при каждом обращении
// независимо от равенства значений (например, мощность S).
func NewAlwaysVariable(spec Spec) *Variable {
	return &Variable{spec: spec, always: true}
}

// Format возвращает токен адреса, если значение изменилось с момента
// последней выдачи, канал помечен как always либо был сброшен.
// Пустая строка означает подавленное слово.
func (v *Variable) Format(value float64) string {
	r := v.spec.Round(value)
	if v.valid && !v.always && r == v.value {
		return ""
	}
	v.value = r
	v.valid = true
	return v.spec.Format(value)
}

// Reset очищает память канала: следующий Format выдаст слово
// независимо от равенства значений.
func (v *Variable) Reset() {
	v.valid = false
}

// Current возвращает последнее выданное значение канала.
func (v *Variable) Current() (float64, bool) {
	return v.value, v.valid
}

package emitter

import "strconv"

// Modal — группа взаимоисключающих кодов станка (тип движения,
// плоскость, абсолютный/инкрементный режим, режим подачи, единицы).
// Код выдается только при смене активного кода группы либо после
// Reset/Force.
type Modal struct {
	prefix string
	code   int
	valid  bool
	force  bool
}

// NewModal создает модальную группу с заданным адресом ("G", "M").
func NewModal(prefix string) *Modal {
	return &Modal{prefix: prefix}
}

// Format возвращает токен кода, если он отличается от активного в
// группе или группа принудительно помечена. Иначе — пустая строка.
func (m *Modal) Format(code int) string {
	if m.valid && !m.force && m.code == code {
		return ""
	}
	m.code = code
	m.valid = true
	m.force = false
	return m.prefix + strconv.Itoa(code)
}

// Reset очищает память группы: следующий Format выдаст код заново.
// Смена плоскости обязана сбрасывать группу движения — это правило
// диалекта, его соблюдает вызывающий слой.
func (m *Modal) Reset() {
	m.valid = false
}

// Force помечает группу на одну принудительную выдачу.
func (m *Modal) Force() {
	m.force = true
}

// Current возвращает активный код группы.
func (m *Modal) Current() (int, bool) {
	return m.code, m.valid
}

package fanuc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Properties — пользовательские настройки постпроцессора. Структура
// неизменяема после загрузки: никакой подмены значений на лету,
// переконфигурирование — это создание нового контроллера.
type Properties struct {
	SequenceNumbers   bool    `yaml:"sequence_numbers"`   // нумеровать кадры адресом N
	SequenceStart     int     `yaml:"sequence_start"`     // первый номер кадра
	SequenceIncrement int     `yaml:"sequence_increment"` // шаг нумерации
	SeparateWords     bool    `yaml:"separate_words"`     // разделять слова пробелом
	UseFeed           bool    `yaml:"use_feed"`           // выводить слово подачи F
	ThroughCode       int     `yaml:"through_code"`       // M-макрос сквозной резки
	EtchCode          int     `yaml:"etch_code"`          // M-макрос гравировки
	VaporizeCode      int     `yaml:"vaporize_code"`      // M-макрос испарения
	PowerOffCode      int     `yaml:"power_off_code"`     // M-макрос выключения луча
	ChordTolerance    float64 `yaml:"chord_tolerance"`    // допуск хорды при линеаризации дуг
}

// DefaultProperties возвращает настройки по умолчанию. Коды гравировки
// и испарения по умолчанию нулевые: станок обязан задать их явно,
// иначе использование режима — фатальная ошибка конфигурации.
func DefaultProperties() Properties {
	return Properties{
		SequenceNumbers:   false,
		SequenceStart:     10,
		SequenceIncrement: 5,
		SeparateWords:     true,
		UseFeed:           true,
		ThroughCode:       104,
		EtchCode:          0,
		VaporizeCode:      0,
		PowerOffCode:      105,
		ChordTolerance:    0.01,
	}
}

// LoadPreset накладывает YAML-пресет станка поверх настроек по
// умолчанию. Отсутствующие в файле поля сохраняют значения по
// умолчанию.
func LoadPreset(path string) (Properties, error) {
	props := DefaultProperties()

	data, err := os.ReadFile(path)
	if err != nil {
		return props, fmt.Errorf("failed to read preset file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &props); err != nil {
		return props, fmt.Errorf("failed to parse preset file %s: %w", path, err)
	}
	return props, nil
}

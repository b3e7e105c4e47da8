package post

import (
	"os"
	"strconv"

	"github.com/iwtcode/fanucPost/fanuc"
)

// Config хранит модель конфигурации постпроцессора.
type Config struct {
	LogLevel    string
	PresetFile  string // путь к YAML-пресету станка, опционально
	ProgramName string
	Feed        float64
	Power       float64
	Properties  fanuc.Properties
}

// Load загружает конфигурацию из переменных окружения.
func Load() *Config {
	props := fanuc.DefaultProperties()
	props.SequenceNumbers = getEnvAsBool("POST_SEQUENCE_NUMBERS", props.SequenceNumbers)
	props.SequenceStart = getEnvAsInt("POST_SEQUENCE_START", props.SequenceStart)
	props.SequenceIncrement = getEnvAsInt("POST_SEQUENCE_INCREMENT", props.SequenceIncrement)
	props.SeparateWords = getEnvAsBool("POST_SEPARATE_WORDS", props.SeparateWords)
	props.UseFeed = getEnvAsBool("POST_USE_FEED", props.UseFeed)
	props.ThroughCode = getEnvAsInt("POST_THROUGH_CODE", props.ThroughCode)
	props.EtchCode = getEnvAsInt("POST_ETCH_CODE", props.EtchCode)
	props.VaporizeCode = getEnvAsInt("POST_VAPORIZE_CODE", props.VaporizeCode)
	props.PowerOffCode = getEnvAsInt("POST_POWER_OFF_CODE", props.PowerOffCode)
	props.ChordTolerance = getEnvAsFloat("POST_CHORD_TOLERANCE", props.ChordTolerance)

	return &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		PresetFile:  getEnv("POST_PRESET", ""),
		ProgramName: getEnv("POST_PROGRAM_NAME", "1"),
		Feed:        getEnvAsFloat("POST_FEED", 1000),
		Power:       getEnvAsFloat("POST_POWER", 0),
		Properties:  props,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(name string, defaultValue float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	val, _ := strconv.ParseBool(value)
	return val
}

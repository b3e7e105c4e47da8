package post

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iwtcode/fanucPost/fanuc"
	"github.com/iwtcode/fanucPost/models"
)

// Client является основной точкой входа для взаимодействия с библиотекой.
type Client struct {
	config *Config
	props  fanuc.Properties
	logger *logrus.Logger
}

// New создает и возвращает новый экземпляр клиента.
// Свойства постпроцессора разрешаются здесь один раз: окружение,
// затем YAML-пресет станка, если он задан.
func New(cfg *Config) (*Client, error) {
	logger := logrus.New()

	if cfg.LogLevel == "off" || cfg.LogLevel == "none" {
		logger.SetOutput(io.Discard)
	} else {
		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)
		logger.SetOutput(os.Stdout)
	}

	// Настраиваем форматтер с понятным форматом времени
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	props := cfg.Properties
	if cfg.PresetFile != "" {
		loaded, err := fanuc.LoadPreset(cfg.PresetFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load machine preset: %w", err)
		}
		props = loaded
		logger.Infof("machine preset loaded from %s", cfg.PresetFile)
	}

	return &Client{
		config: cfg,
		props:  props,
		logger: logger,
	}, nil
}

// GetLogger возвращает используемый логгер.
func (c *Client) GetLogger() *logrus.Logger {
	return c.logger
}

// Properties возвращает разрешенные свойства постпроцессора.
func (c *Client) Properties() fanuc.Properties {
	return c.props
}

// Process постобрабатывает программу траектории и пишет G-код в w.
// Каждый прогон получает собственный идентификатор для корреляции логов.
func (c *Client) Process(program *models.Program, w io.Writer) error {
	log := c.logger.WithField("run_id", uuid.NewString())
	log.Infof("post-processing program %q (%d sections)", program.Name, len(program.Sections))

	controller := fanuc.NewController(c.props, w, log)
	if err := controller.Process(program); err != nil {
		log.Errorf("post-processing aborted: %v", err)
		return fmt.Errorf("post-processing failed: %w", err)
	}

	log.Info("post-processing finished")
	return nil
}

// ProcessToString постобрабатывает программу и возвращает G-код строкой.
func (c *Client) ProcessToString(program *models.Program) (string, error) {
	var sb strings.Builder
	if err := c.Process(program, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

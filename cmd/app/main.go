package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	post "github.com/iwtcode/fanucPost"
	"github.com/iwtcode/fanucPost/dxf"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: app <input.dxf> [output.nc]")
		os.Exit(1)
	}

	// 1) Загрузка конфигурации
	err := godotenv.Load("./.env")
	if err != nil {
		log.Printf("Warning: Could not load .env file. Using default values or environment variables: %v", err)
	}

	cfg := post.Load()
	client, err := post.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create post-processor client: %v", err)
	}
	logger := client.GetLogger()

	// 2) Чтение траектории из DXF-документа
	input := os.Args[1]
	program, err := dxf.LoadFile(input, dxf.Options{
		Name:  cfg.ProgramName,
		Feed:  cfg.Feed,
		Power: cfg.Power,
	}, logger)
	if err != nil {
		logger.Fatalf("Failed to load DXF file %s: %v", input, err)
	}

	// 3) Генерация G-кода
	output := strings.TrimSuffix(input, filepath.Ext(input)) + ".nc"
	if len(os.Args) > 2 {
		output = os.Args[2]
	}

	f, err := os.Create(output)
	if err != nil {
		logger.Fatalf("Failed to create output file %s: %v", output, err)
	}
	defer f.Close()

	if err := client.Process(program, f); err != nil {
		logger.Fatalf("Post-processing failed: %v", err)
	}

	logger.Infof("G-code written to %s", output)
}

package emitter

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Config задает поведение сборщика кадров.
type Config struct {
	SequenceNumbers   bool // нумеровать кадры адресом N
	SequenceStart     int
	SequenceIncrement int
	SeparateWords     bool // разделять слова кадра пробелом
}

// Emitter собирает токены в кадры и пишет их в выходной поток.
// Состояние (счетчик кадров) принадлежит объекту и сбрасывается только
// явным пересозданием — глобальных синглтонов нет.
type Emitter struct {
	w      *bufio.Writer
	cfg    Config
	seq    int
	blocks int
}

// New создает Emitter поверх выходного потока.
func New(w io.Writer, cfg Config) *Emitter {
	if cfg.SequenceIncrement == 0 {
		cfg.SequenceIncrement = 1
	}
	return &Emitter{
		w:   bufio.NewWriter(w),
		cfg: cfg,
		seq: cfg.SequenceStart,
	}
}

// WriteBlock собирает кадр из непустых слов. Кадр без единого слова не
// пишется вовсе: пустой перечень токенов не должен порождать пустую
// строку или холостой номер кадра. Возвращает признак записи.
func (e *Emitter) WriteBlock(words ...string) bool {
	kept := words[:0:0]
	for _, w := range words {
		if w != "" {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return false
	}

	sep := ""
	if e.cfg.SeparateWords {
		sep = " "
	}

	line := strings.Join(kept, sep)
	if e.cfg.SequenceNumbers {
		line = "N" + strconv.Itoa(e.seq) + sep + line
		e.seq += e.cfg.SequenceIncrement
	}

	e.writeLine(line)
	return true
}

// WriteComment пишет строку-комментарий в скобках; внутренние скобки
// вырезаются, чтобы не разорвать комментарий для стойки.
func (e *Emitter) WriteComment(text string) {
	clean := strings.NewReplacer("(", "", ")", "").Replace(text)
	e.writeLine("(" + clean + ")")
}

// WriteLine пишет строку без нумерации и без модальной обработки
// (заголовок O, маркер конца ленты).
func (e *Emitter) WriteLine(line string) {
	e.writeLine(line)
}

// Blocks возвращает число записанных строк.
func (e *Emitter) Blocks() int {
	return e.blocks
}

// Flush сбрасывает буфер в выходной поток.
func (e *Emitter) Flush() error {
	return e.w.Flush()
}

func (e *Emitter) writeLine(line string) {
	e.w.WriteString(line)
	e.w.WriteByte('\n')
	e.blocks++
}

package emitter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpecFormat(t *testing.T) {
	xSpec := Spec{Prefix: "X", Decimals: 3}
	require.Equal(t, "X3.000", xSpec.Format(3), "Точность должна быть фиксированной")
	require.Equal(t, "X-1.500", xSpec.Format(-1.5))
	require.Equal(t, "X0.000", xSpec.Format(-0.0000001), "Минус-ноль должен нормализоваться")

	oSpec := Spec{Prefix: "O", Width: 4}
	require.Equal(t, "O0012", oSpec.FormatInt(12), "Номер программы дополняется нулями")
	require.Equal(t, "O9999", oSpec.FormatInt(9999))

	mSpec := Spec{Prefix: "M", Width: 2}
	require.Equal(t, "M00", mSpec.FormatInt(0))
	require.Equal(t, "M104", mSpec.FormatInt(104))

	signSpec := Spec{Prefix: "U", Decimals: 1, ForceSign: true}
	require.Equal(t, "U+2.0", signSpec.Format(2))
	require.Equal(t, "U-2.0", signSpec.Format(-2))
	require.Equal(t, "U0.0", signSpec.Format(0), "Ноль выводится без знака")
	require.Equal(t, "U0.0", signSpec.Format(-0.001), "Округленный до нуля — тоже без знака")

	scaled := Spec{Prefix: "F", Decimals: 0, Scale: 60}
	require.Equal(t, "F120", scaled.Format(2))
}

func TestVariableSuppressesUnchangedValue(t *testing.T) {
	v := NewVariable(Spec{Prefix: "X", Decimals: 3})

	require.Equal(t, "X1.000", v.Format(1))
	require.Equal(t, "", v.Format(1), "Повтор того же значения не должен выдавать слово")
	require.Equal(t, "", v.Format(1.0000001), "Значения, равные после округления, совпадают")
	require.Equal(t, "X2.000", v.Format(2))
}

func TestVariableResetForcesEmission(t *testing.T) {
	v := NewVariable(Spec{Prefix: "Y", Decimals: 3})

	require.Equal(t, "Y5.000", v.Format(5))
	v.Reset()
	require.Equal(t, "Y5.000", v.Format(5), "После Reset равенство значений не подавляет слово")
}

func TestAlwaysVariable(t *testing.T) {
	v := NewAlwaysVariable(Spec{Prefix: "S", Decimals: 0})

	require.Equal(t, "S800", v.Format(800))
	require.Equal(t, "S800", v.Format(800), "Канал always выдает слово при каждом обращении")
}

func TestModalGroup(t *testing.T) {
	m := NewModal("G")

	require.Equal(t, "G0", m.Format(0))
	require.Equal(t, "", m.Format(0), "Активный код группы не повторяется")
	require.Equal(t, "G1", m.Format(1))

	m.Reset()
	require.Equal(t, "G1", m.Format(1), "После Reset код выдается заново")

	m.Force()
	require.Equal(t, "G1", m.Format(1), "Force дает одну принудительную выдачу")
	require.Equal(t, "", m.Format(1))
}

func TestWriteBlockSkipsEmptyWords(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf, Config{SeparateWords: true})

	require.True(t, e.WriteBlock("G1", "", "X1.000", ""))
	require.False(t, e.WriteBlock("", "", ""), "Кадр без слов не должен записываться")
	require.NoError(t, e.Flush())

	require.Equal(t, "G1 X1.000\n", buf.String())
}

func TestSequenceNumbers(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf, Config{
		SequenceNumbers:   true,
		SequenceStart:     10,
		SequenceIncrement: 5,
		SeparateWords:     true,
	})

	e.WriteBlock("G21")
	e.WriteBlock("", "") // не записывается и не потребляет номер
	e.WriteBlock("G90")
	e.WriteBlock("M30")
	require.NoError(t, e.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{"N10 G21", "N15 G90", "N20 M30"}, lines,
		"Номера кадров должны образовывать арифметическую прогрессию")
}

func TestSeparateWordsDisabled(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf, Config{SequenceNumbers: true, SequenceStart: 1, SequenceIncrement: 1})

	e.WriteBlock("G90", "G21")
	require.NoError(t, e.Flush())

	require.Equal(t, "N1G90G21\n", buf.String())
}

func TestWriteCommentStripsInnerParens(t *testing.T) {
	var buf bytes.Buffer
	e := New(&buf, Config{})

	e.WriteComment("SHEET (REV 2)")
	require.NoError(t, e.Flush())

	require.Equal(t, "(SHEET REV 2)\n", buf.String())
}

package fanuc

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/iwtcode/fanucPost/emitter"
	"github.com/iwtcode/fanucPost/models"
)

// Controller обходит программу траектории и генерирует G-код диалекта
// Fanuc для 2-осевого лазерного станка. Все модальное состояние
// принадлежит контроллеру; один контроллер обслуживает ровно один
// прогон постобработки.
type Controller struct {
	props Properties
	log   logrus.FieldLogger
	out   *emitter.Emitter

	xOut, yOut, zOut *emitter.Variable
	fOut             *emitter.Variable
	sOut             *emitter.Variable
	iOut, jOut       *emitter.Variable

	gMotion *emitter.Modal // группа 01: G0/G1/G2/G3
	gPlane  *emitter.Modal // группа 02: G17/G18/G19
	gAbsInc *emitter.Modal // группа 03: G90/G91
	gFeed   *emitter.Modal // группа 05: G93/G94
	gUnit   *emitter.Modal // группа 06: G20/G21

	oSpec     emitter.Spec
	mSpec     emitter.Spec
	dwellSpec emitter.Spec

	pos            models.Point
	section        *models.Section
	modeCode       int
	lastWorkOffset int

	pendingComp    models.CompSide
	hasPendingComp bool
	activeComp     models.CompSide
}

// NewController создает контроллер поверх выходного потока.
func NewController(props Properties, w io.Writer, log logrus.FieldLogger) *Controller {
	return &Controller{
		props: props,
		log:   log,
		out: emitter.New(w, emitter.Config{
			SequenceNumbers:   props.SequenceNumbers,
			SequenceStart:     props.SequenceStart,
			SequenceIncrement: props.SequenceIncrement,
			SeparateWords:     props.SeparateWords,
		}),
		oSpec:          emitter.Spec{Prefix: "O", Width: 4},
		mSpec:          emitter.Spec{Prefix: "M", Width: 2},
		dwellSpec:      emitter.Spec{Prefix: "P", Decimals: 3},
		lastWorkOffset: -1,
		activeComp:     models.CompOff,
	}
}

// Process генерирует полную программу: заголовок, секции, завершение.
// Любая фатальная ошибка прерывает генерацию в точке обнаружения.
func (c *Controller) Process(p *models.Program) error {
	if err := c.onOpen(p); err != nil {
		return err
	}
	for i := range p.Sections {
		if err := c.onSection(&p.Sections[i]); err != nil {
			return err
		}
		for _, m := range p.Sections[i].Moves {
			if err := c.onMove(m); err != nil {
				return err
			}
		}
		if err := c.onSectionEnd(); err != nil {
			return err
		}
	}
	c.onClose()
	return c.out.Flush()
}

// initFormats создает выходные каналы с точностью под единицы
// измерения программы.
func (c *Controller) initFormats(unit models.Unit) {
	xyzDecimals := 3
	feedDecimals := 0
	if unit == models.UnitInch {
		xyzDecimals = 4
		feedDecimals = 1
	}

	c.xOut = emitter.NewVariable(emitter.Spec{Prefix: "X", Decimals: xyzDecimals})
	c.yOut = emitter.NewVariable(emitter.Spec{Prefix: "Y", Decimals: xyzDecimals})
	c.zOut = emitter.NewVariable(emitter.Spec{Prefix: "Z", Decimals: xyzDecimals})
	c.fOut = emitter.NewVariable(emitter.Spec{Prefix: "F", Decimals: feedDecimals})
	// Мощность выводится при каждом включении луча независимо от значения.
	c.sOut = emitter.NewAlwaysVariable(emitter.Spec{Prefix: "S", Decimals: 0})
	// Центры дуг не модальны: I/J пишутся в каждом круговом кадре.
	c.iOut = emitter.NewAlwaysVariable(emitter.Spec{Prefix: "I", Decimals: xyzDecimals})
	c.jOut = emitter.NewAlwaysVariable(emitter.Spec{Prefix: "J", Decimals: xyzDecimals})

	c.gMotion = emitter.NewModal("G")
	c.gPlane = emitter.NewModal("G")
	c.gAbsInc = emitter.NewModal("G")
	c.gFeed = emitter.NewModal("G")
	c.gUnit = emitter.NewModal("G")
}

// setPlane меняет плоскость интерполяции. Смена плоскости сбрасывает
// группу движения: прежний круговой код в новой плоскости недействителен.
func (c *Controller) setPlane(code int) string {
	word := c.gPlane.Format(code)
	if word != "" {
		c.gMotion.Reset()
	}
	return word
}

func (c *Controller) onOpen(p *models.Program) error {
	number, err := strconv.Atoi(strings.TrimSpace(p.Name))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidProgramName, p.Name)
	}
	if number < 1 || number > 9999 {
		return fmt.Errorf("%w: got %d", ErrInvalidProgramName, number)
	}
	if number >= 8000 {
		c.log.Warnf("program number %d is in the machine-reserved range 8000..9999", number)
	}

	c.initFormats(p.Unit)

	c.out.WriteLine(c.oSpec.FormatInt(number))
	if p.Comment != "" {
		c.out.WriteComment(strings.ToUpper(p.Comment))
	}

	unitCode := 21
	if p.Unit == models.UnitInch {
		unitCode = 20
	}
	c.out.WriteBlock(c.gUnit.Format(unitCode))
	c.out.WriteBlock(c.gAbsInc.Format(90), c.gFeed.Format(94), c.setPlane(17))
	return nil
}

func (c *Controller) onSection(s *models.Section) error {
	if s.Tool.Type != models.ToolLaserCutter {
		return fmt.Errorf("%w: got %q", ErrUnsupportedTool, s.Tool.Type)
	}
	if !s.WorkPlane.IsIdentity() {
		return ErrUnsupportedOrientation
	}

	code, err := c.resolveModeCode(s.JetMode)
	if err != nil {
		return err
	}
	c.section = s
	c.modeCode = code

	if s.Tool.Comment != "" {
		c.out.WriteComment(strings.ToUpper(s.Tool.Comment))
	}

	if s.WorkOffset != c.lastWorkOffset {
		words := append([]string{c.gAbsInc.Format(90)}, workOffsetWords(s.WorkOffset)...)
		c.out.WriteBlock(words...)
		c.lastWorkOffset = s.WorkOffset
	}

	// Начало секции всегда восстанавливает позиционные слова целиком.
	c.xOut.Reset()
	c.yOut.Reset()
	c.zOut.Reset()
	c.fOut.Reset()

	return c.onRapid(models.Rapid{To: s.InitialPosition})
}

// resolveModeCode выбирает M-макрос для режима резки секции.
// Нулевой код для гравировки или испарения — ошибка конфигурации:
// постпроцессор не вправе выдумывать код за станок.
func (c *Controller) resolveModeCode(mode models.JetMode) (int, error) {
	var code int
	switch mode {
	case models.JetThrough:
		code = c.props.ThroughCode
	case models.JetEtch:
		code = c.props.EtchCode
	case models.JetVaporize:
		code = c.props.VaporizeCode
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
	if code == 0 {
		return 0, fmt.Errorf("%w: cutting mode %q", ErrModeCodeMissing, mode)
	}
	return code, nil
}

// workOffsetWords переводит номер рабочего смещения в слова кадра:
// 0 и 1..6 — G54..G59, выше — расширенные смещения G54.1 Pn.
func workOffsetWords(offset int) []string {
	if offset <= 0 {
		return []string{"G54"}
	}
	if offset <= 6 {
		return []string{"G" + strconv.Itoa(53+offset)}
	}
	return []string{"G54.1", "P" + strconv.Itoa(offset-6)}
}

func (c *Controller) onMove(m models.Move) error {
	switch mv := m.(type) {
	case models.Rapid:
		return c.onRapid(mv)
	case models.Linear:
		return c.onLinear(mv)
	case models.Arc:
		return c.onCircular(mv)
	case models.Dwell:
		c.onDwell(mv)
		return nil
	case models.Compensation:
		c.pendingComp = mv.Side
		c.hasPendingComp = true
		return nil
	case models.Command:
		return c.onCommand(mv.Kind)
	}
	return fmt.Errorf("unknown move type %T", m)
}

func (c *Controller) onRapid(m models.Rapid) error {
	if c.hasPendingComp {
		return ErrRapidWithCompensation
	}

	x := c.xOut.Format(m.To.X)
	y := c.yOut.Format(m.To.Y)
	z := c.zOut.Format(m.To.Z)
	if c.out.WriteBlock(c.gMotion.Format(0), x, y, z) {
		// Холостой ход обрывает рабочую подачу: следующий рез
		// обязан заново объявить F.
		c.fOut.Reset()
	}
	c.pos = m.To
	return nil
}

func (c *Controller) onLinear(m models.Linear) error {
	comp := ""
	if c.hasPendingComp {
		comp = c.takeCompensation()
	}

	x := c.xOut.Format(m.To.X)
	y := c.yOut.Format(m.To.Y)
	z := c.zOut.Format(m.To.Z)
	f := ""
	if c.props.UseFeed {
		f = c.fOut.Format(m.Feed)
	}

	if comp == "" && x == "" && y == "" && z == "" {
		if f != "" {
			// Кадр только с подачей не является перемещением.
			// Откладываем слово F до следующего движения.
			c.fOut.Reset()
			c.log.Debugf("deferring feed word %s to the next motion block", f)
		}
		c.pos = m.To
		return nil
	}

	c.out.WriteBlock(c.gMotion.Format(1), comp, x, y, z, f)
	c.pos = m.To
	return nil
}

// takeCompensation потребляет отложенный запрос коррекции радиуса.
// Активация коррекции сдвигает эквидистанту, поэтому позиционные
// слова восстанавливаются принудительно.
func (c *Controller) takeCompensation() string {
	side := c.pendingComp
	c.hasPendingComp = false
	if side == c.activeComp {
		return ""
	}
	c.activeComp = side

	c.xOut.Reset()
	c.yOut.Reset()
	switch side {
	case models.CompLeft:
		return "G41"
	case models.CompRight:
		return "G42"
	default:
		return "G40"
	}
}

func (c *Controller) onCircular(m models.Arc) error {
	if c.hasPendingComp {
		return ErrCompensationInArc
	}

	start := c.pos
	full := isFullCircle(start, m)
	helical := isHelical(start, m)

	// Стойка выражает круговую интерполяцию только в плоскости XY без
	// движения по Z. Остальное режется короткими отрезками.
	if m.Plane != models.PlaneXY || helical {
		return c.linearize(start, m)
	}

	motion := 3
	if m.Clockwise {
		motion = 2
	}

	i := c.iOut.Format(m.Center.X - start.X)
	j := c.jOut.Format(m.Center.Y - start.Y)
	f := ""
	if c.props.UseFeed {
		f = c.fOut.Format(m.Feed)
	}

	if full {
		c.out.WriteBlock(c.gMotion.Format(motion), i, j, f)
	} else {
		x := c.xOut.Format(m.End.X)
		y := c.yOut.Format(m.End.Y)
		z := c.zOut.Format(m.End.Z)
		c.out.WriteBlock(c.gMotion.Format(motion), x, y, z, i, j, f)
	}
	c.pos = m.End
	return nil
}

// linearize заменяет дугу последовательностью линейных кадров.
func (c *Controller) linearize(start models.Point, m models.Arc) error {
	points := linearizeArc(start, m, c.props.ChordTolerance)
	c.log.Debugf("linearizing arc in plane %s into %d segments", m.Plane, len(points))
	for _, p := range points {
		if err := c.onLinear(models.Linear{To: p, Feed: m.Feed}); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) onDwell(m models.Dwell) {
	seconds := m.Seconds
	if seconds < minDwellSeconds || seconds > maxDwellSeconds {
		c.log.Warnf("dwell time %g is out of range, clamping to [%g, %g]",
			seconds, minDwellSeconds, maxDwellSeconds)
		if seconds < minDwellSeconds {
			seconds = minDwellSeconds
		} else {
			seconds = maxDwellSeconds
		}
	}
	c.out.WriteBlock("G4", c.dwellSpec.Format(seconds))
}

func (c *Controller) onCommand(kind models.CommandKind) error {
	switch kind {
	case models.CommandPowerOn:
		s := ""
		if c.section != nil && c.section.Power > 0 {
			s = c.sOut.Format(c.section.Power)
		}
		c.out.WriteBlock(c.mSpec.FormatInt(c.modeCode), s)
	case models.CommandPowerOff:
		c.out.WriteBlock(c.mSpec.FormatInt(c.props.PowerOffCode))
	case models.CommandStop:
		c.out.WriteBlock(c.mSpec.FormatInt(0))
	case models.CommandOptionalStop:
		c.out.WriteBlock(c.mSpec.FormatInt(1))
	case models.CommandEnd:
		c.out.WriteBlock(c.mSpec.FormatInt(30))
	case models.CommandLockAxis, models.CommandUnlockAxis, models.CommandToolMeasure:
		// Не выразимо на 2-осевом лазере; команда пропускается.
		c.log.Debugf("skipping command %s: not applicable to a 2-axis laser", kind)
	default:
		return fmt.Errorf("unknown command kind %d", kind)
	}
	return nil
}

func (c *Controller) onSectionEnd() error {
	if c.hasPendingComp {
		c.hasPendingComp = false
		c.log.Warnf("compensation change was never consumed by a linear move")
	}
	if c.activeComp != models.CompOff {
		c.activeComp = models.CompOff
		c.xOut.Reset()
		c.yOut.Reset()
		c.out.WriteBlock("G40")
	}
	c.section = nil
	return nil
}

func (c *Controller) onClose() {
	c.out.WriteComment("END OF SHEET")
	c.out.WriteBlock(c.mSpec.FormatInt(30))
	c.out.WriteLine("%")
}

package models

// Unit задает единицы измерения программы.
type Unit string

const (
	UnitMM   Unit = "mm"
	UnitInch Unit = "inch"
)

// ToolType описывает тип инструмента, заявленный CAM-системой.
type ToolType string

const (
	ToolLaserCutter ToolType = "laser_cutter"
	ToolWaterJet    ToolType = "water_jet"
	ToolPlasmaCut   ToolType = "plasma_cutter"
	ToolMilling     ToolType = "milling"
)

// JetMode задает режим резки для текущей секции.
type JetMode string

const (
	JetThrough  JetMode = "through"
	JetEtch     JetMode = "etch"
	JetVaporize JetMode = "vaporize"
)

// Plane задает плоскость круговой интерполяции.
type Plane string

const (
	PlaneXY Plane = "xy"
	PlaneZX Plane = "zx"
	PlaneYZ Plane = "yz"
)

// CompSide задает сторону коррекции на радиус инструмента.
type CompSide string

const (
	CompOff   CompSide = "off"
	CompLeft  CompSide = "left"
	CompRight CompSide = "right"
)

// CommandKind — закрытое перечисление команд, поступающих от CAM-ядра.
type CommandKind int

const (
	CommandPowerOn CommandKind = iota
	CommandPowerOff
	CommandStop
	CommandOptionalStop
	CommandEnd
	CommandLockAxis
	CommandUnlockAxis
	CommandToolMeasure
)

// String возвращает человекочитаемое имя команды для логов и ошибок.
func (k CommandKind) String() string {
	switch k {
	case CommandPowerOn:
		return "power-on"
	case CommandPowerOff:
		return "power-off"
	case CommandStop:
		return "stop"
	case CommandOptionalStop:
		return "optional-stop"
	case CommandEnd:
		return "end"
	case CommandLockAxis:
		return "lock-axis"
	case CommandUnlockAxis:
		return "unlock-axis"
	case CommandToolMeasure:
		return "tool-measure"
	}
	return "unknown"
}

// Point — точка траектории в координатах станка.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// WorkPlane — матрица ориентации рабочей плоскости секции (строки — оси).
type WorkPlane [3][3]float64

// IdentityWorkPlane возвращает единичную ориентацию (плоский 2D-раскрой).
func IdentityWorkPlane() WorkPlane {
	return WorkPlane{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// IsIdentity сообщает, совпадает ли ориентация с единичной в пределах допуска.
func (w WorkPlane) IsIdentity() bool {
	const eps = 1e-9
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			d := w[i][j] - want
			if d > eps || d < -eps {
				return false
			}
		}
	}
	return true
}

// Tool описывает инструмент секции.
type Tool struct {
	Type     ToolType `json:"type"`
	Diameter float64  `json:"diameter"`
	Comment  string   `json:"comment"`
}

// Move — один элемент траектории. Набор реализаций закрыт:
// Rapid, Linear, Arc, Dwell, Compensation и Command.
type Move interface {
	isMove()
}

// Rapid — холостое перемещение.
type Rapid struct {
	To Point `json:"to"`
}

// Linear — рабочее линейное перемещение с заданной подачей.
type Linear struct {
	To   Point   `json:"to"`
	Feed float64 `json:"feed"`
}

// Arc — дуга от текущей позиции до End вокруг центра Center.
// Полная окружность кодируется совпадением конца с текущей позицией.
type Arc struct {
	End       Point   `json:"end"`
	Center    Point   `json:"center"`
	Clockwise bool    `json:"clockwise"`
	Plane     Plane   `json:"plane"`
	Feed      float64 `json:"feed"`
}

// Dwell — выдержка в секундах.
type Dwell struct {
	Seconds float64 `json:"seconds"`
}

// Compensation — запрос смены коррекции на радиус; применяется
// на следующем линейном перемещении.
type Compensation struct {
	Side CompSide `json:"side"`
}

// Command — машинная команда без геометрии.
type Command struct {
	Kind CommandKind `json:"kind"`
}

func (Rapid) isMove()        {}
func (Linear) isMove()       {}
func (Arc) isMove()          {}
func (Dwell) isMove()        {}
func (Compensation) isMove() {}
func (Command) isMove()      {}

// Section — непрерывный участок обработки одним инструментом и режимом.
type Section struct {
	Tool            Tool      `json:"tool"`
	JetMode         JetMode   `json:"jet_mode"`
	WorkOffset      int       `json:"work_offset"`
	Power           float64   `json:"power"`
	InitialPosition Point     `json:"initial_position"`
	WorkPlane       WorkPlane `json:"work_plane"`
	Moves           []Move    `json:"-"`
}

// Program — полная программа обработки, подготовленная CAM-ядром.
type Program struct {
	Name     string    `json:"name"`
	Comment  string    `json:"comment"`
	Unit     Unit      `json:"unit"`
	Sections []Section `json:"sections"`
}

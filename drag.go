package ballistics

import "fmt"

// Named drag-table identifiers. GS replaces the source's informal "GL"
// label to match the published family name used by reloading software.
const (
	DragTableG1 byte = iota + 1
	DragTableG2
	DragTableG5
	DragTableG6
	DragTableG7
	DragTableG8
	DragTableGI
	DragTableGS
)

// BallisticCoefficient couples a projectile's ballistic-coefficient
// value to one of the built-in drag-table curves (or a custom curve
// supplied via NewBallisticCoefficientWithCurve).
type BallisticCoefficient struct {
	value float64
	table byte
	curve *DragCurve
}

// NewBallisticCoefficient builds a BallisticCoefficient against one of
// the built-in drag tables (DragTableG1 .. DragTableGS).
func NewBallisticCoefficient(value float64, table byte) (BallisticCoefficient, error) {
	curve, err := builtinDragCurve(table)
	if err != nil {
		return BallisticCoefficient{}, err
	}
	return NewBallisticCoefficientWithCurve(value, table, curve)
}

// NewBallisticCoefficientWithCurve builds a BallisticCoefficient
// against a caller-supplied drag curve, so that custom drag tables
// (§6, "Custom tables are accepted as the same abstract sequence")
// work identically to the built-ins. table is recorded only for
// display/lookup purposes; pass 0 for a fully custom curve.
func NewBallisticCoefficientWithCurve(value float64, table byte, curve *DragCurve) (BallisticCoefficient, error) {
	if value <= 0 {
		return BallisticCoefficient{}, &SolverInputError{Field: "BallisticCoefficient", Message: "must be greater than zero"}
	}
	if curve == nil {
		return BallisticCoefficient{}, &SolverInputError{Field: "BallisticCoefficient", Message: "drag curve is required"}
	}
	return BallisticCoefficient{value: value, table: table, curve: curve}, nil
}

func (v BallisticCoefficient) Value() float64 { return v.value }
func (v BallisticCoefficient) Table() byte    { return v.table }
func (v BallisticCoefficient) Curve() *DragCurve {
	return v.curve
}

func builtinDragCurve(table byte) (*DragCurve, error) {
	switch table {
	case DragTableG1:
		return g1Curve, nil
	case DragTableG2:
		return g2Curve, nil
	case DragTableG5:
		return g5Curve, nil
	case DragTableG6:
		return g6Curve, nil
	case DragTableG7:
		return g7Curve, nil
	case DragTableG8:
		return g8Curve, nil
	case DragTableGI:
		return giCurve, nil
	case DragTableGS:
		return gsCurve, nil
	default:
		return nil, fmt.Errorf("drag: unknown built-in table %d", table)
	}
}

// standardGrid is the Mach sampling grid onto which the formula-only
// built-in tables (G2, G5, G6, G8, GI, GS) are sampled: coarse away
// from transonic, fine through it. G1 and G7 use their own tabulated
// points instead.
var standardGrid = []float64{
	0.00, 0.05, 0.10, 0.15, 0.20, 0.25, 0.30, 0.35, 0.40, 0.45, 0.50, 0.55,
	0.60, 0.65, 0.70, 0.725, 0.75, 0.775, 0.80, 0.825, 0.85, 0.875, 0.90,
	0.925, 0.95, 0.975, 1.0, 1.025, 1.05, 1.075, 1.10, 1.125, 1.15, 1.20,
	1.25, 1.30, 1.35, 1.40, 1.45, 1.50, 1.60, 1.65, 1.70, 1.80, 1.90, 2.00,
	2.20, 2.40, 2.60, 2.80, 3.00, 3.50, 4.00, 4.50, 5.00,
}

func sampleFormula(f func(mach float64) float64) []DragPoint {
	points := make([]DragPoint, len(standardGrid))
	for i, m := range standardGrid {
		points[i] = DragPoint{Mach: m, Cd: f(m)}
	}
	return points
}

func mustCurve(points []DragPoint) *DragCurve {
	c, err := NewDragCurve(points)
	if err != nil {
		panic(err)
	}
	return c
}

// g2Formula .. gsFormula are the closed-form segmented-quadratic
// Cd(mach) fits. They are not used directly by BallisticCoefficient:
// DragCurve requires the abstract ordered-pair form, so each is
// sampled once (sampleFormula) at package init to build the
// corresponding *DragCurve.

func g2Formula(mach float64) float64 {
	switch {
	case mach > 2.5:
		return 0.4465610 + mach*(-0.0958548+mach*0.00799645)
	case mach > 1.2:
		return 0.7016110 + mach*(-0.3075100+mach*0.05192560)
	case mach > 1.0:
		return -1.105010 + mach*(2.77195000-mach*1.26667000)
	case mach > 0.9:
		return -2.240370 + mach*2.63867000
	case mach >= 0.7:
		return 0.9099690 + mach*(-1.9017100+mach*1.21524000)
	default:
		return 0.2302760 + mach*(0.000210564-mach*0.1275050)
	}
}

func g5Formula(mach float64) float64 {
	switch {
	case mach > 2.0:
		return 0.671388 + mach*(-0.185208+mach*0.0204508)
	case mach > 1.1:
		return 0.134374 + mach*(0.4378330-mach*0.1570190)
	case mach > 0.9:
		return -0.924258 + mach*1.24904
	case mach >= 0.6:
		return 0.654405 + mach*(-1.4275000+mach*0.998463)
	default:
		return 0.186386 + mach*(-0.0342136-mach*0.035691)
	}
}

func g6Formula(mach float64) float64 {
	switch {
	case mach > 2.0:
		return 0.746228 + mach*(-0.255926+mach*0.0291726)
	case mach > 1.1:
		return 0.513638 + mach*(-0.015269-mach*0.0331221)
	case mach > 0.9:
		return -0.908802 + mach*1.25814
	case mach >= 0.6:
		return 0.366723 + mach*(-0.458435+mach*0.337906)
	default:
		return 0.264481 + mach*(-0.157237+mach*0.117441)
	}
}

func g8Formula(mach float64) float64 {
	switch {
	case mach > 1.1:
		return 0.639096 + mach*(-0.197471+mach*0.0216221)
	case mach >= 0.925:
		return -12.9053 + mach*(24.9181-mach*11.6191)
	default:
		return 0.210589 + mach*(-0.00184895+mach*0.00211107)
	}
}

func giFormula(mach float64) float64 {
	switch {
	case mach > 1.65:
		return 0.845362 + mach*(-0.143989+mach*0.0113272)
	case mach > 1.2:
		return 0.630556 + mach*0.00701308
	case mach >= 0.7:
		return 0.531976 + mach*(-1.28079+mach*1.17628)
	default:
		return 0.2282
	}
}

func gsFormula(mach float64) float64 {
	switch {
	case mach > 1.0:
		return 0.286629 + mach*(0.3588930-mach*0.0610598)
	case mach >= 0.8:
		return 1.59969 + mach*(-3.9465500+mach*2.831370)
	default:
		return 0.333118 + mach*(-0.498448+mach*0.474774)
	}
}

var (
	g1Curve = mustCurve(g1Table)
	g2Curve = mustCurve(sampleFormula(g2Formula))
	g5Curve = mustCurve(sampleFormula(g5Formula))
	g6Curve = mustCurve(sampleFormula(g6Formula))
	g7Curve = mustCurve(g7Table)
	g8Curve = mustCurve(sampleFormula(g8Formula))
	giCurve = mustCurve(sampleFormula(giFormula))
	gsCurve = mustCurve(sampleFormula(gsFormula))
)

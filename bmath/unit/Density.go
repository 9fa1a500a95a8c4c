package unit

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

//DensityKgM3 is the value indicating that density value is expressed in kilograms per cubic meter
const DensityKgM3 byte = 80

//DensityLbFt3 is the value indicating that density value is expressed in pounds per cubic foot
const DensityLbFt3 byte = 81

//DensityGCm3 is the value indicating that density value is expressed in grams per cubic centimeter
const DensityGCm3 byte = 82

func densityToDefault(value float64, units byte) (float64, error) {
	switch units {
	case DensityKgM3:
		return value, nil
	case DensityLbFt3:
		return value * 16.01846337396, nil
	case DensityGCm3:
		return value * 1000, nil
	default:
		return 0, fmt.Errorf("density: unit %d is not supported", units)
	}
}

func densityFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case DensityKgM3:
		return value, nil
	case DensityLbFt3:
		return value / 16.01846337396, nil
	case DensityGCm3:
		return value / 1000, nil
	default:
		return 0, fmt.Errorf("density: unit %d is not supported", units)
	}
}

//Density structure keeps a mass-density value. The canonical (internal)
//magnitude is kg/m^3.
type Density struct {
	value        float64
	defaultUnits byte
}

//CreateDensity creates a density value.
//
//units are measurement unit and may be any value from
//unit.Density* constants.
func CreateDensity(value float64, units byte) (Density, error) {
	v, err := densityToDefault(value, units)
	if err != nil {
		return Density{}, err
	}
	return Density{value: v, defaultUnits: units}, nil
}

//MustCreateDensity creates the density value but panics instead of returning a error
func MustCreateDensity(value float64, units byte) Density {
	v, err := CreateDensity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the density in the specified units.
func (v Density) Value(units byte) (float64, error) {
	return densityFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Density) Convert(units byte) Density {
	return Density{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Density) In(units byte) float64 {
	x, e := densityFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Equal reports whether two densities are the same quantity within a
//1e-6 relative tolerance on their canonical (kg/m^3) magnitude.
func (v Density) Equal(other Density) bool {
	return floats.EqualWithinRel(v.value, other.value, 1e-6)
}

func (v Density) String() string {
	x, e := densityFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case DensityKgM3:
		unitName = "kg/m³"
		accuracy = 4
	case DensityLbFt3:
		unitName = "lb/ft³"
		accuracy = 5
	case DensityGCm3:
		unitName = "g/cm³"
		accuracy = 6
	default:
		unitName = "?"
		accuracy = 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}

//Units return the units in which the value is measured
func (v Density) Units() byte {
	return v.defaultUnits
}

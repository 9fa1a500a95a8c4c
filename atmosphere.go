package ballistics

import (
	"math"

	"github.com/gballistics/engine/bmath/unit"
)

const (
	icaoLapseRate      = 0.0065    // K/m
	icaoGravity        = 9.80665   // m/s^2
	icaoMolarMassAir   = 0.0289644 // kg/mol
	icaoGasConstant    = 8.31432   // J/(mol*K)
	icaoGamma          = 1.4       // heat capacity ratio of air
	molarMassWater     = 0.018016  // kg/mol
	icaoSeaLevelTempK  = 288.15
	icaoSeaLevelPresPa = 101325.0
)

// Atmosphere holds the conditions measured at a reference altitude and
// exposes density and speed-of-sound as pure functions of a local
// altitude offset from that reference, per the ICAO barometric model.
// It is created once per shot and never mutated during integration.
type Atmosphere struct {
	altitude          unit.Distance
	pressure          unit.Pressure
	temperature       unit.Temperature
	humidity          float64 // fraction in [0,1]
	powderSensitivity float64 // %/15.56degC (0 disables powder-temperature coupling)

	refDensity      float64 // kg/m^3, at the reference altitude
	refSpeedOfSound float64 // m/s, at the reference altitude
}

// NewAtmosphere builds an atmosphere from explicit conditions.
// humidity may be given as a 0..1 fraction or a 0..100 percentage.
func NewAtmosphere(altitude unit.Distance, pressure unit.Pressure, temperature unit.Temperature, humidity float64) (Atmosphere, error) {
	if temperature.In(unit.TemperatureKelvin) <= 0 {
		return Atmosphere{}, &DimensionError{Op: "NewAtmosphere", Message: "temperature must be greater than 0 K"}
	}
	if pressure.In(unit.PressurePascal) <= 0 {
		return Atmosphere{}, &DimensionError{Op: "NewAtmosphere", Message: "pressure must be greater than 0 Pa"}
	}
	if humidity > 1 {
		humidity = humidity / 100
	}
	if humidity < 0 {
		humidity = 0
	}
	if humidity > 1 {
		humidity = 1
	}

	a := Atmosphere{
		altitude:    altitude,
		pressure:    pressure,
		temperature: temperature,
		humidity:    humidity,
	}
	a.refDensity = a.densityAtAbsolute(a.temperature.In(unit.TemperatureKelvin), a.pressure.In(unit.PressurePascal), a.humidity)
	a.refSpeedOfSound = speedOfSound(a.temperature.In(unit.TemperatureKelvin))
	return a, nil
}

// WithPowderSensitivity attaches a powder-temperature sensitivity
// coefficient (percent muzzle-velocity change per 15.56 degC of powder
// temperature deviation from a 15.56 degC baseline); 0
// disables the coupling. It is consumed by Shot/Ammunition when
// computing the effective muzzle velocity for a given atmosphere.
func (a Atmosphere) WithPowderSensitivity(percentPerDegC float64) Atmosphere {
	a.powderSensitivity = percentPerDegC
	return a
}

// DefaultAtmosphere returns the ICAO standard atmosphere at sea level
// with a nominal 78% relative humidity, matching the source's
// practical default for field calculations.
func DefaultAtmosphere() Atmosphere {
	a, err := NewAtmosphere(
		unit.MustCreateDistance(0, unit.DistanceFoot),
		unit.MustCreatePressure(icaoSeaLevelPresPa, unit.PressurePascal),
		unit.MustCreateTemperature(icaoSeaLevelTempK, unit.TemperatureKelvin),
		0.78,
	)
	if err != nil {
		panic(err)
	}
	return a
}

// ICAOAtmosphere returns the dry ICAO standard atmosphere lapsed to
// the given altitude above sea level.
func ICAOAtmosphere(altitude unit.Distance) Atmosphere {
	h := altitude.In(unit.DistanceMeter)
	t := icaoSeaLevelTempK - icaoLapseRate*h
	p := icaoSeaLevelPresPa * math.Pow(icaoSeaLevelTempK/t, -(icaoGravity*icaoMolarMassAir)/(icaoGasConstant*icaoLapseRate))
	a, err := NewAtmosphere(
		altitude,
		unit.MustCreatePressure(p, unit.PressurePascal),
		unit.MustCreateTemperature(t, unit.TemperatureKelvin),
		0.0,
	)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Atmosphere) Altitude() unit.Distance       { return a.altitude }
func (a Atmosphere) Pressure() unit.Pressure       { return a.pressure }
func (a Atmosphere) Temperature() unit.Temperature { return a.temperature }
func (a Atmosphere) Humidity() float64             { return a.humidity }
func (a Atmosphere) HumidityInPercents() float64   { return a.humidity * 100 }
func (a Atmosphere) PowderSensitivity() float64    { return a.powderSensitivity }

// Density returns the air density at the reference altitude, kg/m^3.
func (a Atmosphere) Density() unit.Density {
	return unit.MustCreateDensity(a.refDensity, unit.DensityKgM3)
}

// DensityRatio returns Density()/refDensity at zero offset, i.e. 1.0;
// kept for symmetry with DensityRatioAt.
func (a Atmosphere) DensityRatio() float64 { return 1.0 }

// SpeedOfSound returns the speed of sound at the reference altitude.
func (a Atmosphere) SpeedOfSound() unit.Velocity {
	return unit.MustCreateVelocity(a.refSpeedOfSound, unit.VelocityMPS)
}

// DensityAt returns the air density at offset (a signed height
// displacement from the reference altitude), applying the ICAO
// barometric lapse and the Tetens humidity correction.
func (a Atmosphere) DensityAt(offset unit.Distance) unit.Density {
	t := a.temperature.In(unit.TemperatureKelvin) - icaoLapseRate*offset.In(unit.DistanceMeter)
	p := a.pressure.In(unit.PressurePascal) * math.Pow(t/a.temperature.In(unit.TemperatureKelvin), icaoGravity*icaoMolarMassAir/(icaoGasConstant*icaoLapseRate))
	return unit.MustCreateDensity(a.densityAtAbsolute(t, p, a.humidity), unit.DensityKgM3)
}

// DensityRatioAt returns DensityAt(offset) divided by the reference
// density; the integrator's drag term scales by this ratio.
func (a Atmosphere) DensityRatioAt(offset unit.Distance) float64 {
	return a.DensityAt(offset).In(unit.DensityKgM3) / a.refDensity
}

// SpeedOfSoundAt returns the local speed of sound at offset.
func (a Atmosphere) SpeedOfSoundAt(offset unit.Distance) unit.Velocity {
	t := a.temperature.In(unit.TemperatureKelvin) - icaoLapseRate*offset.In(unit.DistanceMeter)
	return unit.MustCreateVelocity(speedOfSound(t), unit.VelocityMPS)
}

func speedOfSound(tempKelvin float64) float64 {
	return math.Sqrt(icaoGamma * icaoGasConstant * tempKelvin / icaoMolarMassAir)
}

// densityAtAbsolute is the ideal-gas density at absolute temperature
// tempKelvin and pressure presPa, reduced for humidity via the Tetens
// saturation-vapor-pressure approximation.
func (a Atmosphere) densityAtAbsolute(tempKelvin, presPa, humidity float64) float64 {
	tempC := tempKelvin - 273.15
	// Tetens' formula for saturation vapor pressure, hPa.
	satVaporHPa := 6.1078 * math.Pow(10, 7.5*tempC/(tempC+237.3))
	vaporPa := humidity * satVaporHPa * 100

	dryPa := presPa - vaporPa
	rhoDry := dryPa * icaoMolarMassAir / (icaoGasConstant * tempKelvin)
	rhoVapor := vaporPa * molarMassWater / (icaoGasConstant * tempKelvin)
	return rhoDry + rhoVapor
}

func (a Atmosphere) String() string {
	return "Altitude:" + a.altitude.String() +
		",Pressure:" + a.pressure.String() +
		",Temperature:" + a.temperature.String()
}

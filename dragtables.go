package ballistics

// g1Table and g7Table are the standard published drag tables for the
// G1 and G7 reference projectiles, carried over verbatim from the
// source's tabulated data (formerly interpolated through a cached
// quadratic spline; now consumed directly by DragCurve's linear
// bracket interpolation).
var g1Table = []DragPoint{
	{Mach: 0.00, Cd: 0.2629},
	{Mach: 0.05, Cd: 0.2558},
	{Mach: 0.10, Cd: 0.2487},
	{Mach: 0.15, Cd: 0.2413},
	{Mach: 0.20, Cd: 0.2344},
	{Mach: 0.25, Cd: 0.2278},
	{Mach: 0.30, Cd: 0.2214},
	{Mach: 0.35, Cd: 0.2155},
	{Mach: 0.40, Cd: 0.2104},
	{Mach: 0.45, Cd: 0.2061},
	{Mach: 0.50, Cd: 0.2032},
	{Mach: 0.55, Cd: 0.2020},
	{Mach: 0.60, Cd: 0.2034},
	{Mach: 0.70, Cd: 0.2165},
	{Mach: 0.725, Cd: 0.2230},
	{Mach: 0.75, Cd: 0.2313},
	{Mach: 0.775, Cd: 0.2417},
	{Mach: 0.80, Cd: 0.2546},
	{Mach: 0.825, Cd: 0.2706},
	{Mach: 0.85, Cd: 0.2901},
	{Mach: 0.875, Cd: 0.3136},
	{Mach: 0.90, Cd: 0.3415},
	{Mach: 0.925, Cd: 0.3734},
	{Mach: 0.95, Cd: 0.4084},
	{Mach: 0.975, Cd: 0.4448},
	{Mach: 1.0, Cd: 0.4805},
	{Mach: 1.025, Cd: 0.5136},
	{Mach: 1.05, Cd: 0.5427},
	{Mach: 1.075, Cd: 0.5677},
	{Mach: 1.10, Cd: 0.5883},
	{Mach: 1.125, Cd: 0.6053},
	{Mach: 1.15, Cd: 0.6191},
	{Mach: 1.20, Cd: 0.6393},
	{Mach: 1.25, Cd: 0.6518},
	{Mach: 1.30, Cd: 0.6589},
	{Mach: 1.35, Cd: 0.6621},
	{Mach: 1.40, Cd: 0.6625},
	{Mach: 1.45, Cd: 0.6607},
	{Mach: 1.50, Cd: 0.6573},
	{Mach: 1.55, Cd: 0.6528},
	{Mach: 1.60, Cd: 0.6474},
	{Mach: 1.65, Cd: 0.6413},
	{Mach: 1.70, Cd: 0.6347},
	{Mach: 1.75, Cd: 0.6280},
	{Mach: 1.80, Cd: 0.6210},
	{Mach: 1.85, Cd: 0.6141},
	{Mach: 1.90, Cd: 0.6072},
	{Mach: 1.95, Cd: 0.6003},
	{Mach: 2.00, Cd: 0.5934},
	{Mach: 2.05, Cd: 0.5867},
	{Mach: 2.10, Cd: 0.5804},
	{Mach: 2.15, Cd: 0.5743},
	{Mach: 2.20, Cd: 0.5685},
	{Mach: 2.25, Cd: 0.5630},
	{Mach: 2.30, Cd: 0.5577},
	{Mach: 2.35, Cd: 0.5527},
	{Mach: 2.40, Cd: 0.5481},
	{Mach: 2.45, Cd: 0.5438},
	{Mach: 2.50, Cd: 0.5397},
	{Mach: 2.60, Cd: 0.5325},
	{Mach: 2.70, Cd: 0.5264},
	{Mach: 2.80, Cd: 0.5211},
	{Mach: 2.90, Cd: 0.5168},
	{Mach: 3.00, Cd: 0.5133},
	{Mach: 3.10, Cd: 0.5105},
	{Mach: 3.20, Cd: 0.5084},
	{Mach: 3.30, Cd: 0.5067},
	{Mach: 3.40, Cd: 0.5054},
	{Mach: 3.50, Cd: 0.5040},
	{Mach: 3.60, Cd: 0.5030},
	{Mach: 3.70, Cd: 0.5022},
	{Mach: 3.80, Cd: 0.5016},
	{Mach: 3.90, Cd: 0.5010},
	{Mach: 4.00, Cd: 0.5006},
	{Mach: 4.20, Cd: 0.4998},
	{Mach: 4.40, Cd: 0.4995},
	{Mach: 4.60, Cd: 0.4992},
	{Mach: 4.80, Cd: 0.4990},
	{Mach: 5.00, Cd: 0.4988},
}

var g7Table = []DragPoint{
	{Mach: 0.00, Cd: 0.1198},
	{Mach: 0.05, Cd: 0.1197},
	{Mach: 0.10, Cd: 0.1196},
	{Mach: 0.15, Cd: 0.1194},
	{Mach: 0.20, Cd: 0.1193},
	{Mach: 0.25, Cd: 0.1194},
	{Mach: 0.30, Cd: 0.1194},
	{Mach: 0.35, Cd: 0.1194},
	{Mach: 0.40, Cd: 0.1193},
	{Mach: 0.45, Cd: 0.1193},
	{Mach: 0.50, Cd: 0.1194},
	{Mach: 0.55, Cd: 0.1193},
	{Mach: 0.60, Cd: 0.1194},
	{Mach: 0.65, Cd: 0.1197},
	{Mach: 0.70, Cd: 0.1202},
	{Mach: 0.725, Cd: 0.1207},
	{Mach: 0.75, Cd: 0.1215},
	{Mach: 0.775, Cd: 0.1226},
	{Mach: 0.80, Cd: 0.1242},
	{Mach: 0.825, Cd: 0.1266},
	{Mach: 0.85, Cd: 0.1306},
	{Mach: 0.875, Cd: 0.1368},
	{Mach: 0.90, Cd: 0.1464},
	{Mach: 0.925, Cd: 0.1660},
	{Mach: 0.95, Cd: 0.2054},
	{Mach: 0.975, Cd: 0.2993},
	{Mach: 1.0, Cd: 0.3803},
	{Mach: 1.025, Cd: 0.4015},
	{Mach: 1.05, Cd: 0.4043},
	{Mach: 1.075, Cd: 0.4034},
	{Mach: 1.10, Cd: 0.4014},
	{Mach: 1.125, Cd: 0.3987},
	{Mach: 1.15, Cd: 0.3955},
	{Mach: 1.20, Cd: 0.3884},
	{Mach: 1.25, Cd: 0.3810},
	{Mach: 1.30, Cd: 0.3732},
	{Mach: 1.35, Cd: 0.3657},
	{Mach: 1.40, Cd: 0.3580},
	{Mach: 1.50, Cd: 0.3440},
	{Mach: 1.55, Cd: 0.3376},
	{Mach: 1.60, Cd: 0.3315},
	{Mach: 1.65, Cd: 0.3260},
	{Mach: 1.70, Cd: 0.3209},
	{Mach: 1.75, Cd: 0.3160},
	{Mach: 1.80, Cd: 0.3117},
	{Mach: 1.85, Cd: 0.3078},
	{Mach: 1.90, Cd: 0.3042},
	{Mach: 1.95, Cd: 0.3010},
	{Mach: 2.00, Cd: 0.2980},
	{Mach: 2.05, Cd: 0.2951},
	{Mach: 2.10, Cd: 0.2922},
	{Mach: 2.15, Cd: 0.2892},
	{Mach: 2.20, Cd: 0.2864},
	{Mach: 2.25, Cd: 0.2835},
	{Mach: 2.30, Cd: 0.2807},
	{Mach: 2.35, Cd: 0.2779},
	{Mach: 2.40, Cd: 0.2752},
	{Mach: 2.45, Cd: 0.2725},
	{Mach: 2.50, Cd: 0.2697},
	{Mach: 2.55, Cd: 0.2670},
	{Mach: 2.60, Cd: 0.2643},
	{Mach: 2.65, Cd: 0.2615},
	{Mach: 2.70, Cd: 0.2588},
	{Mach: 2.75, Cd: 0.2561},
	{Mach: 2.80, Cd: 0.2533},
	{Mach: 2.85, Cd: 0.2506},
	{Mach: 2.90, Cd: 0.2479},
	{Mach: 2.95, Cd: 0.2451},
	{Mach: 3.00, Cd: 0.2424},
	{Mach: 3.10, Cd: 0.2368},
	{Mach: 3.20, Cd: 0.2313},
	{Mach: 3.30, Cd: 0.2258},
	{Mach: 3.40, Cd: 0.2205},
	{Mach: 3.50, Cd: 0.2154},
	{Mach: 3.60, Cd: 0.2106},
	{Mach: 3.70, Cd: 0.2060},
	{Mach: 3.80, Cd: 0.2017},
	{Mach: 3.90, Cd: 0.1975},
	{Mach: 4.00, Cd: 0.1935},
	{Mach: 4.20, Cd: 0.1861},
	{Mach: 4.40, Cd: 0.1793},
	{Mach: 4.60, Cd: 0.1730},
	{Mach: 4.80, Cd: 0.1672},
	{Mach: 5.00, Cd: 0.1618},
}

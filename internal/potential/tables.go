package potential

import "math"

// startingCurves are normalized potentials U = -r·V/(2Z), sampled on every
// fourth point of the normal-density mesh (110 values). Each curve serves
// every element up to and including maxZ; the last serves all heavier ones.
var startingCurves = [...]struct {
	maxZ int
	u    [abridgedPoints]float64
}{
	{ // Helium
		maxZ: 2,
		u: [abridgedPoints]float64{
			1.00000, 0.99650, 0.99301, 0.98954, 0.98609, 0.98266, 0.97924, 0.97584,
			0.97246, 0.96910, 0.96576, 0.95912, 0.95256, 0.94607, 0.93965, 0.93330,
			0.92702, 0.92081, 0.91467, 0.90861, 0.90261, 0.89082, 0.87931, 0.86807,
			0.85711, 0.84641, 0.83598, 0.82580, 0.81589, 0.80624, 0.79683, 0.77876,
			0.76164, 0.74545, 0.73014, 0.71570, 0.70206, 0.68922, 0.67712, 0.66573,
			0.65503, 0.63551, 0.61832, 0.60321, 0.58995, 0.57833, 0.56816, 0.55928,
			0.55153, 0.54477, 0.53889, 0.52931, 0.52206, 0.51660, 0.51248, 0.50938,
			0.50704, 0.50529, 0.50397, 0.50298, 0.50224, 0.50126, 0.50071, 0.50040,
			0.50023, 0.50013, 0.50007, 0.50004, 0.50002, 0.50001, 0.50001, 0.50000,
			0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000,
			0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000,
			0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000,
			0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000,
			0.50000, 0.50000, 0.50000, 0.50000, 0.50000, 0.50000,
		},
	},
	{ // Carbon
		maxZ: 6,
		u: [abridgedPoints]float64{
			1.00000, 0.99232, 0.98474, 0.97726, 0.96987, 0.96257, 0.95537, 0.94825,
			0.94123, 0.93429, 0.92744, 0.91398, 0.90085, 0.88803, 0.87552, 0.86330,
			0.85136, 0.83970, 0.82831, 0.81717, 0.80628, 0.78523, 0.76509, 0.74580,
			0.72733, 0.70962, 0.69263, 0.67633, 0.66067, 0.64562, 0.63115, 0.60384,
			0.57851, 0.55500, 0.53312, 0.51273, 0.49370, 0.47593, 0.45930, 0.44372,
			0.42911, 0.40251, 0.37898, 0.35811, 0.33952, 0.32294, 0.30811, 0.29481,
			0.28286, 0.27212, 0.26243, 0.24580, 0.23220, 0.22103, 0.21183, 0.20423,
			0.19794, 0.19273, 0.18840, 0.18480, 0.18180, 0.17722, 0.17404, 0.17182,
			0.17027, 0.16918, 0.16843, 0.16790, 0.16753, 0.16727, 0.16709, 0.16687,
			0.16677, 0.16672, 0.16669, 0.16668, 0.16667, 0.16667, 0.16667, 0.16667,
			0.16667, 0.16667, 0.16667, 0.16667, 0.16667, 0.16667, 0.16667, 0.16667,
			0.16667, 0.16667, 0.16667, 0.16667, 0.16667, 0.16667, 0.16667, 0.16667,
			0.16667, 0.16667, 0.16667, 0.16667, 0.16667, 0.16667, 0.16667, 0.16667,
			0.16667, 0.16667, 0.16667, 0.16667, 0.16667, 0.16667,
		},
	},
	{ // Neon
		maxZ: 10,
		u: [abridgedPoints]float64{
			1.00000, 0.99116, 0.98246, 0.97388, 0.96543, 0.95711, 0.94891, 0.94083,
			0.93287, 0.92502, 0.91729, 0.90214, 0.88742, 0.87311, 0.85918, 0.84563,
			0.83244, 0.81959, 0.80708, 0.79489, 0.78301, 0.76013, 0.73836, 0.71763,
			0.69786, 0.67899, 0.66097, 0.64374, 0.62726, 0.61147, 0.59634, 0.56791,
			0.54168, 0.51744, 0.49497, 0.47410, 0.45468, 0.43657, 0.41965, 0.40383,
			0.38900, 0.36201, 0.33813, 0.31689, 0.29793, 0.28094, 0.26567, 0.25190,
			0.23945, 0.22817, 0.21792, 0.20009, 0.18522, 0.17276, 0.16225, 0.15336,
			0.14582, 0.13939, 0.13390, 0.12921, 0.12519, 0.11877, 0.11401, 0.11048,
			0.10785, 0.10588, 0.10441, 0.10331, 0.10248, 0.10186, 0.10140, 0.10079,
			0.10045, 0.10025, 0.10014, 0.10008, 0.10005, 0.10003, 0.10001, 0.10001,
			0.10000, 0.10000, 0.10000, 0.10000, 0.10000, 0.10000, 0.10000, 0.10000,
			0.10000, 0.10000, 0.10000, 0.10000, 0.10000, 0.10000, 0.10000, 0.10000,
			0.10000, 0.10000, 0.10000, 0.10000, 0.10000, 0.10000, 0.10000, 0.10000,
			0.10000, 0.10000, 0.10000, 0.10000, 0.10000, 0.10000,
		},
	},
	{ // Argon
		maxZ: 18,
		u: [abridgedPoints]float64{
			1.00000, 0.99018, 0.98052, 0.97102, 0.96169, 0.95251, 0.94348, 0.93460,
			0.92586, 0.91727, 0.90881, 0.89229, 0.87629, 0.86077, 0.84573, 0.83113,
			0.81695, 0.80319, 0.78982, 0.77683, 0.76419, 0.73996, 0.71700, 0.69522,
			0.67454, 0.65488, 0.63616, 0.61833, 0.60131, 0.58507, 0.56954, 0.54048,
			0.51379, 0.48921, 0.46651, 0.44549, 0.42598, 0.40783, 0.39090, 0.37510,
			0.36030, 0.33341, 0.30964, 0.28850, 0.26961, 0.25266, 0.23739, 0.22359,
			0.21107, 0.19968, 0.18929, 0.17110, 0.15576, 0.14275, 0.13164, 0.12210,
			0.11388, 0.10676, 0.10058, 0.09520, 0.09050, 0.08279, 0.07685, 0.07224,
			0.06866, 0.06586, 0.06367, 0.06195, 0.06059, 0.05953, 0.05869, 0.05751,
			0.05678, 0.05632, 0.05603, 0.05585, 0.05574, 0.05567, 0.05563, 0.05560,
			0.05558, 0.05557, 0.05556, 0.05556, 0.05556, 0.05556, 0.05556, 0.05556,
			0.05556, 0.05556, 0.05556, 0.05556, 0.05556, 0.05556, 0.05556, 0.05556,
			0.05556, 0.05556, 0.05556, 0.05556, 0.05556, 0.05556, 0.05556, 0.05556,
			0.05556, 0.05556, 0.05556, 0.05556, 0.05556, 0.05556,
		},
	},
	{ // Krypton
		maxZ: 36,
		u: [abridgedPoints]float64{
			1.00000, 0.98930, 0.97879, 0.96849, 0.95838, 0.94845, 0.93871, 0.92914,
			0.91974, 0.91051, 0.90145, 0.88379, 0.86673, 0.85025, 0.83431, 0.81888,
			0.80396, 0.78950, 0.77549, 0.76191, 0.74874, 0.72355, 0.69980, 0.67737,
			0.65614, 0.63604, 0.61696, 0.59885, 0.58162, 0.56521, 0.54957, 0.52040,
			0.49374, 0.46927, 0.44676, 0.42597, 0.40673, 0.38887, 0.37225, 0.35675,
			0.34227, 0.31598, 0.29278, 0.27217, 0.25375, 0.23721, 0.22230, 0.20879,
			0.19652, 0.18532, 0.17508, 0.15706, 0.14175, 0.12864, 0.11733, 0.10751,
			0.09895, 0.09144, 0.08484, 0.07900, 0.07383, 0.06515, 0.05823, 0.05267,
			0.04819, 0.04455, 0.04158, 0.03915, 0.03716, 0.03553, 0.03419, 0.03217,
			0.03079, 0.02985, 0.02920, 0.02876, 0.02845, 0.02824, 0.02810, 0.02800,
			0.02793, 0.02785, 0.02781, 0.02779, 0.02779, 0.02778, 0.02778, 0.02778,
			0.02778, 0.02778, 0.02778, 0.02778, 0.02778, 0.02778, 0.02778, 0.02778,
			0.02778, 0.02778, 0.02778, 0.02778, 0.02778, 0.02778, 0.02778, 0.02778,
			0.02778, 0.02778, 0.02778, 0.02778, 0.02778, 0.02778,
		},
	},
	{ // Xenon
		maxZ: 54,
		u: [abridgedPoints]float64{
			1.00000, 0.98886, 0.97795, 0.96724, 0.95675, 0.94647, 0.93638, 0.92648,
			0.91677, 0.90724, 0.89789, 0.87970, 0.86215, 0.84522, 0.82888, 0.81309,
			0.79783, 0.78307, 0.76879, 0.75497, 0.74157, 0.71601, 0.69195, 0.66928,
			0.64788, 0.62764, 0.60847, 0.59030, 0.57304, 0.55663, 0.54101, 0.51192,
			0.48540, 0.46111, 0.43881, 0.41824, 0.39923, 0.38161, 0.36523, 0.34997,
			0.33572, 0.30989, 0.28711, 0.26689, 0.24882, 0.23261, 0.21798, 0.20472,
			0.19267, 0.18167, 0.17160, 0.15384, 0.13871, 0.12571, 0.11445, 0.10464,
			0.09603, 0.08846, 0.08175, 0.07579, 0.07048, 0.06147, 0.05419, 0.04826,
			0.04339, 0.03937, 0.03604, 0.03327, 0.03095, 0.02901, 0.02738, 0.02486,
			0.02307, 0.02179, 0.02087, 0.02021, 0.01974, 0.01940, 0.01915, 0.01898,
			0.01885, 0.01869, 0.01861, 0.01857, 0.01854, 0.01853, 0.01853, 0.01852,
			0.01852, 0.01852, 0.01852, 0.01852, 0.01852, 0.01852, 0.01852, 0.01852,
			0.01852, 0.01852, 0.01852, 0.01852, 0.01852, 0.01852, 0.01852, 0.01852,
			0.01852, 0.01852, 0.01852, 0.01852, 0.01852, 0.01852,
		},
	},
	{ // Radon
		maxZ: math.MaxInt,
		u: [abridgedPoints]float64{
			1.00000, 0.98840, 0.97705, 0.96594, 0.95505, 0.94439, 0.93394, 0.92371,
			0.91367, 0.90383, 0.89419, 0.87545, 0.85741, 0.84004, 0.82330, 0.80715,
			0.79156, 0.77651, 0.76196, 0.74790, 0.73430, 0.70839, 0.68407, 0.66119,
			0.63964, 0.61931, 0.60008, 0.58189, 0.56464, 0.54826, 0.53270, 0.50377,
			0.47746, 0.45342, 0.43138, 0.41110, 0.39238, 0.37505, 0.35896, 0.34399,
			0.33003, 0.30474, 0.28247, 0.26271, 0.24508, 0.22925, 0.21498, 0.20205,
			0.19028, 0.17954, 0.16969, 0.15231, 0.13747, 0.12469, 0.11358, 0.10386,
			0.09531, 0.08774, 0.08102, 0.07501, 0.06962, 0.06042, 0.05288, 0.04667,
			0.04149, 0.03716, 0.03350, 0.03042, 0.02779, 0.02555, 0.02364, 0.02060,
			0.01835, 0.01667, 0.01542, 0.01449, 0.01379, 0.01326, 0.01286, 0.01256,
			0.01233, 0.01203, 0.01186, 0.01176, 0.01170, 0.01167, 0.01165, 0.01164,
			0.01164, 0.01163, 0.01163, 0.01163, 0.01163, 0.01163, 0.01163, 0.01163,
			0.01163, 0.01163, 0.01163, 0.01163, 0.01163, 0.01163, 0.01163, 0.01163,
			0.01163, 0.01163, 0.01163, 0.01163, 0.01163, 0.01163,
		},
	},
}

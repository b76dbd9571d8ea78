package catalog

type brightStar struct {
	name      string
	ra, dec   float64 // J2000, degrees
	mag       float64 // V
	sp        string
}

// A built-in catalog of the brighter named stars, so a sky can be
// rendered without a catalog file. Positions from the Yale Bright Star
// Catalog, rounded to 0.001 degrees.
var brightStars = []brightStar{
	{"Sirius", 101.287, -16.716, -1.46, "A1V"},
	{"Canopus", 95.988, -52.696, -0.74, "A9II"},
	{"Arcturus", 213.915, 19.182, -0.05, "K1.5III"},
	{"Vega", 279.235, 38.784, 0.03, "A0V"},
	{"Capella", 79.172, 45.998, 0.08, "G3III"},
	{"Rigel", 78.634, -8.202, 0.13, "B8Ia"},
	{"Procyon", 114.826, 5.225, 0.34, "F5IV-V"},
	{"Achernar", 24.429, -57.237, 0.46, "B6Vep"},
	{"Betelgeuse", 88.793, 7.407, 0.50, "M1-2Ia"},
	{"Hadar", 210.956, -60.373, 0.61, "B1III"},
	{"Altair", 297.696, 8.868, 0.76, "A7V"},
	{"Acrux", 186.650, -63.099, 0.76, "B0.5IV"},
	{"Aldebaran", 68.980, 16.509, 0.85, "K5III"},
	{"Antares", 247.352, -26.432, 0.96, "M1.5Iab"},
	{"Spica", 201.298, -11.161, 0.97, "B1III-IV"},
	{"Pollux", 116.329, 28.026, 1.14, "K0III"},
	{"Fomalhaut", 344.413, -29.622, 1.16, "A3V"},
	{"Deneb", 310.358, 45.280, 1.25, "A2Ia"},
	{"Mimosa", 191.930, -59.689, 1.25, "B0.5III"},
	{"Regulus", 152.093, 11.967, 1.35, "B8IVn"},
	{"Adhara", 104.656, -28.972, 1.50, "B2II"},
	{"Castor", 113.650, 31.889, 1.58, "A1V"},
	{"Gacrux", 187.791, -57.113, 1.63, "M3.5III"},
	{"Shaula", 263.402, -37.104, 1.63, "B2IV"},
	{"Bellatrix", 81.283, 6.350, 1.64, "B2III"},
	{"Elnath", 81.573, 28.608, 1.65, "B7III"},
	{"Miaplacidus", 138.300, -69.717, 1.68, "A1III"},
	{"Alnilam", 84.053, -1.202, 1.69, "B0Ia"},
	{"Alnair", 332.058, -46.961, 1.74, "B6V"},
	{"Alnitak", 85.190, -1.943, 1.77, "O9.5Ib"},
	{"Alioth", 193.507, 55.960, 1.77, "A1III-IVp"},
	{"Dubhe", 165.932, 61.751, 1.79, "K0III"},
	{"Mirfak", 51.081, 49.861, 1.79, "F5Ib"},
	{"Wezen", 107.098, -26.393, 1.84, "F8Ia"},
	{"Kaus Australis", 276.043, -34.384, 1.85, "B9.5III"},
	{"Avior", 125.629, -59.509, 1.86, "K3III"},
	{"Alkaid", 206.885, 49.313, 1.86, "B3V"},
	{"Sargas", 264.330, -42.998, 1.87, "F1II"},
	{"Menkalinan", 89.882, 44.948, 1.90, "A1IV"},
	{"Atria", 252.166, -69.028, 1.92, "K2IIb"},
	{"Alhena", 99.428, 16.399, 1.93, "A1.5IV"},
	{"Peacock", 306.412, -56.735, 1.94, "B2IV"},
	{"Alsephina", 131.176, -54.709, 1.96, "A1V"},
	{"Mirzam", 95.675, -17.956, 1.98, "B1II-III"},
	{"Alphard", 141.897, -8.659, 2.00, "K3II-III"},
	{"Hamal", 31.793, 23.463, 2.00, "K2III"},
	{"Polaris", 37.954, 89.264, 2.02, "F7Ib"},
	{"Diphda", 10.897, -17.987, 2.02, "K0III"},
	{"Nunki", 283.816, -26.297, 2.02, "B2.5V"},
	{"Mizar", 200.981, 54.925, 2.04, "A2V"},
	{"Mirach", 17.433, 35.621, 2.05, "M0III"},
	{"Alpheratz", 2.097, 29.091, 2.06, "B8IVp"},
	{"Menkent", 211.671, -36.370, 2.06, "K0III"},
	{"Algieba", 154.993, 19.842, 2.08, "K1III"},
	{"Kochab", 222.676, 74.156, 2.08, "K4III"},
	{"Rasalhague", 263.734, 12.560, 2.08, "A5III"},
	{"Saiph", 86.939, -9.670, 2.09, "B0.5Ia"},
	{"Algol", 47.042, 40.957, 2.12, "B8V"},
	{"Denebola", 177.265, 14.572, 2.13, "A3Va"},
	{"Muhlifain", 190.379, -48.960, 2.17, "A1IV"},
	{"Suhail", 136.999, -43.433, 2.21, "K4Ib"},
	{"Alphecca", 233.672, 26.715, 2.23, "A0V"},
	{"Mintaka", 83.002, -0.299, 2.23, "O9.5II"},
	{"Sadr", 305.557, 40.257, 2.23, "F8Ib"},
	{"Eltanin", 269.152, 51.489, 2.23, "K5III"},
	{"Schedar", 10.127, 56.537, 2.23, "K0IIIa"},
	{"Naos", 120.896, -40.003, 2.25, "O4If"},
	{"Aspidiske", 139.273, -59.275, 2.25, "A8Ib"},
	{"Caph", 2.295, 59.150, 2.27, "F2III"},
	{"Larawag", 252.541, -34.293, 2.29, "K2III"},
	{"Dschubba", 240.083, -22.622, 2.32, "B0.3IV"},
	{"Merak", 165.460, 56.382, 2.37, "A1V"},
	{"Izar", 221.247, 27.074, 2.37, "K0II-III"},
	{"Ankaa", 6.571, -42.306, 2.38, "K0.5IIIb"},
	{"Enif", 326.046, 9.875, 2.39, "K2Ib"},
	{"Girtab", 265.622, -39.030, 2.41, "F1III"},
	{"Scheat", 345.944, 28.083, 2.42, "M2.5II-III"},
	{"Sabik", 257.595, -15.725, 2.43, "A1V"},
	{"Phecda", 178.458, 53.695, 2.44, "A0Ve"},
	{"Aludra", 111.024, -29.303, 2.45, "B5Ia"},
	{"Markeb", 140.528, -55.011, 2.47, "B2IV"},
	{"Navi", 14.177, 60.717, 2.47, "B0.5IVpe"},
	{"Aljanah", 311.553, 33.970, 2.48, "K0III"},
	{"Markab", 346.190, 15.205, 2.49, "B9III"},
	{"Alderamin", 319.645, 62.586, 2.51, "A8V"},
	{"Zosma", 168.527, 20.524, 2.56, "A4V"},
	{"Arneb", 83.183, -17.822, 2.58, "F0Ib"},
	{"Gienah", 183.952, -17.542, 2.59, "B8III"},
	{"Zubeneschamali", 229.252, -9.383, 2.61, "B8V"},
	{"Acrab", 241.359, -19.805, 2.62, "B1V"},
	{"Sheratan", 28.660, 20.808, 2.64, "A5V"},
	{"Phact", 84.912, -34.074, 2.64, "B7IV"},
	{"Unukalhai", 236.067, 6.426, 2.65, "K2III"},
	{"Kraz", 188.597, -23.397, 2.65, "G5II"},
	{"Hassaleh", 74.248, 33.166, 2.69, "K3II"},
	{"Tarazed", 296.565, 10.613, 2.72, "K3II"},
	{"Porrima", 190.415, -1.449, 2.74, "F0V"},
	{"Zubenelgenubi", 222.720, -16.042, 2.75, "A3IV"},
	{"Rastaban", 262.608, 52.301, 2.79, "G2Ib-IIa"},
	{"Cursa", 76.963, -5.086, 2.79, "A3III"},
	{"Cor Caroli", 194.007, 38.318, 2.81, "A0pSi"},
	{"Vindemiatrix", 195.544, 10.959, 2.83, "G8III"},
	{"Alcyone", 56.871, 24.105, 2.87, "B7IIIe"},
	{"Tejat", 95.740, 22.513, 2.88, "M3III"},
	{"Gomeisa", 111.788, 8.289, 2.90, "B8V"},
	{"Sadalsuud", 322.890, -5.571, 2.91, "G0Ib"},
	{"Algorab", 187.466, -16.515, 2.95, "B9.5V"},
	{"Sadalmelik", 331.446, -0.320, 2.96, "G2Ib"},
	{"Pherkad", 230.182, 71.834, 3.00, "A3II"},
	{"Albireo", 292.680, 27.960, 3.18, "K3II"},
	{"Edasich", 231.232, 58.966, 3.29, "K2III"},
	{"Megrez", 183.857, 57.033, 3.31, "A3V"},
	{"Thuban", 211.097, 64.376, 3.65, "A0III"},
	{"Alcor", 201.306, 54.988, 3.99, "A5V"},
}

// BrightStars returns a fresh copy of the built-in star table, brightest first.
func BrightStars() Table {
	t := make(Table, len(brightStars))
	for i, s := range brightStars {
		t[i] = Record{
			ID:           "NAME " + s.name,
			Name:         s.name,
			RA:           s.ra,
			Dec:          s.dec,
			Magnitude:    s.mag,
			SpectralType: s.sp,
		}
	}
	return t
}

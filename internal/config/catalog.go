package config

import "fmt"

// Deployment defaults for the HDB resale catalog.

var DefaultModels = []string{
	"linear_regression",
	"ridge_regression",
	"lasso_regression",
}

var DefaultTowns = []string{
	"ANG MO KIO", "BEDOK", "BISHAN", "BUKIT BATOK", "BUKIT MERAH",
	"BUKIT PANJANG", "BUKIT TIMAH", "CENTRAL AREA", "CHOA CHU KANG",
	"CLEMENTI", "GEYLANG", "HOUGANG", "JURONG EAST", "JURONG WEST",
	"KALLANG/WHAMPOA", "MARINE PARADE", "PASIR RIS", "PUNGGOL",
	"QUEENSTOWN", "SEMBAWANG", "SENGKANG", "SERANGOON", "TAMPINES",
	"TOA PAYOH", "WOODLANDS", "YISHUN",
}

var DefaultFlatModels = []string{
	"2-room", "3Gen", "Adjoined flat", "Apartment", "DBSS", "Improved",
	"Improved-Maisonette", "Maisonette", "Model A", "Model A-Maisonette",
	"Model A2", "Multi Generation", "New Generation", "Premium Apartment",
	"Premium Apartment Loft", "Premium Maisonette", "Simplified", "Standard",
	"Terrace", "Type S1", "Type S2",
}

// DefaultStoreyRanges returns the three-storey bands "01 TO 03" .. "49 TO 51".
func DefaultStoreyRanges() []string {
	ranges := make([]string, 0, 17)
	for lo := 1; lo <= 49; lo += 3 {
		ranges = append(ranges, fmt.Sprintf("%02d TO %02d", lo, lo+2))
	}
	return ranges
}

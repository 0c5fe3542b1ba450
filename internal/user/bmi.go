package user

import "math"

// CalculateBMI takes weight in kilograms and height in centimetres and
// rounds to one decimal. Missing inputs yield 0.
func CalculateBMI(weight, height float64) float64 {
	if weight <= 0 || height <= 0 {
		return 0
	}
	meters := height / 100
	return math.Round(weight/(meters*meters)*10) / 10
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// withBMI merges height and weight into details and recomputes the BMI when
// both are known.
func withBMI(details *PhysicalDetails, height, weight *float64) *PhysicalDetails {
	if height == nil && weight == nil {
		return details
	}

	next := PhysicalDetails{}
	if details != nil {
		next = *details
	}
	if height != nil {
		next.Height = height
	}
	if weight != nil {
		next.Weight = weight
	}

	if next.Height != nil && next.Weight != nil {
		bmi := CalculateBMI(*next.Weight, *next.Height)
		if bmi > 0 {
			next.BMI = &bmi
			next.BMICategory = BMICategory(bmi)
		}
	}
	return &next
}

package datetime

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear applies the Gregorian rule: divisible by 4 and either not by
// 100 or by 400. BC years (negative) are judged on their magnitude.
func IsLeapYear(year int) bool {
	if year < 0 {
		year = -year
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of the given month, February adjusted
// for leap years. Returns 0 when month is outside 1..12.
func DaysInMonth(year, month int) int {
	if !between(month, 1, 12) {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// Package dateutil содержит функции календарной арифметики с точностью до дня.
// Все вычисления выполняются в локации переданной даты, конвертация часовых поясов не производится.
package dateutil

import "time"

// LongFormat формат даты для писем и логов, например "June 10, 2024"
const LongFormat = "January 2, 2006"

// StartOfDay обнуляет время, сохраняя дату и локацию
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// StartOfMonth возвращает первое число месяца переданной даты
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// DaysInMonth возвращает все дни месяца по возрастанию
func DaysInMonth(date time.Time) []time.Time {
	first := StartOfMonth(date)
	count := daysIn(first.Year(), first.Month(), first.Location())

	days := make([]time.Time, count)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// StartOfMonthWeekday возвращает день недели первого числа месяца (0 = воскресенье).
// Используется для отступа в сетке календаря.
func StartOfMonthWeekday(date time.Time) int {
	return int(StartOfMonth(date).Weekday())
}

// AddMonths сдвигает дату на n месяцев.
// Если в целевом месяце нет такого дня, дата прижимается к последнему дню месяца (31 января + 1 = 28/29 февраля).
func AddMonths(date time.Time, n int) time.Time {
	total := int(date.Month()) - 1 + n
	year := date.Year() + floorDiv(total, 12)
	month := time.Month(floorMod(total, 12) + 1)

	day := date.Day()
	if last := daysIn(year, month, date.Location()); day > last {
		day = last
	}

	return time.Date(year, month, day,
		date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// SubMonths сдвигает дату на n месяцев назад с той же политикой прижатия
func SubMonths(date time.Time, n int) time.Time {
	return AddMonths(date, -n)
}

// AddDays сдвигает дату на n календарных дней
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// IsSameDay сравнивает только год, месяц и день
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// FormatLong форматирует дату как "January 2, 2006"
func FormatLong(date time.Time) string {
	return date.Format(LongFormat)
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// нулевой день следующего месяца = последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

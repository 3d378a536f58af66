package schedule

// Japanese national holidays, keyed by the unpadded year-month-day form.
// To extend past 2027 add "YYYY-M-D" rows per the Cabinet Office list:
// https://www8.cao.go.jp/chosei/shukujitsu/gaiyou.html
var holidays = map[string]struct{}{
	"2025-1-1": {}, "2025-1-13": {}, "2025-2-11": {}, "2025-2-23": {},
	"2025-2-24": {}, "2025-3-20": {}, "2025-4-29": {}, "2025-5-3": {},
	"2025-5-4": {}, "2025-5-5": {}, "2025-5-6": {}, "2025-7-21": {},
	"2025-8-11": {}, "2025-9-15": {}, "2025-9-23": {}, "2025-10-13": {},
	"2025-11-3": {}, "2025-11-24": {},

	"2026-1-1": {}, "2026-1-12": {}, "2026-2-11": {}, "2026-2-23": {},
	"2026-3-20": {}, "2026-4-29": {}, "2026-5-3": {}, "2026-5-4": {},
	"2026-5-5": {}, "2026-5-6": {}, "2026-7-20": {}, "2026-8-11": {},
	"2026-9-21": {}, "2026-9-23": {}, "2026-10-12": {}, "2026-11-3": {},
	"2026-11-23": {},

	"2027-1-1": {}, "2027-1-11": {}, "2027-2-11": {}, "2027-2-23": {},
	"2027-3-21": {}, "2027-4-29": {}, "2027-5-3": {}, "2027-5-4": {},
	"2027-5-5": {}, "2027-5-6": {}, "2027-7-19": {}, "2027-8-11": {},
	"2027-9-20": {}, "2027-9-23": {}, "2027-10-11": {}, "2027-11-3": {},
	"2027-11-23": {},
}

// IsHoliday reports whether the date is a listed national holiday.
func IsHoliday(k DateKey) bool {
	_, ok := holidays[k.Legacy()]
	return ok
}

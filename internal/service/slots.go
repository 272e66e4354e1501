package service

// AvailableSlots is the fixed grid of bookable start times. The gap between
// 11:30 and 14:30 is the salon's lunch closure.
var AvailableSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

func isBookableSlot(slot string) bool {
	for _, s := range AvailableSlots {
		if s == slot {
			return true
		}
	}
	return false
}

package routes

import "strconv"

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func ftoa(id float64) string {
	return strconv.FormatInt(int64(id), 10)
}

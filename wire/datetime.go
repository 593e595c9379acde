package wire

import "time"

// epoch is the 1970-01-01 UTC reference point the Date, Date32,
// DateTime, and DateTime64 wire representations are offset from.
var epoch = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// ReadDate reads a 16-bit unsigned day offset from the epoch.
func ReadDate(data []byte) (time.Time, int, error) {
	days, n, err := ReadUint16(data)
	if err != nil {
		return time.Time{}, 0, err
	}

	return epoch.AddDate(0, 0, int(days)), n, nil
}

// ReadDate32 reads a 32-bit signed day offset from the epoch, which may
// be negative (dates before 1970).
func ReadDate32(data []byte) (time.Time, int, error) {
	days, n, err := ReadInt32(data)
	if err != nil {
		return time.Time{}, 0, err
	}

	return epoch.AddDate(0, 0, int(days)), n, nil
}

// ReadDateTime reads a 32-bit unsigned second offset from the epoch and
// attaches loc (nil means UTC).
func ReadDateTime(data []byte, loc *time.Location) (time.Time, int, error) {
	secs, n, err := ReadUint32(data)
	if err != nil {
		return time.Time{}, 0, err
	}

	if loc == nil {
		loc = time.UTC
	}

	return time.Unix(int64(secs), 0).In(loc), n, nil
}

// ReadDateTime64 reads a 64-bit signed tick count at the given scale
// (one tick = 10^-scale seconds) and attaches loc (nil means UTC).
func ReadDateTime64(data []byte, scale int, loc *time.Location) (time.Time, int, error) {
	ticks, n, err := ReadInt64(data)
	if err != nil {
		return time.Time{}, 0, err
	}

	if loc == nil {
		loc = time.UTC
	}

	return ticksToTime(ticks, scale, loc), n, nil
}

// ReadTime reads a 32-bit signed tick count since midnight at the given
// scale and returns it as a time.Duration.
func ReadTime(data []byte, scale int) (time.Duration, int, error) {
	ticks, n, err := ReadInt32(data)
	if err != nil {
		return 0, 0, err
	}

	return ticksToDuration(int64(ticks), scale), n, nil
}

// ticksToTime converts a tick count at the given decimal scale into an
// absolute time.Time relative to the Unix epoch.
func ticksToTime(ticks int64, scale int, loc *time.Location) time.Time {
	div := pow10(scale)
	sec := ticks / div
	rem := ticks % div
	if rem < 0 {
		sec--
		rem += div
	}
	// Scale the sub-second remainder up to nanoseconds.
	nsec := rem * pow10(9-scale)
	if scale > 9 {
		nsec = rem / pow10(scale-9)
	}

	return time.Unix(sec, nsec).In(loc)
}

func ticksToDuration(ticks int64, scale int) time.Duration {
	div := pow10(scale)
	sec := ticks / div
	rem := ticks % div
	nsec := rem * pow10(9-scale)
	if scale > 9 {
		nsec = rem / pow10(scale-9)
	}

	return time.Duration(sec)*time.Second + time.Duration(nsec)*time.Nanosecond
}

func pow10(n int) int64 {
	if n <= 0 {
		return 1
	}

	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 10
	}

	return v
}

package vmem

// allocationTries is the number of attempts an allocation gets before it is
// reported as failed. Attempts after the first are preceded by a critical
// memory pressure notification, which gives the platform a chance to free
// memory before the retry.
const allocationTries = 2

// allocWithRetry runs attempt up to allocationTries times and returns whether
// any attempt succeeded. Pressure is signaled between attempts only, never
// after the last one: once the final attempt has failed there is no retry
// left for relief to help.
func allocWithRetry(length uintptr, attempt func() bool) bool {
	for i := 0; i < allocationTries; i++ {
		if attempt() {
			return true
		}
		if i+1 < allocationTries {
			onCriticalMemoryPressure(length)
		}
	}

	return false
}

// onCriticalMemoryPressure forwards pressure to the registered Platform,
// falling back to the size-less notification when the platform could not act
// on the sized one.
func onCriticalMemoryPressure(length uintptr) {
	p := CurrentPlatform()
	if !p.OnCriticalMemoryPressure(length) {
		p.OnCriticalMemoryPressureUnsized()
	}
}

// fatalProcessOutOfMemory reports an unrecoverable allocation failure through
// the registered Platform. Platforms must not return from their fatal path;
// the panic is a backstop for ones that do.
func fatalProcessOutOfMemory(location string) {
	CurrentPlatform().FatalProcessOutOfMemory(location, "allocation failed after retries")
	panic("the registered Platform returned from FatalProcessOutOfMemory")
}

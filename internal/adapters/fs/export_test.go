package fs

import "time"

// SetSleep replaces the backoff sleep for tests.
func (f *FileSystem) SetSleep(sleep func(time.Duration)) {
	f.sleep = sleep
}

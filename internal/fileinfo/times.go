package fileinfo

import (
	"os"
	"time"

	"github.com/djherbis/times"
)

// FileTimes returns the access and creation times of fi. Platforms
// without a birth time report the modification time as created.
func FileTimes(fi os.FileInfo) (accessed, created time.Time) {
	ts := times.Get(fi)
	accessed = ts.AccessTime()
	if ts.HasBirthTime() {
		created = ts.BirthTime()
	} else {
		created = fi.ModTime()
	}
	return accessed, created
}

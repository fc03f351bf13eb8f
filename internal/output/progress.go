package output

import (
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

const (
	barWidth    = 30
	refreshRate = 65 * time.Millisecond
)

// ProgressBar tracks per-item describe calls. It writes to stderr and clears itself when done,
// so it never mixes with the table on stdout.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar over total items written to w (stderr when nil)
func NewProgressBar(w io.Writer, description string, total int) *ProgressBar {
	if w == nil {
		w = os.Stderr
	}
	return &ProgressBar{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWidth(barWidth),
			progressbar.OptionThrottle(refreshRate),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// Increment records one finished item
func (p *ProgressBar) Increment() {
	_ = p.bar.Add(1)
}

// Done completes and clears the bar
func (p *ProgressBar) Done() {
	_ = p.bar.Finish()
}

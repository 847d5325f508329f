package cli

import (
	"fmt"
	"io"
	"sync"

	"fragdoc/internal/usecase"
	"github.com/schollz/progressbar/v3"
)

// newProgressCallback draws a progress bar on w once the file count is known.
func newProgressCallback(w io.Writer) usecase.ProgressFunc {
	var (
		bar *progressbar.ProgressBar
		mu  sync.Mutex
	)

	return func(processed, total int, currentFile string) {
		mu.Lock()
		defer mu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Extracting[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(w)
				}),
			)
		}

		_ = bar.Set(processed)
	}
}

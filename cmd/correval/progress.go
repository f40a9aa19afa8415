package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// progressRenderer draws one bar per (model, stage) pair on stderr. Output is
// suppressed entirely when stderr is not a terminal so piped runs stay clean.
type progressRenderer struct {
	out     *os.File
	enabled bool

	bar   *progressbar.ProgressBar
	model string
	stage string
}

func newProgressRenderer(out *os.File) *progressRenderer {
	return &progressRenderer{
		out:     out,
		enabled: isInteractive(out),
	}
}

func isInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *progressRenderer) update(model, stage string, done, total int) {
	if !p.enabled {
		return
	}
	if p.bar == nil || model != p.model || stage != p.stage {
		p.finishCurrent()
		p.model = model
		p.stage = stage
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription(model+" "+stage),
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	_ = p.bar.Set(done)
}

func (p *progressRenderer) close() {
	p.finishCurrent()
}

func (p *progressRenderer) finishCurrent() {
	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
}

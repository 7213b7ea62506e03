package gui

import (
	"strings"

	"github.com/gotk3/gotk3/gtk"
)

const baseCSS = `
window { border: none; }
scrollbar slider {
    background-color: rgba(255, 255, 255, 0.3);
    min-width: 8px;
    border-radius: 4px;
}
scrollbar trough { background-color: rgba(0, 0, 0, 0.0); }
.event-box:hover { background-color: rgba(255, 255, 255, 0.2); }
`

// buildCSS assembles the stylesheet for the given flags.
func buildCSS(opts Options) string {
	var b strings.Builder
	b.WriteString(baseCSS)

	if opts.Transparent {
		b.WriteString("window { background-color: rgba(0, 0, 0, 0.0); }\n")
	} else {
		b.WriteString("window { background-color: rgba(0, 0, 0, 1.0); }\n")
	}

	if opts.Rounded {
		b.WriteString(".rounded-container { background-color: rgba(0, 0, 0, 0.7); border-radius: 15px; padding: 10px; }\n")
		b.WriteString(".event-box { border-radius: 10px; }\n")
	} else {
		b.WriteString(".container { background-color: rgba(0, 0, 0, 0.7); padding: 10px; }\n")
	}
	return b.String()
}

// applyCSS installs the stylesheet for the whole screen so child widgets match.
func applyCSS(win *gtk.Window, opts Options) error {
	provider, err := gtk.CssProviderNew()
	if err != nil {
		return err
	}
	if err := provider.LoadFromData(buildCSS(opts)); err != nil {
		return err
	}
	screen, err := win.GetScreen()
	if err != nil {
		return err
	}
	gtk.AddProviderForScreen(screen, provider, gtk.STYLE_PROVIDER_PRIORITY_USER)
	return nil
}
